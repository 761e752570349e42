package pathtracer

import (
	"github.com/kschuler/lumentrace/pkg/light"
	"github.com/kschuler/lumentrace/pkg/material"
	"github.com/kschuler/lumentrace/pkg/pathspace"
	"github.com/kschuler/lumentrace/pkg/vmath"
)

// BidirectLT2Tracer fixes the light subpath length at s=1: every
// camera vertex connects both to a direct light sample (as in
// UnidirectLT1Tracer) and to one step of a light-emitted path, blending
// the two strategies with a fixed 0.5/0.5 weight rather than a
// power/balance heuristic — see the design notes on the deliberately
// uniform per-partition weighting. At the primary (depth-0) vertex the
// direct light sample keeps weight 1 and only the light-path connection
// is halved. A light-path connection that fails counts as a zero sample
// and does not change these weights.
type BidirectLT2Tracer struct{ Base }

// NewBidirectLT2Tracer builds a BidirectLT2Tracer.
func NewBidirectLT2Tracer() *BidirectLT2Tracer { return &BidirectLT2Tracer{} }

const bidirectLT2MutateDepth = 1

func (t *BidirectLT2Tracer) joinWithLightPaths(rng vmath.Rng, o vmath.Vec3, poi pathspace.IntersectInfo, space pathspace.PathSpace, mats material.Container, sources light.Sources, camPathLen int) vmath.Color3 {
	p1Direct := TransportDirectIllum(rng, o, poi, space, mats, sources, 1)
	if camPathLen != 0 {
		p1Direct = p1Direct.Mul(0.5)
	}

	var probMass float32
	lgt := sources.SampleLight(rng, &probMass)
	if lgt == nil {
		return p1Direct
	}
	emission := lgt.SampleEmission(rng)
	lightRay := vmath.NewRay(emission.Surface.P, emission.W)
	lightInfo := space.Intersect(lightRay)
	if !lightInfo.Valid() {
		return p1Direct
	}

	lightIllum := lgt.ProjectedRadiance(emission.W, emission.Surface.N).
		Mul(1 / (probMass * emission.Surface.AreaDens * emission.SolidAngleDens))

	terminate := lightInfo
	tray := emission.W.Mul(-1)

	joinPath := poi.Vertex.Sub(terminate.Vertex)
	distance := joinPath.Len()
	joinPath = joinPath.Mul(1 / distance)
	joinRay := vmath.NewRay(terminate.Vertex, joinPath)
	cosW2 := terminate.Normal.Dot(tray)
	cosWo := terminate.Normal.Dot(joinPath)
	cosWi := poi.Normal.Dot(joinPath.Mul(-1))
	var t2 float32
	if cosWo > 0 && cosWi > 0 && cosW2 > 0 && !space.HasIntersect(joinRay, 1e-4, distance-1e-3, &t2) {
		f2 := vmath.MulVec(lightIllum, brdfEval(terminate, joinPath, tray, mats)).Mul(cosW2)
		p2Direct := vmath.MulVec(f2.Mul(cosWo/(distance*distance)), brdfEval(poi, o, joinPath.Mul(-1), mats)).Mul(cosWi)
		return p1Direct.Add(p2Direct.Mul(0.5))
	}
	return p1Direct
}

func (t *BidirectLT2Tracer) sampleIndirectIllum(rng vmath.Rng, o vmath.Vec3, vert pathspace.IntersectInfo, space pathspace.PathSpace, mats material.Container, sources light.Sources, depth int) vmath.Color3 {
	pSurvive := float32(0.5)
	if depth >= bidirectLT2MutateDepth {
		if rng.Draw() >= pSurvive {
			return vmath.Color3{}
		}
	} else {
		pSurvive = 1
	}

	bidirect := t.joinWithLightPaths(rng, o, vert, space, mats, sources, depth)

	i, matPdf := sampleBRDFAt(rng, vert, o, mats)
	indirectInfo := space.Intersect(vmath.NewRay(vert.Vertex, i))
	var r vmath.Color3
	if indirectInfo.Valid() {
		cosW := vert.Normal.Dot(i)
		if cosW < 0 {
			return vmath.Color3{}
		}
		indirect := t.sampleIndirectIllum(rng, i.Mul(-1), indirectInfo, space, mats, sources, depth+1)
		r = vmath.MulVec(indirect, brdfEval(vert, o, i, mats)).Mul(cosW / matPdf)
	}
	return bidirect.Add(r).Mul(1 / pSurvive)
}

// Sample implements PathTracer.
func (t *BidirectLT2Tracer) Sample(rng vmath.Rng, rays []vmath.Ray, hits []FirstHit, space pathspace.PathSpace, mats material.Container, sources light.Sources) []vmath.Color3 {
	rad := make([]vmath.Color3, len(rays))
	for i := range rays {
		if !hits[i].Intersect.Valid() {
			continue
		}
		o := rays[i].Dir.Mul(-1)
		p2inf := t.sampleIndirectIllum(rng, o, hits[i].Intersect, space, mats, sources, 0)
		if hits[i].Light != nil {
			rad[i] = p2inf.Add(hits[i].Light.ProjectedRadiance(o, hits[i].Intersect.Normal))
		} else {
			rad[i] = p2inf
		}
	}
	return rad
}
