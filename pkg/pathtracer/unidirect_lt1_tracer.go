package pathtracer

import (
	"github.com/kschuler/lumentrace/pkg/light"
	"github.com/kschuler/lumentrace/pkg/material"
	"github.com/kschuler/lumentrace/pkg/pathspace"
	"github.com/kschuler/lumentrace/pkg/vmath"
)

// UnidirectLT1Tracer augments the plain path tracer with next-event
// estimation: every vertex connects directly to the light sources
// (transport_direct_illum) instead of relying on the BRDF chain to hit
// one by chance. MultiLightSamps is the number of light samples every
// vertex spends on that connection. MultiIndirectSamps is the number of
// indirect samples the first (depth-0) vertex spends; every vertex past
// depth 0 always uses exactly one indirect sample.
type UnidirectLT1Tracer struct {
	Base
	MultiLightSamps    int
	MultiIndirectSamps int
}

// NewUnidirectLT1Tracer builds a UnidirectLT1Tracer with the given
// per-vertex light sample count and depth-0 indirect sample count.
func NewUnidirectLT1Tracer(multiLightSamps, multiIndirectSamps int) *UnidirectLT1Tracer {
	return &UnidirectLT1Tracer{MultiLightSamps: multiLightSamps, MultiIndirectSamps: multiIndirectSamps}
}

const unidirectLT1MutateDepth = 2

func (t *UnidirectLT1Tracer) sampleIndirectIllum(rng vmath.Rng, o vmath.Vec3, vert pathspace.IntersectInfo, space pathspace.PathSpace, mats material.Container, sources light.Sources, depth, multiLightSamps, multiIndirectSamps int) vmath.Color3 {
	pSurvive := float32(0.5)
	if depth >= unidirectLT1MutateDepth {
		if rng.Draw() >= pSurvive {
			return vmath.Color3{}
		}
	} else {
		pSurvive = 1
	}
	if depth >= 1 {
		multiIndirectSamps = 1
	}

	direct := TransportDirectIllum(rng, o, vert, space, mats, sources, multiLightSamps)

	var multiIndirect vmath.Color3
	for k := 0; k < multiIndirectSamps; k++ {
		i, projSolidDens := sampleBRDFAt(rng, vert, o, mats)
		if projSolidDens == 0 {
			break
		}
		indirectVert := space.Intersect(vmath.NewRay(vert.Vertex, i))
		if !indirectVert.Valid() || indirectVert.Normal.Dot(i.Mul(-1)) <= 0 {
			break
		}
		indirect := t.sampleIndirectIllum(rng, i.Mul(-1), indirectVert, space, mats, sources, depth+1, multiLightSamps, multiIndirectSamps)
		cosW := vert.Normal.Dot(i)
		multiIndirect = multiIndirect.Add(vmath.MulVec(indirect, brdfEval(vert, o, i, mats)).Mul(cosW / projSolidDens))
	}

	return direct.Add(multiIndirect.Mul(1 / float32(multiIndirectSamps))).Mul(1 / pSurvive)
}

// Sample implements PathTracer.
func (t *UnidirectLT1Tracer) Sample(rng vmath.Rng, rays []vmath.Ray, hits []FirstHit, space pathspace.PathSpace, mats material.Container, sources light.Sources) []vmath.Color3 {
	rad := make([]vmath.Color3, len(rays))
	for i := range rays {
		if !hits[i].Intersect.Valid() {
			continue
		}
		o := rays[i].Dir.Mul(-1)
		p2inf := t.sampleIndirectIllum(rng, o, hits[i].Intersect, space, mats, sources, 0, t.MultiLightSamps, t.MultiIndirectSamps)
		if hits[i].Light != nil {
			rad[i] = p2inf.Add(hits[i].Light.Radiance(o, hits[i].Intersect.Normal))
		} else {
			rad[i] = p2inf
		}
	}
	return rad
}
