package pathtracer

import (
	"github.com/kschuler/lumentrace/pkg/light"
	"github.com/kschuler/lumentrace/pkg/material"
	"github.com/kschuler/lumentrace/pkg/pathspace"
	"github.com/kschuler/lumentrace/pkg/vmath"
)

// UnidirectionalTracer is a plain path tracer: it follows a single BRDF-
// sampled chain from the eye, picking up emission wherever the chain
// happens to land on a light, with Russian roulette termination once
// the chain reaches unidirectionalMutateDepth.
type UnidirectionalTracer struct{ Base }

// NewUnidirectionalTracer builds a UnidirectionalTracer.
func NewUnidirectionalTracer() *UnidirectionalTracer { return &UnidirectionalTracer{} }

const unidirectionalMutateDepth = 2

func (t *UnidirectionalTracer) sampleIndirectIllum(rng vmath.Rng, o vmath.Vec3, vert pathspace.IntersectInfo, space pathspace.PathSpace, mats material.Container, sources light.Sources, depth int) vmath.Color3 {
	pSurvive := float32(0.5)
	if depth >= unidirectionalMutateDepth {
		if rng.Draw() >= pSurvive {
			return vmath.Color3{}
		}
	} else {
		pSurvive = 1
	}

	var lightEmission vmath.Color3
	if lgt := sources.ObjLight(vert.Geometry); lgt != nil {
		lightEmission = lgt.Radiance(o, vert.Normal)
	}

	i, projSolidDens := sampleBRDFAt(rng, vert, o, mats)
	if projSolidDens == 0 {
		return lightEmission.Mul(1 / pSurvive)
	}
	indirectVert := space.Intersect(vmath.NewRay(vert.Vertex, i))
	if !indirectVert.Valid() || indirectVert.Normal.Dot(i.Mul(-1)) <= 0 {
		return lightEmission.Mul(1 / pSurvive)
	}

	pDepthToInf := t.sampleIndirectIllum(rng, i.Mul(-1), indirectVert, space, mats, sources, depth+1)
	cosW := vert.Normal.Dot(i)
	indirect := vmath.MulVec(pDepthToInf, brdfEval(vert, o, i, mats)).Mul(cosW / projSolidDens)

	return lightEmission.Add(indirect).Mul(1 / pSurvive)
}

// Sample implements PathTracer.
func (t *UnidirectionalTracer) Sample(rng vmath.Rng, rays []vmath.Ray, hits []FirstHit, space pathspace.PathSpace, mats material.Container, sources light.Sources) []vmath.Color3 {
	rad := make([]vmath.Color3, len(rays))
	for i := range rays {
		if !hits[i].Intersect.Valid() {
			continue
		}
		rad[i] = t.sampleIndirectIllum(rng, rays[i].Dir.Mul(-1), hits[i].Intersect, space, mats, sources, 0)
	}
	return rad
}
