package pathtracer

import (
	"github.com/kschuler/lumentrace/pkg/light"
	"github.com/kschuler/lumentrace/pkg/material"
	"github.com/kschuler/lumentrace/pkg/pathspace"
	"github.com/kschuler/lumentrace/pkg/vmath"
)

// NormalTracer is a debug integrator: it returns each hit's shading
// normal remapped from [-1,1] to [0,1], with no randomness, materials,
// or lights involved.
type NormalTracer struct{ Base }

// NewNormalTracer builds a NormalTracer.
func NewNormalTracer() *NormalTracer { return &NormalTracer{} }

// Sample implements PathTracer.
func (t *NormalTracer) Sample(_ vmath.Rng, _ []vmath.Ray, hits []FirstHit, _ pathspace.PathSpace, _ material.Container, _ light.Sources) []vmath.Color3 {
	rad := make([]vmath.Color3, len(hits))
	for i, h := range hits {
		if !h.Intersect.Valid() {
			continue
		}
		n := h.Intersect.Normal
		rad[i] = vmath.NewVec3((n.X()+1)/2, (n.Y()+1)/2, (n.Z()+1)/2)
	}
	return rad
}
