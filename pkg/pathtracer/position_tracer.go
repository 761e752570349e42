package pathtracer

import (
	"github.com/kschuler/lumentrace/pkg/light"
	"github.com/kschuler/lumentrace/pkg/material"
	"github.com/kschuler/lumentrace/pkg/pathspace"
	"github.com/kschuler/lumentrace/pkg/vmath"
)

// PositionTracer is a debug integrator: it returns each hit's world
// position remapped into [0,1] against the path space's bounding box,
// with no randomness, no materials, and no lights involved.
type PositionTracer struct{ Base }

// NewPositionTracer builds a PositionTracer.
func NewPositionTracer() *PositionTracer { return &PositionTracer{} }

// Sample implements PathTracer.
func (t *PositionTracer) Sample(_ vmath.Rng, _ []vmath.Ray, hits []FirstHit, space pathspace.PathSpace, _ material.Container, _ light.Sources) []vmath.Color3 {
	box := space.AABB()
	extent := box.Max.Sub(box.Min)
	rad := make([]vmath.Color3, len(hits))
	for i, h := range hits {
		if !h.Intersect.Valid() {
			continue
		}
		p := h.Intersect.Vertex.Sub(box.Min)
		rad[i] = vmath.NewVec3(p.X()/extent.X(), p.Y()/extent.Y(), p.Z()/extent.Z())
	}
	return rad
}
