package pathtracer

import (
	"github.com/kschuler/lumentrace/pkg/light"
	"github.com/kschuler/lumentrace/pkg/material"
	"github.com/kschuler/lumentrace/pkg/pathspace"
	"github.com/kschuler/lumentrace/pkg/vmath"
)

// DirectTracer estimates only the directly visible illumination at each
// camera ray's first hit: one shadow-connected light sample plus the
// hit geometry's own emission, with no indirect bounces.
type DirectTracer struct{ Base }

// NewDirectTracer builds a DirectTracer.
func NewDirectTracer() *DirectTracer { return &DirectTracer{} }

// Sample implements PathTracer.
func (t *DirectTracer) Sample(rng vmath.Rng, rays []vmath.Ray, hits []FirstHit, space pathspace.PathSpace, mats material.Container, sources light.Sources) []vmath.Color3 {
	rad := make([]vmath.Color3, len(rays))
	for i := range rays {
		if !hits[i].Intersect.Valid() {
			continue
		}
		o := rays[i].Dir.Mul(-1)
		rad[i] = TransportDirectIllum(rng, o, hits[i].Intersect, space, mats, sources, 1)
		if hits[i].Light != nil {
			rad[i] = rad[i].Add(hits[i].Light.ProjectedRadiance(o, hits[i].Intersect.Normal))
		}
	}
	return rad
}
