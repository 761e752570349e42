package pathtracer

import (
	"github.com/kschuler/lumentrace/pkg/light"
	"github.com/kschuler/lumentrace/pkg/pathspace"
	"github.com/kschuler/lumentrace/pkg/vmath"
)

// FirstHit is a deterministic, precomputed first intersection for one
// camera ray, including its light reference if the hit geometry is
// itself emissive. Computing this once per ray up front lets every
// integrator skip re-deriving it.
type FirstHit struct {
	Intersect pathspace.IntersectInfo
	Light     light.Light
}

// ComputeFirstHit intersects every ray against the path space, discards
// hits that land on a back face (treating them as a miss), and resolves
// the light attached to any valid hit's geometry.
func ComputeFirstHit(rays []vmath.Ray, space pathspace.PathSpace, sources light.Sources) []FirstHit {
	hits := make([]FirstHit, len(rays))
	for i, r := range rays {
		info := space.Intersect(r)
		if !info.Valid() || info.Normal.Dot(r.Dir.Mul(-1)) <= 0 {
			continue
		}
		hits[i].Intersect = info
		hits[i].Light = sources.ObjLight(info.Geometry)
	}
	return hits
}

// Base supplies the ComputeFirstHit operation shared by every
// integrator, so concrete tracers only need to implement Sample.
type Base struct{}

// ComputeFirstHit implements PathTracer.
func (Base) ComputeFirstHit(rays []vmath.Ray, space pathspace.PathSpace, sources light.Sources) []FirstHit {
	return ComputeFirstHit(rays, space, sources)
}
