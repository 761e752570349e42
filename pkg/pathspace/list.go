package pathspace

import (
	"math"

	"github.com/kschuler/lumentrace/pkg/vmath"
)

// List is a linear-scan PathSpace: the simplest possible implementation
// of the spec §4.3 contract, grounded on the teacher's pkg/core/bvh.go
// leaf-node scan (the inner loop every BVH eventually bottoms out in).
// It exists for tests and the demo driver — a real deployment would
// wrap an accelerated structure behind the same PathSpace interface.
type List struct {
	shapes []Shape
	bounds vmath.AABB
}

// NewList builds a path space over the given shapes.
func NewList(shapes ...Shape) *List {
	l := &List{shapes: shapes}
	for i, s := range shapes {
		if i == 0 {
			l.bounds = s.BoundingBox()
		} else {
			l.bounds = l.bounds.Union(s.BoundingBox())
		}
	}
	return l
}

// Intersect returns the closest positive-t hit across all shapes.
func (l *List) Intersect(ray vmath.Ray) IntersectInfo {
	const epsilon = 1e-4
	closest := float32(math.MaxFloat32)
	var best IntersectInfo
	for _, s := range l.shapes {
		if hit, ok := s.Hit(ray, epsilon, closest); ok {
			closest = hit.T
			best = hit
		}
	}
	return best
}

// HasIntersect reports whether any shape occludes ray within (tMin, tMax).
func (l *List) HasIntersect(ray vmath.Ray, tMin, tMax float32, t *float32) bool {
	for _, s := range l.shapes {
		if hit, ok := s.Hit(ray, tMin, tMax); ok {
			if t != nil {
				*t = hit.T
			}
			return true
		}
	}
	return false
}

// AABB returns the world bounds of all shapes in the list.
func (l *List) AABB() vmath.AABB {
	return l.bounds
}
