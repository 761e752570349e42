package pathspace

import "github.com/kschuler/lumentrace/pkg/vmath"

// PathSpace is the external collaborator contract of spec §4.3/§6: the
// set of all transport paths together with the geometric query structure
// (acceleration structure + emitters + materials) used to sample them.
// The core never builds or owns an acceleration structure itself — only
// this contract and a reference linear-scan implementation for tests
// (see List, below) live in this package.
type PathSpace interface {
	// Intersect returns the closest positive-t hit along ray, or the zero
	// IntersectInfo (miss) if none exists.
	Intersect(ray vmath.Ray) IntersectInfo

	// HasIntersect is the shadow-ray visibility predicate: it reports
	// whether anything occludes ray within (tMin, tMax), writing the
	// occluder's t into *t when it does.
	HasIntersect(ray vmath.Ray, tMin, tMax float32, t *float32) bool

	// AABB returns the world bounds, used by the position tracer to
	// normalize hit points into [0, 1]^3.
	AABB() vmath.AABB
}
