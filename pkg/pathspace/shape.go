package pathspace

import "github.com/kschuler/lumentrace/pkg/vmath"

// Shape is anything List can intersect: a ray-hit test plus a bounding box.
// The BVH/acceleration structure that would index many shapes is explicitly
// out of core scope (spec §1) — List below is a deliberately unaccelerated
// stand-in, used only by tests and the demo driver.
type Shape interface {
	Hit(ray vmath.Ray, tMin, tMax float32) (IntersectInfo, bool)
	BoundingBox() vmath.AABB
}
