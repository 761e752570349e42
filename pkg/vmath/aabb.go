package vmath

// AABB is an axis-aligned bounding box, grounded on the teacher's
// pkg/core/aabb.go but narrowed to what the path space contract (spec
// §4.3, §6) actually needs: a world bound and a slab test for rays.
type AABB struct {
	Min, Max Vec3
}

// NewAABB builds an AABB from explicit corners.
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// Union returns the smallest AABB containing both boxes.
func (b AABB) Union(other AABB) AABB {
	return AABB{
		Min: NewVec3(min32(b.Min.X(), other.Min.X()), min32(b.Min.Y(), other.Min.Y()), min32(b.Min.Z(), other.Min.Z())),
		Max: NewVec3(max32(b.Max.X(), other.Max.X()), max32(b.Max.Y(), other.Max.Y()), max32(b.Max.Z(), other.Max.Z())),
	}
}

// Range returns Max - Min, used to normalize a point inside the box.
func (b AABB) Range() Vec3 {
	return b.Max.Sub(b.Min)
}

// Hit tests a ray against the box using the slab method.
func (b AABB) Hit(r Ray, tMin, tMax float32) bool {
	for axis := 0; axis < 3; axis++ {
		origin, dir, lo, hi := component(r.Origin, axis), component(r.Dir, axis), component(b.Min, axis), component(b.Max, axis)
		if dir == 0 {
			if origin < lo || origin > hi {
				return false
			}
			continue
		}
		invDir := 1.0 / dir
		t1 := (lo - origin) * invDir
		t2 := (hi - origin) * invDir
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = max32(tMin, t1)
		tMax = min32(tMax, t2)
		if tMin > tMax {
			return false
		}
	}
	return true
}

func component(v Vec3, axis int) float32 {
	switch axis {
	case 0:
		return v.X()
	case 1:
		return v.Y()
	default:
		return v.Z()
	}
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
