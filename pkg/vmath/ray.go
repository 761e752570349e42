package vmath

// Ray is a half-line with a unit-length direction.
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// NewRay builds a ray from an origin and a (caller-normalized) direction.
func NewRay(origin, dir Vec3) Ray {
	return Ray{Origin: origin, Dir: dir}
}

// At returns the point origin + t*dir.
func (r Ray) At(t float32) Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}
