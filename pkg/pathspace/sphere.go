package pathspace

import (
	"math"

	"github.com/kschuler/lumentrace/pkg/vmath"
)

// Sphere is a reference Shape used by the List test-double path space and
// the demo scene, grounded on the teacher's pkg/geometry/sphere.go
// quadratic-formula hit test, narrowed to the uv/normal/area-sample
// bookkeeping the integrator family and light contract actually need.
type Sphere struct {
	Center vmath.Vec3
	Radius float32
	Mat    string
}

// NewSphere builds a sphere shape tagged with the material it renders as.
func NewSphere(center vmath.Vec3, radius float32, materialID string) *Sphere {
	return &Sphere{Center: center, Radius: radius, Mat: materialID}
}

// MaterialID satisfies pathspace.GeometryRef.
func (s *Sphere) MaterialID() string { return s.Mat }

// Hit tests a ray against the sphere, returning the nearer root in [tMin,tMax].
func (s *Sphere) Hit(ray vmath.Ray, tMin, tMax float32) (IntersectInfo, bool) {
	oc := ray.Origin.Sub(s.Center)
	a := ray.Dir.Dot(ray.Dir)
	halfB := oc.Dot(ray.Dir)
	c := oc.Dot(oc) - s.Radius*s.Radius
	disc := halfB*halfB - a*c
	if disc < 0 {
		return IntersectInfo{}, false
	}
	sqrtD := float32(math.Sqrt(float64(disc)))

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return IntersectInfo{}, false
		}
	}

	p := ray.At(root)
	n := p.Sub(s.Center).Mul(1.0 / s.Radius)
	return IntersectInfo{
		Vertex:   p,
		Normal:   n,
		UV:       sphereUV(n),
		T:        root,
		Geometry: s,
	}, true
}

// BoundingBox returns the world AABB of the sphere.
func (s *Sphere) BoundingBox() vmath.AABB {
	r := vmath.NewVec3(s.Radius, s.Radius, s.Radius)
	return vmath.NewAABB(s.Center.Sub(r), s.Center.Add(r))
}

// SurfaceArea returns the sphere's area, used to normalize area-sampling
// density when the sphere doubles as a light.
func (s *Sphere) SurfaceArea() float32 {
	return 4 * math.Pi * s.Radius * s.Radius
}

// Sample draws a uniform point on the sphere's surface for light emission.
func (s *Sphere) Sample(rng vmath.Rng) (p, n vmath.Vec3, areaDens float32) {
	z := 1 - 2*rng.Draw()
	r := float32(math.Sqrt(float64(max0(1 - z*z))))
	phi := 2 * math.Pi * rng.Draw()
	dir := vmath.NewVec3(r*float32(math.Cos(float64(phi))), r*float32(math.Sin(float64(phi))), z)
	p = s.Center.Add(dir.Mul(s.Radius))
	n = dir
	areaDens = 1.0 / s.SurfaceArea()
	return
}

func max0(v float32) float32 {
	if v < 0 {
		return 0
	}
	return v
}

func sphereUV(n vmath.Vec3) vmath.Vec2 {
	theta := float32(math.Acos(float64(-n.Y())))
	phi := float32(math.Atan2(float64(-n.Z()), float64(n.X()))) + math.Pi
	return vmath.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}
