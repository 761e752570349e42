package pathspace

import (
	"math"

	"github.com/kschuler/lumentrace/pkg/vmath"
)

// Quad is a planar rectangle defined by a corner and two edge vectors,
// grounded on the teacher's pkg/geometry/quad.go barycentric hit test —
// used both as scene geometry (Cornell walls) and as the surface a
// quad-shaped area Light samples.
type Quad struct {
	Corner vmath.Vec3
	U, V   vmath.Vec3
	Mat    string

	normal vmath.Vec3
	d      float32
	w      vmath.Vec3
	area   float32
}

// NewQuad builds a quad from a corner and two edge vectors.
func NewQuad(corner, u, v vmath.Vec3, materialID string) *Quad {
	normal := u.Cross(v).Normalize()
	cross := u.Cross(v)
	d := normal.Dot(corner)
	w := normal.Mul(1.0 / normal.Dot(cross))
	return &Quad{
		Corner: corner, U: u, V: v, Mat: materialID,
		normal: normal, d: d, w: w, area: cross.Len(),
	}
}

// MaterialID satisfies pathspace.GeometryRef.
func (q *Quad) MaterialID() string { return q.Mat }

// Normal returns the quad's outward-facing normal.
func (q *Quad) Normal() vmath.Vec3 { return q.normal }

// SurfaceArea returns the quad's area (|U x V|).
func (q *Quad) SurfaceArea() float32 { return q.area }

// Hit tests a ray against the quad's plane and bounds.
func (q *Quad) Hit(ray vmath.Ray, tMin, tMax float32) (IntersectInfo, bool) {
	denom := ray.Dir.Dot(q.normal)
	if float32(math.Abs(float64(denom))) < 1e-8 {
		return IntersectInfo{}, false
	}
	t := (q.d - ray.Origin.Dot(q.normal)) / denom
	if t < tMin || t > tMax {
		return IntersectInfo{}, false
	}
	p := ray.At(t)
	hv := p.Sub(q.Corner)
	alpha := q.w.Dot(hv.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(hv))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return IntersectInfo{}, false
	}
	return IntersectInfo{
		Vertex:   p,
		Normal:   q.normal,
		UV:       vmath.NewVec2(alpha, beta),
		T:        t,
		Geometry: q,
	}, true
}

// BoundingBox returns the world AABB of the quad, padded to avoid a
// degenerate zero-thickness box along the normal axis.
func (q *Quad) BoundingBox() vmath.AABB {
	p0 := q.Corner
	p1 := q.Corner.Add(q.U)
	p2 := q.Corner.Add(q.V)
	p3 := q.Corner.Add(q.U).Add(q.V)
	box := vmath.NewAABB(p0, p0)
	for _, p := range []vmath.Vec3{p1, p2, p3} {
		box = box.Union(vmath.NewAABB(p, p))
	}
	return vmath.AABB{Min: box.Min.Sub(vmath.NewVec3(1e-4, 1e-4, 1e-4)), Max: box.Max.Add(vmath.NewVec3(1e-4, 1e-4, 1e-4))}
}

// Sample draws a uniform point on the quad's surface for light emission.
func (q *Quad) Sample(rng vmath.Rng) (p, n vmath.Vec3, areaDens float32) {
	p = q.Corner.Add(q.U.Mul(rng.Draw())).Add(q.V.Mul(rng.Draw()))
	n = q.normal
	areaDens = 1.0 / q.area
	return
}
