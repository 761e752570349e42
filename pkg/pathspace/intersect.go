package pathspace

import "github.com/kschuler/lumentrace/pkg/vmath"

// GeometryRef is a non-owning, comparable handle back into the scene that
// produced an IntersectInfo — spec §9 calls for "a borrowed handle or
// stable index" rather than an owning reference, since IntersectInfo never
// outlives the integrator call that produced it.
type GeometryRef interface {
	// MaterialID names the material this geometry is rendered with, used
	// by material.Container.Find.
	MaterialID() string
}

// IntersectInfo is the result of a closest-hit query (spec §3). The zero
// value (T == 0) is the distinguished miss: Valid reports only the
// geometric hit/miss state, not back-facing — callers additionally check
// Normal against the querying ray's direction, exactly as
// compute_first_hit and sample_path do in the original source (they are
// two separate conditions, not one).
type IntersectInfo struct {
	Vertex   vmath.Vec3
	Normal   vmath.Vec3
	UV       vmath.Vec2
	T        float32
	Geometry GeometryRef
}

// Valid reports whether this record represents an actual hit.
func (i IntersectInfo) Valid() bool {
	return i.T > 0
}

// FacesTowards reports whether the surface normal faces back along dir,
// i.e. normal·(-dir) > 0 — the back-face test applied on top of Valid()
// at every bounce (spec §3, §4.4).
func (i IntersectInfo) FacesTowards(dir vmath.Vec3) bool {
	return i.Normal.Dot(dir.Mul(-1)) > 0
}
