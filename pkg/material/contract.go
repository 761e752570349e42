// Package material implements the spec §4.1 Material contract: BRDF
// evaluation and importance sampling, grounded on the teacher's
// pkg/material/lambertian.go and pkg/material/metal.go, narrowed to the
// two operations the path-tracing core actually calls.
package material

import "github.com/kschuler/lumentrace/pkg/vmath"

// Material is the BRDF contract every surface in the scene exposes.
type Material interface {
	// Eval returns f_r at the surface point, given outgoing (toward the
	// previous vertex) and incoming (toward the next vertex) directions
	// in world space. Must be zero when either direction is on the back
	// side of an opaque surface.
	Eval(uv vmath.Vec2, n, wo, wi vmath.Vec3) vmath.Color3

	// Sample importance-samples an incoming direction wi and writes its
	// projected-solid-angle density (already multiplied by |n.wi|) to
	// *pdf. pdf == 0 signals absorption and must terminate the walk.
	Sample(rng vmath.Rng, pdf *float32, uv vmath.Vec2, n, wo vmath.Vec3) vmath.Vec3
}

// Container resolves a material id (as carried by a pathspace.GeometryRef)
// to the Material that renders it.
type Container interface {
	Find(materialID string) Material
}
