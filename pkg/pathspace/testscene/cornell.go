// Package testscene builds a small Cornell-box-shaped fixture used by
// the integrator and renderer test suites and by the demo driver. It is
// not a general scene loader — scene construction from external asset
// formats is out of scope (spec's original engine delegates that to its
// own wavefront/glTF loaders, which this module does not carry forward).
package testscene

import (
	"github.com/kschuler/lumentrace/pkg/light"
	"github.com/kschuler/lumentrace/pkg/material"
	"github.com/kschuler/lumentrace/pkg/pathspace"
	"github.com/kschuler/lumentrace/pkg/vmath"
)

// Scene bundles everything a PathTracer.Sample call needs: the geometry,
// the materials attached to it, and the lights among that geometry.
type Scene struct {
	Space   pathspace.PathSpace
	Mats    material.Container
	Sources light.Sources
}

// Cornell builds the classic box: five quad walls (red/green/white),
// one quad ceiling light, and two spheres (one matte, one glossy)
// resting on the floor.
func Cornell() *Scene {
	red := material.NewLambertian(vmath.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(vmath.NewVec3(0.12, 0.45, 0.15))
	white := material.NewLambertian(vmath.NewVec3(0.73, 0.73, 0.73))
	glossy := material.NewMirror(vmath.NewVec3(0.8, 0.8, 0.8), 40)
	lightMat := material.NewLambertian(vmath.NewVec3(0, 0, 0))

	mats := material.NewMapContainer(map[string]material.Material{
		"red":    red,
		"green":  green,
		"white":  white,
		"glossy": glossy,
		"light":  lightMat,
	})

	const size = float32(555)

	// U/V order on floor, ceiling and back wall is chosen so each quad's
	// cross(U,V) normal faces into the box interior, toward the camera.
	floor := pathspace.NewQuad(vmath.NewVec3(0, 0, 0), vmath.NewVec3(0, 0, size), vmath.NewVec3(size, 0, 0), "white")
	ceiling := pathspace.NewQuad(vmath.NewVec3(0, size, size), vmath.NewVec3(0, 0, -size), vmath.NewVec3(size, 0, 0), "white")
	back := pathspace.NewQuad(vmath.NewVec3(0, 0, size), vmath.NewVec3(0, size, 0), vmath.NewVec3(size, 0, 0), "white")
	leftWall := pathspace.NewQuad(vmath.NewVec3(0, 0, size), vmath.NewVec3(0, 0, -size), vmath.NewVec3(0, size, 0), "red")
	rightWall := pathspace.NewQuad(vmath.NewVec3(size, 0, 0), vmath.NewVec3(0, 0, size), vmath.NewVec3(0, size, 0), "green")

	lightQuad := pathspace.NewQuad(
		vmath.NewVec3(213, size-1, 227),
		vmath.NewVec3(130, 0, 0),
		vmath.NewVec3(0, 0, 105),
		"light",
	)

	matteSphere := pathspace.NewSphere(vmath.NewVec3(185, 90, 169), 90, "white")
	glossySphere := pathspace.NewSphere(vmath.NewVec3(370, 90, 351), 90, "glossy")

	space := pathspace.NewList(floor, ceiling, back, leftWall, rightWall, lightQuad, matteSphere, glossySphere)

	emitter := light.NewAreaLight(lightQuad, vmath.NewVec3(15, 15, 15))
	sources := light.NewWeightedSources()
	sources.Add(lightQuad, emitter)

	return &Scene{Space: space, Mats: mats, Sources: sources}
}
