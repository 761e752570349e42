// Package light implements the spec §4.2 Light contract and the
// LightSources collection, grounded on the teacher's pkg/lights package
// (interfaces.go, light_sampling.go, weighted_light_sampler.go via
// pkg/core), narrowed to the exact operations §4.2 names.
package light

import (
	"github.com/kschuler/lumentrace/pkg/pathspace"
	"github.com/kschuler/lumentrace/pkg/vmath"
)

// SurfaceSample is an area-sampled point on a light's emitting surface.
type SurfaceSample struct {
	P, N     vmath.Vec3
	AreaDens float32
}

// EmissionSample pairs a SurfaceSample with an emission direction drawn
// from the light's angular distribution.
type EmissionSample struct {
	Surface        SurfaceSample
	W              vmath.Vec3
	SolidAngleDens float32
}

// Light is the emitter contract of spec §4.2.
type Light interface {
	// Radiance returns emitted radiance leaving the light in direction
	// wOutWorld (from the light surface outward); zero on the back side.
	Radiance(wOutWorld, nLight vmath.Vec3) vmath.Color3

	// ProjectedRadiance is Radiance * max(0, n.w).
	ProjectedRadiance(wOutWorld, nLight vmath.Vec3) vmath.Color3

	// SampleEmissionSurface draws an area-sampled point on the light.
	SampleEmissionSurface(rng vmath.Rng) SurfaceSample

	// SampleEmission draws an area-sampled point together with a
	// direction sampled from the emitter's angular distribution.
	SampleEmission(rng vmath.Rng) EmissionSample

	// Eval is the shadow-connection convenience used by direct lighting:
	// given the vector from the light point to the shaded target, the
	// light's normal, and the target's normal, it returns the radiance
	// contribution with both cosines folded in.
	Eval(lVecFromLightToTarget, nLight, nTarget vmath.Vec3) vmath.Color3
}

// Sources is the discrete light-selection contract (spec §4.2).
type Sources interface {
	// SampleLight selects an emitter, writing its selection probability
	// mass to *probMass.
	SampleLight(rng vmath.Rng, probMass *float32) Light

	// ObjLight reverse-looks-up the light attached to a hit geometry, or
	// nil if the geometry is non-emissive.
	ObjLight(geometry pathspace.GeometryRef) Light
}
