// Package pathtracer implements the path-space random walk and the
// family of Monte Carlo integrators built on top of it (position,
// normal, direct, unidirectional, unidirectional+NEE, and the two
// bidirectional strategies), grounded on the original engine's
// pathtracer.cpp rather than the teacher's PBRT-style integrator.
package pathtracer

import (
	"github.com/kschuler/lumentrace/pkg/light"
	"github.com/kschuler/lumentrace/pkg/material"
	"github.com/kschuler/lumentrace/pkg/pathspace"
	"github.com/kschuler/lumentrace/pkg/vmath"
)

// SampledPathlet is one vertex of a sampled light-transport path: the
// intersection it landed on, the direction back toward the previous
// vertex, the conditional density it was sampled with, and — for the
// very first pathlet only — the light attached to its geometry, if any.
type SampledPathlet struct {
	V     vmath.Vec3 // points away from Vert, back toward the previous vertex
	Dens  float32
	Vert  pathspace.IntersectInfo
	Light light.Light
}

// TowardsPrev returns the direction from this vertex back to the
// previous one in the path.
func (p SampledPathlet) TowardsPrev() vmath.Vec3 { return p.V }

// Towards returns the direction this path travelled to reach this
// vertex (the negation of TowardsPrev).
func (p SampledPathlet) Towards() vmath.Vec3 { return p.V.Mul(-1) }

// SampleBRDF draws a continuation direction from this vertex's
// material, conditioned on the direction back toward the previous
// vertex, writing its projected-solid-angle density to dens.
func (p SampledPathlet) SampleBRDF(rng vmath.Rng, mats material.Container) (dir vmath.Vec3, dens float32) {
	mat := mats.Find(p.Vert.Geometry.MaterialID())
	dir = mat.Sample(rng, &dens, p.Vert.UV, p.Vert.Normal, p.TowardsPrev())
	return
}

func sampleBRDFAt(rng vmath.Rng, vert pathspace.IntersectInfo, o vmath.Vec3, mats material.Container) (vmath.Vec3, float32) {
	mat := mats.Find(vert.Geometry.MaterialID())
	var dens float32
	dir := mat.Sample(rng, &dens, vert.UV, vert.Normal, o)
	return dir, dens
}

func brdfEval(vert pathspace.IntersectInfo, o, i vmath.Vec3, mats material.Container) vmath.Color3 {
	mat := mats.Find(vert.Geometry.MaterialID())
	return mat.Eval(vert.UV, vert.Normal, o, i)
}

// projectedBRDF is current's BRDF evaluated toward next, projected by
// the cosine at current — the importance-transport form used along a
// light subpath (IMPORTANCE=true in the original template).
func projectedBRDF(current, next SampledPathlet, mats material.Container) vmath.Color3 {
	mat := mats.Find(current.Vert.Geometry.MaterialID())
	cosW := current.Vert.Normal.Dot(next.Towards())
	return mat.Eval(current.Vert.UV, current.Vert.Normal, next.Towards(), current.TowardsPrev()).Mul(cosW)
}

// projectedAdjointBRDF is the adjoint form used along a camera subpath
// (IMPORTANCE=false in the original template): the BRDF's two
// directions are swapped relative to projectedBRDF.
func projectedAdjointBRDF(current, next SampledPathlet, mats material.Container) vmath.Color3 {
	mat := mats.Find(current.Vert.Geometry.MaterialID())
	cosW := current.Vert.Normal.Dot(next.Towards())
	return mat.Eval(current.Vert.UV, current.Vert.Normal, current.TowardsPrev(), next.Towards()).Mul(cosW)
}
