// Package vmath holds the vector, color and transform primitives shared by
// every other package: 3D vectors, RGB colors, rays, axis-aligned boxes and
// a per-goroutine uniform random source.
package vmath

import "github.com/go-gl/mathgl/mgl32"

// Vec2 is a 2D vector, used for texture/UV coordinates.
type Vec2 = mgl32.Vec2

// Vec3 is a 3D vector used for positions, directions and normals.
type Vec3 = mgl32.Vec3

// Color3 is a Vec3 interpreted as linear RGB radiance.
type Color3 = Vec3

// Mat4 is a 4x4 transform. No package in this module constructs one;
// the test scene and the integrators work in world coordinates only.
type Mat4 = mgl32.Mat4

// NewVec2 builds a Vec2 from components.
func NewVec2(x, y float32) Vec2 { return Vec2{x, y} }

// NewVec3 builds a Vec3 from components.
func NewVec3(x, y, z float32) Vec3 { return Vec3{x, y, z} }

// MulVec returns the component-wise (Hadamard) product of two vectors.
// mgl32 only exposes scalar Mul, so this is the one hand-rolled operator
// every path tracer needs for modulating radiance by a BRDF/albedo.
func MulVec(a, b Vec3) Vec3 {
	return Vec3{a.X() * b.X(), a.Y() * b.Y(), a.Z() * b.Z()}
}

// IsBlack reports whether a color carries no energy.
func IsBlack(c Color3) bool {
	return c.X() == 0 && c.Y() == 0 && c.Z() == 0
}

// MaxComponent returns the largest of a vector's three components.
func MaxComponent(v Vec3) float32 {
	m := v.X()
	if v.Y() > m {
		m = v.Y()
	}
	if v.Z() > m {
		m = v.Z()
	}
	return m
}
