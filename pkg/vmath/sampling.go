package vmath

import "math"

// SampleCosineHemisphere draws a cosine-weighted direction in the
// hemisphere around normal, grounded on the teacher's
// pkg/core/sampling.go SampleCosineHemisphere (malley's method: a
// uniform disk sample lifted onto the hemisphere).
func SampleCosineHemisphere(normal Vec3, u1, u2 float32) Vec3 {
	a := 2 * math.Pi * float64(u1)
	z := u2
	r := float32(math.Sqrt(float64(z)))

	x := r * float32(math.Cos(a))
	y := r * float32(math.Sin(a))
	zCoord := float32(math.Sqrt(float64(1 - z)))

	var nt Vec3
	if float32(math.Abs(float64(normal.X()))) > 0.1 {
		nt = NewVec3(0, 1, 0)
	} else {
		nt = NewVec3(1, 0, 0)
	}
	tangent := nt.Cross(normal).Normalize()
	bitangent := normal.Cross(tangent)

	return tangent.Mul(x).Add(bitangent.Mul(y)).Add(normal.Mul(zCoord))
}
