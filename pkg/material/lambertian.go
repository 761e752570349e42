package material

import (
	"math"

	"github.com/kschuler/lumentrace/pkg/vmath"
)

// Lambertian is a perfectly diffuse material: f_r = albedo/pi everywhere
// above the surface, zero below it. Grounded on the teacher's
// pkg/material/lambertian.go.
type Lambertian struct {
	Albedo vmath.Color3
}

// NewLambertian builds a diffuse material with a solid albedo.
func NewLambertian(albedo vmath.Color3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Eval implements Material.
func (l *Lambertian) Eval(uv vmath.Vec2, n, wo, wi vmath.Vec3) vmath.Color3 {
	if n.Dot(wo) < 0 || n.Dot(wi) < 0 {
		return vmath.Color3{}
	}
	return l.Albedo.Mul(1.0 / math.Pi)
}

// Sample implements Material, drawing a cosine-weighted direction whose
// projected-solid-angle density is cos(theta)/pi (the cosine cancels the
// BRDF's own cos term in the unbiased estimator, spec §4.6.4).
func (l *Lambertian) Sample(rng vmath.Rng, pdf *float32, uv vmath.Vec2, n, wo vmath.Vec3) vmath.Vec3 {
	wi := vmath.SampleCosineHemisphere(n, rng.Draw(), rng.Draw())
	cosTheta := wi.Dot(n)
	if cosTheta <= 0 {
		*pdf = 0
		return wi
	}
	*pdf = cosTheta / math.Pi
	return wi
}
