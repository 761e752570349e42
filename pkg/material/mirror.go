package material

import (
	"math"

	"github.com/kschuler/lumentrace/pkg/vmath"
)

// Mirror is a glossy specular material: its BRDF is a Phong-style lobe
// around the perfect reflection direction, with importance sampling
// matched to the same lobe so Eval/Sample stay consistent (unlike a true
// delta mirror, which the Material contract's finite-pdf Eval cannot
// represent). Exponent 0 degenerates to Lambertian-like spread; larger
// exponents narrow the lobe toward a sharp mirror. Grounded on the
// teacher's pkg/material/metal.go reflect/fuzz model, recast into the
// Eval/Sample pair this module's Material contract requires.
type Mirror struct {
	Albedo   vmath.Color3
	Exponent float32 // specular sharpness, >= 0
}

// NewMirror builds a glossy specular material.
func NewMirror(albedo vmath.Color3, exponent float32) *Mirror {
	return &Mirror{Albedo: albedo, Exponent: exponent}
}

func reflect(in, n vmath.Vec3) vmath.Vec3 {
	return in.Sub(n.Mul(2 * in.Dot(n)))
}

// Eval implements Material.
func (m *Mirror) Eval(uv vmath.Vec2, n, wo, wi vmath.Vec3) vmath.Color3 {
	if n.Dot(wo) <= 0 || n.Dot(wi) <= 0 {
		return vmath.Color3{}
	}
	r := reflect(wo.Mul(-1), n)
	cosAlpha := max0f(r.Dot(wi))
	norm := (m.Exponent + 2) / (2 * math.Pi)
	lobe := norm * powf(cosAlpha, m.Exponent)
	return m.Albedo.Mul(lobe)
}

// Sample implements Material, drawing wi from the same Phong lobe used
// by Eval so the projected-solid-angle density matches exactly.
func (m *Mirror) Sample(rng vmath.Rng, pdf *float32, uv vmath.Vec2, n, wo vmath.Vec3) vmath.Vec3 {
	r := reflect(wo.Mul(-1), n)
	u1, u2 := rng.Draw(), rng.Draw()
	cosAlpha := powf(1-u1, 1/(m.Exponent+1))
	sinAlpha := sqrtf(max0f(1 - cosAlpha*cosAlpha))
	phi := 2 * math.Pi * float64(u2)

	tangent, bitangent := orthonormalBasis(r)
	local := tangent.Mul(sinAlpha * float32(math.Cos(phi))).
		Add(bitangent.Mul(sinAlpha * float32(math.Sin(phi)))).
		Add(r.Mul(cosAlpha))
	wi := local.Normalize()

	cosTheta := wi.Dot(n)
	if cosTheta <= 0 {
		*pdf = 0
		return wi
	}
	norm := (m.Exponent + 1) / (2 * math.Pi)
	*pdf = norm * powf(max0f(r.Dot(wi)), m.Exponent)
	return wi
}

func orthonormalBasis(w vmath.Vec3) (t, b vmath.Vec3) {
	var a vmath.Vec3
	if float32(math.Abs(float64(w.X()))) > 0.1 {
		a = vmath.NewVec3(0, 1, 0)
	} else {
		a = vmath.NewVec3(1, 0, 0)
	}
	t = a.Cross(w).Normalize()
	b = w.Cross(t)
	return
}

func max0f(v float32) float32 {
	if v < 0 {
		return 0
	}
	return v
}

func powf(base, exp float32) float32 {
	return float32(math.Pow(float64(base), float64(exp)))
}

func sqrtf(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}
