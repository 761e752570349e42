package light

import (
	"math"

	"github.com/kschuler/lumentrace/pkg/vmath"
)

// Surface is anything an AreaLight can sample a point on — satisfied by
// pathspace.Quad and pathspace.Sphere.
type Surface interface {
	Sample(rng vmath.Rng) (p, n vmath.Vec3, areaDens float32)
}

// AreaLight is a Lambertian emitter over a geometric surface: constant
// radiance across the front hemisphere, zero behind. Grounded on the
// teacher's pkg/lights/quad_light.go and pkg/lights/disc_light.go, which
// both wrap a geometric surface the same way.
type AreaLight struct {
	Surface  Surface
	Emission vmath.Color3
}

// NewAreaLight builds an area light over the given surface.
func NewAreaLight(surface Surface, emission vmath.Color3) *AreaLight {
	return &AreaLight{Surface: surface, Emission: emission}
}

// Radiance implements Light.
func (a *AreaLight) Radiance(wOutWorld, nLight vmath.Vec3) vmath.Color3 {
	if nLight.Dot(wOutWorld) <= 0 {
		return vmath.Color3{}
	}
	return a.Emission
}

// ProjectedRadiance implements Light.
func (a *AreaLight) ProjectedRadiance(wOutWorld, nLight vmath.Vec3) vmath.Color3 {
	cos := nLight.Dot(wOutWorld)
	if cos <= 0 {
		return vmath.Color3{}
	}
	return a.Emission.Mul(cos)
}

// SampleEmissionSurface implements Light.
func (a *AreaLight) SampleEmissionSurface(rng vmath.Rng) SurfaceSample {
	p, n, dens := a.Surface.Sample(rng)
	return SurfaceSample{P: p, N: n, AreaDens: dens}
}

// SampleEmission implements Light: an area sample plus a cosine-weighted
// direction drawn from the emitter's hemisphere.
func (a *AreaLight) SampleEmission(rng vmath.Rng) EmissionSample {
	p, n, areaDens := a.Surface.Sample(rng)
	w := vmath.SampleCosineHemisphere(n, rng.Draw(), rng.Draw())
	cosTheta := w.Dot(n)
	if cosTheta < 0 {
		cosTheta = 0
	}
	return EmissionSample{
		Surface:        SurfaceSample{P: p, N: n, AreaDens: areaDens},
		W:              w,
		SolidAngleDens: cosTheta / math.Pi,
	}
}

// Eval implements Light's shadow-connection convenience (spec §4.2, used
// by transport_direct_illum): both the light-side and target-side
// cosines plus the inverse-square falloff are folded in here so callers
// never duplicate that bookkeeping (spec §9's "centralize the
// conversion to avoid double-counting").
func (a *AreaLight) Eval(lVecFromLightToTarget, nLight, nTarget vmath.Vec3) vmath.Color3 {
	distance := lVecFromLightToTarget.Len()
	if distance == 0 {
		return vmath.Color3{}
	}
	wOut := lVecFromLightToTarget.Mul(1 / distance)
	cosTarget := nTarget.Dot(wOut.Mul(-1))
	if cosTarget <= 0 {
		return vmath.Color3{}
	}
	rad := a.ProjectedRadiance(wOut, nLight)
	if vmath.IsBlack(rad) {
		return vmath.Color3{}
	}
	return rad.Mul(cosTarget / (distance * distance))
}
