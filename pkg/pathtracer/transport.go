package pathtracer

import (
	"github.com/kschuler/lumentrace/pkg/light"
	"github.com/kschuler/lumentrace/pkg/material"
	"github.com/kschuler/lumentrace/pkg/pathspace"
	"github.com/kschuler/lumentrace/pkg/vmath"
)

// TransportIllumSource connects a sampled point on a light's surface to
// a target vertex, shadow-tests the connection, and returns the
// radiance transported across it (zero if occluded or if the light's
// contribution is already black). Shared by TransportDirectIllum and
// the bidirectional strategies so the shadow-connection logic lives in
// exactly one place.
func TransportIllumSource(lgt light.Light, pIllum, nIllum vmath.Vec3, targetVert pathspace.IntersectInfo, targetORay vmath.Vec3, space pathspace.PathSpace, mats material.Container) vmath.Color3 {
	l := targetVert.Vertex.Sub(pIllum)
	illum := lgt.Eval(l, nIllum, targetVert.Normal)
	if vmath.IsBlack(illum) {
		return vmath.Color3{}
	}

	distance := l.Len()
	i := l.Mul(-1 / distance)

	lightRay := vmath.NewRay(targetVert.Vertex, i)
	var t float32
	if space.HasIntersect(lightRay, 1e-4, distance-1e-3, &t) {
		return vmath.Color3{}
	}
	return vmath.MulVec(illum, brdfEval(targetVert, targetORay, i, mats))
}

// sampleLightSource picks a light and an area-sampled point on it,
// folding the light's own selection probability into the returned
// surface sample's density.
func sampleLightSource(rng vmath.Rng, sources light.Sources) (light.Light, light.SurfaceSample) {
	var probMass float32
	lgt := sources.SampleLight(rng, &probMass)
	if lgt == nil {
		return nil, light.SurfaceSample{}
	}
	surf := lgt.SampleEmissionSurface(rng)
	surf.AreaDens *= probMass
	return lgt, surf
}

// TransportDirectIllum estimates direct illumination at targetVert by
// connecting multiLightSamps independent light samples to it and
// averaging their transported radiance.
func TransportDirectIllum(rng vmath.Rng, targetORay vmath.Vec3, targetVert pathspace.IntersectInfo, space pathspace.PathSpace, mats material.Container, sources light.Sources, multiLightSamps int) vmath.Color3 {
	var rad vmath.Color3
	for k := 0; k < multiLightSamps; k++ {
		lgt, surf := sampleLightSource(rng, sources)
		if lgt == nil {
			continue
		}
		contrib := TransportIllumSource(lgt, surf.P, surf.N, targetVert, targetORay, space, mats)
		rad = rad.Add(contrib.Mul(1 / surf.AreaDens))
	}
	return rad.Mul(1 / float32(multiLightSamps))
}
