package pathtracer

import (
	"github.com/kschuler/lumentrace/pkg/light"
	"github.com/kschuler/lumentrace/pkg/material"
	"github.com/kschuler/lumentrace/pkg/pathspace"
	"github.com/kschuler/lumentrace/pkg/vmath"
)

// BidirectMISTracer builds a full camera subpath and a full light
// subpath for every ray, then sums every way of connecting a prefix of
// one to a prefix of the other (transportAllConnectibleSubpaths),
// combining same-length strategies with a uniform weight.
type BidirectMISTracer struct {
	Base
	MaxPathLen int

	camPath   []SampledPathlet
	lightPath []SampledPathlet
}

// NewBidirectMISTracer builds a BidirectMISTracer whose scratch path
// buffers are sized once for maxPathLen and reused across every ray.
func NewBidirectMISTracer(maxPathLen int) *BidirectMISTracer {
	return &BidirectMISTracer{
		MaxPathLen: maxPathLen,
		camPath:    make([]SampledPathlet, maxPathLen),
		lightPath:  make([]SampledPathlet, maxPathLen),
	}
}

func (t *BidirectMISTracer) sampleIllumSource(rng vmath.Rng, sources light.Sources) (light.Light, light.EmissionSample) {
	var probMass float32
	lgt := sources.SampleLight(rng, &probMass)
	emission := lgt.SampleEmission(rng)
	emission.Surface.AreaDens *= probMass
	return lgt, emission
}

// Sample implements PathTracer.
func (t *BidirectMISTracer) Sample(rng vmath.Rng, rays []vmath.Ray, hits []FirstHit, space pathspace.PathSpace, mats material.Container, sources light.Sources) []vmath.Color3 {
	rad := make([]vmath.Color3, len(rays))
	for i := range rays {
		camPathLen := WalkFromFirstHit(rng, t.camPath, rays[i], hits[i], space, mats, t.MaxPathLen)

		lgt, emission := t.sampleIllumSource(rng, sources)
		lightRay := vmath.NewRay(emission.Surface.P, emission.W)
		lightPathLen := WalkFromRay(rng, t.lightPath, lightRay, emission.SolidAngleDens, space, mats, t.MaxPathLen)

		rad[i] = transportAllConnectibleSubpaths(t.camPath, camPathLen, t.lightPath, lightPathLen, emission, lgt, space, mats)
	}
	return rad
}
