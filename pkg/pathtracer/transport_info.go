package pathtracer

import (
	"github.com/kschuler/lumentrace/pkg/material"
	"github.com/kschuler/lumentrace/pkg/vmath"
)

// transportInfo precomputes a light transport over every prefix of a
// sampled path, so Transport becomes an O(1) lookup instead of being
// recomputed per query. importance selects between the
// radiance-transport form (adjoint BRDF, used along a camera subpath)
// and the importance-transport form (non-adjoint BRDF, used along a
// light subpath).
//
// Note: the original engine also derives a per-vertex conditional
// density and a subpath_density helper from this same precomputation,
// for a balance-heuristic MIS weighting this integrator family doesn't
// use (weights are uniform per partition instead) — neither is carried
// forward here.
type transportInfo struct {
	prefixTransport []vmath.Color3
}

func newTransportInfo(path []SampledPathlet, length int, mats material.Container, importance bool) *transportInfo {
	ti := &transportInfo{prefixTransport: make([]vmath.Color3, length)}
	if length == 0 {
		return ti
	}

	transport := vmath.NewVec3(1, 1, 1)
	ti.prefixTransport[0] = transport
	for k := 0; k < length-1; k++ {
		var f vmath.Color3
		if importance {
			f = projectedBRDF(path[k], path[k+1], mats)
		} else {
			f = projectedAdjointBRDF(path[k], path[k+1], mats)
		}
		transport = vmath.MulVec(transport, f.Mul(1/path[k+1].Dens))
		ti.prefixTransport[k+1] = transport
	}
	return ti
}

// Transport returns the light transport accumulated from path[0] up to
// and including vertex path[subpathLen] (1 for subpathLen == 0).
func (t *transportInfo) Transport(subpathLen int) vmath.Color3 { return t.prefixTransport[subpathLen] }
