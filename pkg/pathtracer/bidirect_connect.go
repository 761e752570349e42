package pathtracer

import (
	"github.com/kschuler/lumentrace/pkg/light"
	"github.com/kschuler/lumentrace/pkg/material"
	"github.com/kschuler/lumentrace/pkg/pathspace"
	"github.com/kschuler/lumentrace/pkg/vmath"
)

// transportAllConnectibleSubpaths sums, over every way of joining a
// prefix of camPath to a prefix of lightPath with exactly one
// connection edge, the transported radiance of that strategy, and
// averages the strategies sharing a total path length uniformly (per
// spec decision: no balance-heuristic weighting — see the design
// notes on the open MIS-weighting question). The result is a lower
// bound on the true measurement, since only finite path lengths are
// considered.
func transportAllConnectibleSubpaths(camPath []SampledPathlet, maxCamPathLen int, lightPath []SampledPathlet, maxLightPathLen int, emission light.EmissionSample, lgt light.Light, space pathspace.PathSpace, mats material.Container) vmath.Color3 {
	if maxCamPathLen == 0 {
		return vmath.Color3{}
	}

	camTransport := newTransportInfo(camPath, maxCamPathLen, mats, false)
	lightTransport := newTransportInfo(lightPath, maxLightPathLen, mats, true)

	var rad vmath.Color3

	for plen := 1; plen <= maxCamPathLen+maxLightPathLen+1; plen++ {
		camPlen := plen - 1
		if camPlen > maxCamPathLen {
			camPlen = maxCamPathLen
		}
		lightPlen := plen - 1 - camPlen

		var partitionRadSum vmath.Color3
		var partitionWeightSum float32
		curPathWeight := float32(1.0)

		for camPlen >= 0 && lightPlen <= maxLightPathLen {
			switch {
			case lightPlen == 0 && camPlen == 0:
				if camPath[0].Light != nil {
					pathRad := camPath[0].Light.Radiance(camPath[0].TowardsPrev(), camPath[0].Vert.Normal)
					partitionRadSum = partitionRadSum.Add(pathRad.Mul(curPathWeight))
				}
				partitionWeightSum += curPathWeight

			case lightPlen == 0:
				camJoinVert := camPath[camPlen-1]
				transportedImportance := TransportIllumSource(
					lgt, emission.Surface.P, emission.Surface.N,
					camJoinVert.Vert, camJoinVert.TowardsPrev(), space, mats,
				).Mul(1 / emission.Surface.AreaDens)

				pathRad := vmath.MulVec(transportedImportance, camTransport.Transport(camPlen-1)).Mul(1 / camPath[0].Dens)
				partitionRadSum = partitionRadSum.Add(pathRad.Mul(curPathWeight))
				partitionWeightSum += curPathWeight

			case camPlen == 0:
				// The chance of a light path hitting the camera is zero.

			default:
				lightJoinVert := lightPath[lightPlen-1]
				camJoinVert := camPath[camPlen-1]
				joinPath := camJoinVert.Vert.Vertex.Sub(lightJoinVert.Vert.Vertex)
				joinDistance := joinPath.Len()
				joinPath = joinPath.Mul(1 / joinDistance)

				joinRay := vmath.NewRay(lightJoinVert.Vert.Vertex, joinPath)
				cosWo := lightJoinVert.Vert.Normal.Dot(joinPath)
				cosWi := camJoinVert.Vert.Normal.Dot(joinPath.Mul(-1))
				var t float32
				if cosWo > 0 && cosWi > 0 && !space.HasIntersect(joinRay, 1e-3, joinDistance-1e-3, &t) {
					lightEmission := lgt.ProjectedRadiance(lightPath[0].Towards(), emission.Surface.N).
						Mul(1 / (lightPath[0].Dens * emission.Surface.AreaDens))
					lightSubpathImportance := vmath.MulVec(lightEmission, lightTransport.Transport(lightPlen-1))

					toAreaDifferential := cosWi * cosWo / (joinDistance * joinDistance)
					lightJoinWeight := brdfEval(lightJoinVert.Vert, joinPath, lightJoinVert.TowardsPrev(), mats)
					camJoinWeight := brdfEval(camJoinVert.Vert, camJoinVert.TowardsPrev(), joinPath.Mul(-1), mats)

					transportedImportance := vmath.MulVec(vmath.MulVec(lightSubpathImportance, lightJoinWeight), camJoinWeight).
						Mul(toAreaDifferential)
					camSubpathRadiance := vmath.MulVec(transportedImportance, camTransport.Transport(camPlen-1)).
						Mul(1 / camPath[0].Dens)

					partitionRadSum = partitionRadSum.Add(camSubpathRadiance.Mul(curPathWeight))
				}
				partitionWeightSum += curPathWeight
			}

			lightPlen++
			camPlen--
		}

		if partitionWeightSum > 0 {
			rad = rad.Add(partitionRadSum.Mul(1 / partitionWeightSum))
		}
	}
	return rad
}
