package pathtracer

import (
	"github.com/kschuler/lumentrace/pkg/light"
	"github.com/kschuler/lumentrace/pkg/material"
	"github.com/kschuler/lumentrace/pkg/pathspace"
	"github.com/kschuler/lumentrace/pkg/vmath"
)

// PathTracer is the external contract every integrator satisfies: a
// deterministic first-hit pass followed by a stochastic radiance
// estimate per ray.
type PathTracer interface {
	ComputeFirstHit(rays []vmath.Ray, space pathspace.PathSpace, sources light.Sources) []FirstHit
	Sample(rng vmath.Rng, rays []vmath.Ray, hits []FirstHit, space pathspace.PathSpace, mats material.Container, sources light.Sources) []vmath.Color3
}
