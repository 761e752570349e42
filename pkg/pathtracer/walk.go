package pathtracer

import (
	"github.com/kschuler/lumentrace/pkg/material"
	"github.com/kschuler/lumentrace/pkg/pathspace"
	"github.com/kschuler/lumentrace/pkg/vmath"
)

// extendPath recursively samples and concatenates pathlets into path,
// starting at the given depth, stopping at maxDepth, on absorption
// (zero BRDF density), on escaping the path space, or on hitting a
// back face. It returns the actual length reached.
func extendPath(rng vmath.Rng, path []SampledPathlet, space pathspace.PathSpace, mats material.Container, depth, maxDepth int) int {
	if depth == maxDepth {
		return depth
	}
	i, wDens := path[depth-1].SampleBRDF(rng, mats)
	if wDens == 0 {
		return depth
	}
	nextVert := space.Intersect(vmath.NewRay(path[depth-1].Vert.Vertex, i))
	if nextVert.Valid() && nextVert.Normal.Dot(i.Mul(-1)) > 0 {
		path[depth] = SampledPathlet{V: i.Mul(-1), Vert: nextVert, Dens: wDens}
		return extendPath(rng, path, space, mats, depth+1, maxDepth)
	}
	return depth
}

// WalkFromRay samples a path conditioned on its first pathlet arriving
// via the bootstrap ray r0 with density dens0; the first hit's light is
// not resolved (used to walk a light subpath, where the first vertex is
// never itself emissive in a way that matters to the walk).
func WalkFromRay(rng vmath.Rng, path []SampledPathlet, r0 vmath.Ray, dens0 float32, space pathspace.PathSpace, mats material.Container, maxDepth int) int {
	if maxDepth == 0 {
		return 0
	}
	vert0 := space.Intersect(r0)
	if !vert0.Valid() || vert0.Normal.Dot(r0.Dir.Mul(-1)) <= 0 {
		return 0
	}
	path[0] = SampledPathlet{V: r0.Dir.Mul(-1), Vert: vert0, Dens: dens0}
	return extendPath(rng, path, space, mats, 1, maxDepth)
}

// WalkFromFirstHit samples a path whose first vertex is a
// deterministically precomputed FirstHit, carrying its resolved light
// reference forward (used to walk a camera subpath).
func WalkFromFirstHit(rng vmath.Rng, path []SampledPathlet, r0 vmath.Ray, hit FirstHit, space pathspace.PathSpace, mats material.Container, maxDepth int) int {
	if !hit.Intersect.Valid() || maxDepth == 0 {
		return 0
	}
	path[0] = SampledPathlet{V: r0.Dir.Mul(-1), Vert: hit.Intersect, Light: hit.Light, Dens: 1.0}
	return extendPath(rng, path, space, mats, 1, maxDepth)
}
