package light

import (
	"github.com/kschuler/lumentrace/pkg/pathspace"
	"github.com/kschuler/lumentrace/pkg/vmath"
)

// entry pairs an emitter with the geometry it's attached to, so ObjLight
// can reverse-look-up a Light from an IntersectInfo's geometry reference.
type entry struct {
	geom  pathspace.GeometryRef
	light Light
}

// WeightedSources is a discrete light selector: every registered light
// has equal selection probability, grounded on the teacher's
// pkg/lights/weighted_light_sampler.go (there weighted by power; here
// kept uniform since SPEC_FULL carries no per-light power estimate).
type WeightedSources struct {
	entries []entry
}

// NewWeightedSources builds a Sources implementation from a uniform set
// of (geometry, light) pairs.
func NewWeightedSources(pairs ...struct {
	Geom  pathspace.GeometryRef
	Light Light
}) *WeightedSources {
	s := &WeightedSources{entries: make([]entry, 0, len(pairs))}
	for _, p := range pairs {
		s.entries = append(s.entries, entry{geom: p.Geom, light: p.Light})
	}
	return s
}

// Add registers one more (geometry, light) pair.
func (s *WeightedSources) Add(geom pathspace.GeometryRef, l Light) {
	s.entries = append(s.entries, entry{geom: geom, light: l})
}

// SampleLight implements Sources: a uniform pick among registered lights.
func (s *WeightedSources) SampleLight(rng vmath.Rng, probMass *float32) Light {
	if len(s.entries) == 0 {
		*probMass = 0
		return nil
	}
	idx := int(rng.Draw() * float32(len(s.entries)))
	if idx >= len(s.entries) {
		idx = len(s.entries) - 1
	}
	*probMass = 1 / float32(len(s.entries))
	return s.entries[idx].light
}

// ObjLight implements Sources.
func (s *WeightedSources) ObjLight(geometry pathspace.GeometryRef) Light {
	for _, e := range s.entries {
		if e.geom == geometry {
			return e.light
		}
	}
	return nil
}
