package light

import (
	"testing"

	"github.com/kschuler/lumentrace/pkg/pathspace"
	"github.com/kschuler/lumentrace/pkg/vmath"
)

type fixedRng struct{ vals []float32 }

func (f *fixedRng) Draw() float32 {
	v := f.vals[0]
	f.vals = f.vals[1:]
	return v
}

func quadLight() *AreaLight {
	q := pathspace.NewQuad(
		vmath.NewVec3(-1, 5, -1),
		vmath.NewVec3(2, 0, 0),
		vmath.NewVec3(0, 0, 2),
		"light",
	)
	return NewAreaLight(q, vmath.NewVec3(10, 10, 10))
}

func TestAreaLightRadianceZeroBehind(t *testing.T) {
	l := quadLight()
	n := vmath.NewVec3(0, -1, 0) // light faces down
	behind := vmath.NewVec3(0, 1, 0)
	if got := l.Radiance(behind, n); !vmath.IsBlack(got) {
		t.Errorf("Radiance behind the emitter = %v, want black", got)
	}
	front := vmath.NewVec3(0, -1, 0)
	if got := l.Radiance(front, n); vmath.IsBlack(got) {
		t.Errorf("Radiance in front of the emitter = %v, want non-black", got)
	}
}

func TestAreaLightEvalFallsOffWithDistanceSquared(t *testing.T) {
	l := quadLight()
	nLight := vmath.NewVec3(0, -1, 0)
	nTarget := vmath.NewVec3(0, 1, 0)

	near := vmath.NewVec3(0, -1, 0) // light -> target pointing down
	far := near.Mul(2)

	c1 := l.Eval(near, nLight, nTarget)
	c2 := l.Eval(far, nLight, nTarget)

	if c1.X() <= 0 {
		t.Fatalf("expected positive contribution at distance 1, got %v", c1)
	}
	ratio := c1.X() / c2.X()
	if ratio < 3.9 || ratio > 4.1 {
		t.Errorf("doubling distance should quarter the contribution, ratio = %v", ratio)
	}
}

func TestAreaLightSampleEmissionCosineWeighted(t *testing.T) {
	l := quadLight()
	rng := &fixedRng{vals: []float32{0.25, 0.5, 0.3, 0.6}}
	s := l.SampleEmission(rng)
	if s.SolidAngleDens <= 0 {
		t.Fatalf("expected positive solid-angle density, got %v", s.SolidAngleDens)
	}
	if s.W.Dot(s.Surface.N) <= 0 {
		t.Errorf("sampled emission direction should leave the front hemisphere")
	}
}

func TestWeightedSourcesSampleAndLookup(t *testing.T) {
	q := pathspace.NewQuad(vmath.NewVec3(-1, 5, -1), vmath.NewVec3(2, 0, 0), vmath.NewVec3(0, 0, 2), "light")
	l := NewAreaLight(q, vmath.NewVec3(10, 10, 10))
	sources := NewWeightedSources()
	sources.Add(q, l)

	rng := &fixedRng{vals: []float32{0.0}}
	var probMass float32
	picked := sources.SampleLight(rng, &probMass)
	if picked != l {
		t.Errorf("SampleLight returned %v, want %v", picked, l)
	}
	if probMass != 1 {
		t.Errorf("probMass = %v, want 1 for a single-light scene", probMass)
	}

	if got := sources.ObjLight(q); got != l {
		t.Errorf("ObjLight(q) = %v, want %v", got, l)
	}
}
