package material

import (
	"math"
	"testing"

	"github.com/kschuler/lumentrace/pkg/vmath"
)

type fixedRng struct{ vals []float32 }

func (f *fixedRng) Draw() float32 {
	v := f.vals[0]
	f.vals = f.vals[1:]
	return v
}

func TestLambertianEvalZeroBelowSurface(t *testing.T) {
	l := NewLambertian(vmath.NewVec3(0.8, 0.8, 0.8))
	n := vmath.NewVec3(0, 1, 0)
	wo := vmath.NewVec3(0, 1, 0)
	wiBelow := vmath.NewVec3(0, -1, 0)
	if got := l.Eval(vmath.Vec2{}, n, wo, wiBelow); !vmath.IsBlack(got) {
		t.Errorf("Eval with back-facing wi = %v, want black", got)
	}
}

func TestLambertianEvalMatchesAlbedoOverPi(t *testing.T) {
	albedo := vmath.NewVec3(0.8, 0.4, 0.2)
	l := NewLambertian(albedo)
	n := vmath.NewVec3(0, 1, 0)
	got := l.Eval(vmath.Vec2{}, n, n, n)
	want := albedo.Mul(1 / math.Pi)
	if got != want {
		t.Errorf("Eval = %v, want %v", got, want)
	}
}

func TestLambertianSamplePDFPositive(t *testing.T) {
	l := NewLambertian(vmath.NewVec3(1, 1, 1))
	rng := &fixedRng{vals: []float32{0.3, 0.6}}
	n := vmath.NewVec3(0, 1, 0)
	var pdf float32
	wi := l.Sample(rng, &pdf, vmath.Vec2{}, n, n)
	if pdf <= 0 {
		t.Fatalf("expected positive pdf, got %v", pdf)
	}
	if wi.Dot(n) <= 0 {
		t.Errorf("sampled direction %v should be in the hemisphere of %v", wi, n)
	}
}
