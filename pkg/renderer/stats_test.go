package renderer

import (
	"testing"

	"github.com/kschuler/lumentrace/pkg/vmath"
)

func TestPixelStatsGetColorEmpty(t *testing.T) {
	var ps PixelStats
	if c := ps.GetColor(); !vmath.IsBlack(c) {
		t.Errorf("empty PixelStats.GetColor() = %v, want black", c)
	}
}

func TestPixelStatsAverages(t *testing.T) {
	var ps PixelStats
	ps.AddSample(vmath.NewVec3(1, 0, 0))
	ps.AddSample(vmath.NewVec3(0, 1, 0))

	got := ps.GetColor()
	want := vmath.NewVec3(0.5, 0.5, 0)
	if got != want {
		t.Errorf("GetColor() = %v, want %v", got, want)
	}
	if ps.SampleCount != 2 {
		t.Errorf("SampleCount = %d, want 2", ps.SampleCount)
	}
}

func TestLuminanceWeights(t *testing.T) {
	red := luminance(vmath.NewVec3(1, 0, 0))
	green := luminance(vmath.NewVec3(0, 1, 0))
	blue := luminance(vmath.NewVec3(0, 0, 1))

	if green <= red || red <= blue {
		t.Errorf("expected green > red > blue luminance weights, got red=%v green=%v blue=%v", red, green, blue)
	}
	sum := red + green + blue
	if sum < 0.999 || sum > 1.001 {
		t.Errorf("luminance weights should sum to 1, got %v", sum)
	}
}
