package renderer

import (
	"image"
	"math"
	"testing"

	"github.com/kschuler/lumentrace/pkg/light"
	"github.com/kschuler/lumentrace/pkg/material"
	"github.com/kschuler/lumentrace/pkg/pathspace"
	"github.com/kschuler/lumentrace/pkg/pathtracer"
	"github.com/kschuler/lumentrace/pkg/vmath"
)

// flatScene builds a minimal scene for tile-renderer tests: one diffuse
// sphere directly in view of a camera looking down -Z, lit by an
// overhead area light.
func flatScene(width, height int) SceneData {
	sphere := pathspace.NewSphere(vmath.NewVec3(0, 0, -2), 0.5, "white")
	lightQuad := pathspace.NewQuad(vmath.NewVec3(-1, 3, -2.5), vmath.NewVec3(2, 0, 0), vmath.NewVec3(0, 0, 2), "light")

	mats := material.NewMapContainer(map[string]material.Material{
		"white": material.NewLambertian(vmath.NewVec3(0.6, 0.6, 0.6)),
		"light": material.NewLambertian(vmath.Color3{}),
	})
	space := pathspace.NewList(sphere, lightQuad)
	sources := light.NewWeightedSources()
	sources.Add(lightQuad, light.NewAreaLight(lightQuad, vmath.NewVec3(8, 8, 8)))

	cam := NewCamera(vmath.NewVec3(0, 0, 0), vmath.NewVec3(0, 0, -1), vmath.NewVec3(0, 1, 0), 60, float32(width)/float32(height))
	return SceneData{Space: space, Mats: mats, Sources: sources, Camera: cam, Width: width, Height: height}
}

func newPixelStats(w, h int) [][]PixelStats {
	ps := make([][]PixelStats, h)
	for y := range ps {
		ps[y] = make([]PixelStats, w)
	}
	return ps
}

func TestRenderTileBoundsFillsEverySample(t *testing.T) {
	scene := flatScene(8, 8)
	tr := NewTileRenderer(pathtracer.NewDirectTracer())
	pixelStats := newPixelStats(8, 8)
	rng := vmath.NewRng(1)

	stats := tr.RenderTileBounds(image.Rect(0, 0, 8, 8), pixelStats, rng, 4, scene, DefaultAdaptiveConfig())

	if stats.TotalPixels != 64 {
		t.Errorf("TotalPixels = %d, want 64", stats.TotalPixels)
	}
	if stats.TotalSamples != 64*4 {
		t.Errorf("TotalSamples = %d, want %d (adaptive sampling disabled)", stats.TotalSamples, 64*4)
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if pixelStats[y][x].SampleCount != 4 {
				t.Errorf("pixel (%d,%d) SampleCount = %d, want 4", x, y, pixelStats[y][x].SampleCount)
			}
		}
	}
}

func TestRenderTileBoundsRespectsBoundsClipping(t *testing.T) {
	scene := flatScene(5, 5)
	tr := NewTileRenderer(pathtracer.NewDirectTracer())
	pixelStats := newPixelStats(5, 5)
	rng := vmath.NewRng(2)

	stats := tr.RenderTileBounds(image.Rect(1, 1, 3, 3), pixelStats, rng, 2, scene, DefaultAdaptiveConfig())

	if stats.TotalPixels != 4 {
		t.Errorf("TotalPixels = %d, want 4", stats.TotalPixels)
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			inBounds := x >= 1 && x < 3 && y >= 1 && y < 3
			hasSamples := pixelStats[y][x].SampleCount > 0
			if inBounds != hasSamples {
				t.Errorf("pixel (%d,%d) inBounds=%v hasSamples=%v, want equal", x, y, inBounds, hasSamples)
			}
		}
	}
}

func TestRenderTileBoundsDeterministic(t *testing.T) {
	scene := flatScene(4, 4)

	render := func(seed int64) [][]PixelStats {
		tr := NewTileRenderer(pathtracer.NewUnidirectionalTracer())
		pixelStats := newPixelStats(4, 4)
		tr.RenderTileBounds(image.Rect(0, 0, 4, 4), pixelStats, vmath.NewRng(seed), 3, scene, DefaultAdaptiveConfig())
		return pixelStats
	}

	a := render(99)
	b := render(99)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if a[y][x].GetColor() != b[y][x].GetColor() {
				t.Errorf("pixel (%d,%d) not deterministic: %v != %v", x, y, a[y][x].GetColor(), b[y][x].GetColor())
			}
		}
	}
}

func TestShouldStopSamplingConvergesOnConstantColor(t *testing.T) {
	cfg := AdaptiveConfig{MinSamplesFrac: 0.1, Threshold: 0.2}
	var ps PixelStats
	for i := 0; i < 100; i++ {
		ps.AddSample(vmath.NewVec3(0.5, 0.5, 0.5))
		if shouldStopSampling(&ps, 100, cfg) {
			break
		}
	}
	if ps.SampleCount >= 100 {
		t.Errorf("expected adaptive sampling to converge before the sample cap on a constant color, used %d", ps.SampleCount)
	}
}

func TestShouldStopSamplingDisabledByZeroThreshold(t *testing.T) {
	cfg := DefaultAdaptiveConfig()
	var ps PixelStats
	for i := 0; i < 10; i++ {
		ps.AddSample(vmath.NewVec3(1, 1, 1))
	}
	if shouldStopSampling(&ps, 10, cfg) {
		t.Error("zero threshold should never stop sampling early")
	}
}

func TestVec3ToColorClampsAndGammaCorrects(t *testing.T) {
	c := vec3ToColor(vmath.NewVec3(4, -1, 0.25))
	if c.R != 255 {
		t.Errorf("over-range red should clamp to 255, got %d", c.R)
	}
	if c.G != 0 {
		t.Errorf("negative green should clamp to 0, got %d", c.G)
	}
	want := uint8(255 * math.Sqrt(0.25))
	if c.B != want {
		t.Errorf("gamma-corrected blue = %d, want %d", c.B, want)
	}
}
