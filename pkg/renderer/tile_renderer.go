package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/kschuler/lumentrace/pkg/light"
	"github.com/kschuler/lumentrace/pkg/material"
	"github.com/kschuler/lumentrace/pkg/pathspace"
	"github.com/kschuler/lumentrace/pkg/pathtracer"
	"github.com/kschuler/lumentrace/pkg/vmath"
)

// SceneData bundles everything a tile render needs to turn a pixel
// coordinate into a color: the path space, its materials and lights, the
// camera, and the image dimensions the camera's viewport is divided by.
type SceneData struct {
	Space   pathspace.PathSpace
	Mats    material.Container
	Sources light.Sources
	Camera  *Camera
	Width   int
	Height  int
}

// AdaptiveConfig controls when RenderTileBounds stops sampling a pixel
// early, grounded on the teacher's core.SamplingConfig adaptive fields.
type AdaptiveConfig struct {
	MinSamplesFrac float32 // minimum samples taken, as a fraction of the pass's target
	Threshold      float32 // stop once the luminance's relative error falls below this
}

// DefaultAdaptiveConfig disables early stopping: every pixel always
// spends its full sample budget.
func DefaultAdaptiveConfig() AdaptiveConfig {
	return AdaptiveConfig{MinSamplesFrac: 1.0, Threshold: 0}
}

// TileRenderer renders pixels within a bounds rectangle using a
// PathTracer, with adaptive per-pixel sample counts, grounded on the
// teacher's pkg/renderer/tile_renderer.go.
type TileRenderer struct {
	tracer pathtracer.PathTracer
}

// NewTileRenderer builds a TileRenderer around one PathTracer instance.
// The tracer is not safe for concurrent use if it carries per-call
// scratch state (e.g. BidirectMISTracer); callers give each worker its
// own tracer instance rather than sharing one across goroutines.
func NewTileRenderer(tracer pathtracer.PathTracer) *TileRenderer {
	return &TileRenderer{tracer: tracer}
}

// RenderTileBounds renders every pixel in bounds into pixelStats,
// sampling up to targetSamples times per pixel (fewer if adaptive
// sampling converges early), and returns statistics for the bounds.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, pixelStats [][]PixelStats, rng vmath.Rng, targetSamples int, scene SceneData, adaptive AdaptiveConfig) RenderStats {
	stats := RenderStats{
		TotalPixels: bounds.Dx() * bounds.Dy(),
		MaxSamples:  targetSamples,
		MinSamples:  targetSamples,
	}

	rays := make([]vmath.Ray, 1)
	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			samplesUsed := tr.adaptiveSamplePixel(rng, i, j, &pixelStats[j][i], targetSamples, scene, adaptive, rays)
			stats.TotalSamples += samplesUsed
			stats.MinSamples = min(stats.MinSamples, samplesUsed)
			stats.MaxSamplesUsed = max(stats.MaxSamplesUsed, samplesUsed)
		}
	}

	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	return stats
}

// adaptiveSamplePixel takes samples for pixel (i, j) until convergence or
// maxSamples, appending each to ps, and returns the number of new
// samples taken. rays is reused scratch storage sized to one ray.
func (tr *TileRenderer) adaptiveSamplePixel(rng vmath.Rng, i, j int, ps *PixelStats, maxSamples int, scene SceneData, cfg AdaptiveConfig, rays []vmath.Ray) int {
	initial := ps.SampleCount
	for ps.SampleCount < maxSamples && !shouldStopSampling(ps, maxSamples, cfg) {
		s := (float32(i) + rng.Draw()) / float32(scene.Width)
		t := 1 - (float32(j)+rng.Draw())/float32(scene.Height)
		rays[0] = scene.Camera.GetRay(s, t)

		hits := tr.tracer.ComputeFirstHit(rays, scene.Space, scene.Sources)
		colors := tr.tracer.Sample(rng, rays, hits, scene.Space, scene.Mats, scene.Sources)
		ps.AddSample(colors[0])
	}
	return ps.SampleCount - initial
}

// shouldStopSampling reports whether a pixel's accumulated luminance
// variance has converged below cfg.Threshold, once at least the
// configured minimum fraction of maxSamples has been taken.
func shouldStopSampling(ps *PixelStats, maxSamples int, cfg AdaptiveConfig) bool {
	if cfg.Threshold <= 0 {
		return false
	}

	minSamples := max(1, int(float32(maxSamples)*cfg.MinSamplesFrac))
	if ps.SampleCount < minSamples {
		return false
	}

	mean := ps.LuminanceAccum / float64(ps.SampleCount)
	meanSq := ps.LuminanceSqAccum / float64(ps.SampleCount)
	variance := math.Max(0, meanSq-mean*mean)

	if mean <= 1e-8 {
		return variance < 1e-6
	}

	relativeError := math.Sqrt(variance) / mean
	return relativeError < float64(cfg.Threshold)
}

// vec3ToColor converts linear radiance to a gamma-corrected, clamped
// 8-bit RGBA pixel, grounded on the teacher's vec3ToColor.
func vec3ToColor(c vmath.Color3) color.RGBA {
	gamma := func(x float32) float32 {
		if x < 0 {
			x = 0
		}
		g := float32(math.Sqrt(float64(x)))
		if g > 1 {
			g = 1
		}
		return g
	}
	return color.RGBA{
		R: uint8(255 * gamma(c.X())),
		G: uint8(255 * gamma(c.Y())),
		B: uint8(255 * gamma(c.Z())),
		A: 255,
	}
}
