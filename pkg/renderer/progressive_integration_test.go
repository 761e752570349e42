package renderer

import (
	"context"
	"image"
	"testing"
	"time"

	"github.com/kschuler/lumentrace/pkg/pathspace/testscene"
	"github.com/kschuler/lumentrace/pkg/pathtracer"
	"github.com/kschuler/lumentrace/pkg/vmath"
)

func cornellSceneData(width, height int) SceneData {
	scene := testscene.Cornell()
	cam := NewCamera(
		vmath.NewVec3(278, 278, -800),
		vmath.NewVec3(278, 278, 0),
		vmath.NewVec3(0, 1, 0),
		40,
		float32(width)/float32(height),
	)
	return SceneData{Space: scene.Space, Mats: scene.Mats, Sources: scene.Sources, Camera: cam, Width: width, Height: height}
}

// TestProgressiveRenderPassProducesNonEmptyImage exercises the full
// worker-pool/tile pipeline against the Cornell scene for a single pass.
func TestProgressiveRenderPassProducesNonEmptyImage(t *testing.T) {
	scene := cornellSceneData(16, 16)
	config := DefaultProgressiveConfig()
	config.MaxPasses = 1
	config.InitialSamples = 2
	config.MaxSamplesPerPixel = 2
	config.TileSize = 8
	config.NumWorkers = 2

	pr := NewProgressiveRaytracer(scene, func() pathtracer.PathTracer { return pathtracer.NewDirectTracer() }, config, DefaultAdaptiveConfig(), nil)
	defer pr.workerPool.Stop()

	img, stats, err := pr.RenderPass(1, nil)
	if err != nil {
		t.Fatalf("RenderPass failed: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 16, 16) {
		t.Errorf("image bounds = %v, want 16x16", img.Bounds())
	}
	if stats.TotalSamples == 0 {
		t.Error("expected non-zero total samples")
	}

	var anyLit bool
	for y := 0; y < 16 && !anyLit; y++ {
		for x := 0; x < 16; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if r != 0 || g != 0 || b != 0 {
				anyLit = true
				break
			}
		}
	}
	if !anyLit {
		t.Error("expected at least one lit pixel in the Cornell box render")
	}
}

// TestRenderProgressiveStreamsPassesAndCompletes drives the full
// channel-based API across multiple passes to completion.
func TestRenderProgressiveStreamsPassesAndCompletes(t *testing.T) {
	scene := cornellSceneData(8, 8)
	config := DefaultProgressiveConfig()
	config.MaxPasses = 2
	config.InitialSamples = 1
	config.MaxSamplesPerPixel = 2
	config.TileSize = 8
	config.NumWorkers = 1

	pr := NewProgressiveRaytracer(scene, func() pathtracer.PathTracer { return pathtracer.NewDirectTracer() }, config, DefaultAdaptiveConfig(), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	passChan, tileChan, errChan := pr.RenderProgressive(ctx, RenderOptions{TileUpdates: true})

	var passCount, tileCount int
	var lastResult PassResult
	for passChan != nil || tileChan != nil || errChan != nil {
		select {
		case result, ok := <-passChan:
			if !ok {
				passChan = nil
				continue
			}
			passCount++
			lastResult = result
		case _, ok := <-tileChan:
			if !ok {
				tileChan = nil
				continue
			}
			tileCount++
		case err, ok := <-errChan:
			if !ok {
				errChan = nil
				continue
			}
			if err != nil {
				t.Fatalf("RenderProgressive error: %v", err)
			}
		}
	}

	if passCount != config.MaxPasses {
		t.Errorf("received %d pass events, want %d", passCount, config.MaxPasses)
	}
	if tileCount == 0 {
		t.Error("expected at least one tile completion event")
	}
	if !lastResult.IsLast {
		t.Error("final pass result should be marked IsLast")
	}
}

// TestRenderProgressiveCancellation stops rendering promptly when ctx is
// cancelled before the first pass starts.
func TestRenderProgressiveCancellation(t *testing.T) {
	scene := cornellSceneData(8, 8)
	config := DefaultProgressiveConfig()
	config.MaxPasses = 5

	pr := NewProgressiveRaytracer(scene, func() pathtracer.PathTracer { return pathtracer.NewDirectTracer() }, config, DefaultAdaptiveConfig(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	passChan, tileChan, errChan := pr.RenderProgressive(ctx, RenderOptions{TileUpdates: false})
	if tileChan != nil {
		for range tileChan {
		}
	}
	for range passChan {
		t.Error("expected no pass results after immediate cancellation")
	}

	err, ok := <-errChan
	if !ok || err == nil {
		t.Error("expected a context-cancellation error")
	}
}
