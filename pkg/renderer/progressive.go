package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/kschuler/lumentrace/pkg/pathtracer"
	"go.uber.org/zap"
)

// ProgressiveConfig configures a multi-pass progressive render, grounded
// on the teacher's pkg/renderer/progressive.go ProgressiveConfig.
type ProgressiveConfig struct {
	TileSize           int
	InitialSamples     int
	MaxSamplesPerPixel int
	MaxPasses          int
	NumWorkers         int
}

// DefaultProgressiveConfig returns sensible defaults.
func DefaultProgressiveConfig() ProgressiveConfig {
	return ProgressiveConfig{
		TileSize:           32,
		InitialSamples:     1,
		MaxSamplesPerPixel: 64,
		MaxPasses:          6,
		NumWorkers:         0,
	}
}

// ProgressiveRaytracer drives a multi-pass render over a fixed scene,
// refining each pixel's sample count pass over pass, grounded on the
// teacher's pkg/renderer/progressive.go ProgressiveRaytracer.
type ProgressiveRaytracer struct {
	scene      SceneData
	config     ProgressiveConfig
	adaptive   AdaptiveConfig
	tiles      []*Tile
	pixelStats [][]PixelStats
	workerPool *WorkerPool
	logger     *zap.SugaredLogger
}

// NewProgressiveRaytracer builds a progressive renderer. newTracer is
// invoked once per worker to build an independent PathTracer instance.
// A nil logger disables progress logging.
func NewProgressiveRaytracer(scene SceneData, newTracer func() pathtracer.PathTracer, config ProgressiveConfig, adaptive AdaptiveConfig, logger *zap.SugaredLogger) *ProgressiveRaytracer {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	pixelStats := make([][]PixelStats, scene.Height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, scene.Width)
	}

	return &ProgressiveRaytracer{
		scene:      scene,
		config:     config,
		adaptive:   adaptive,
		tiles:      NewTileGrid(scene.Width, scene.Height, config.TileSize),
		pixelStats: pixelStats,
		workerPool: NewWorkerPool(scene, adaptive, newTracer, scene.Width, scene.Height, config.TileSize, config.NumWorkers),
		logger:     logger,
	}
}

// getSamplesForPass computes the target cumulative sample count for pass.
func (pr *ProgressiveRaytracer) getSamplesForPass(pass int) int {
	if pr.config.MaxPasses == 1 {
		return pr.config.MaxSamplesPerPixel
	}
	if pass == 1 {
		return pr.config.InitialSamples
	}

	remainingSamples := pr.config.MaxSamplesPerPixel - pr.config.InitialSamples
	remainingPasses := pr.config.MaxPasses - 1
	samplesPerPass := remainingSamples / remainingPasses

	target := pr.config.InitialSamples + (pass-1)*samplesPerPass
	if pass == pr.config.MaxPasses {
		target = pr.config.MaxSamplesPerPixel
	}
	return target
}

// TileCompletionResult reports one tile finishing one pass.
type TileCompletionResult struct {
	TileX, TileY int
	TileImage    *image.RGBA
	PassNumber   int
	TileNumber   int
	TotalTiles   int
	TotalPasses  int
}

// PassResult reports one completed pass over the whole image.
type PassResult struct {
	PassNumber int
	Image      *image.RGBA
	Stats      RenderStats
	IsLast     bool
}

// RenderOptions configures RenderProgressive's event stream.
type RenderOptions struct {
	TileUpdates bool
}

// RenderPass runs a single pass across every tile in parallel, optionally
// invoking tileCallback as each tile completes.
func (pr *ProgressiveRaytracer) RenderPass(pass int, tileCallback func(TileCompletionResult)) (*image.RGBA, RenderStats, error) {
	targetSamples := pr.getSamplesForPass(pass)
	pr.logger.Infof("pass %d: target %d samples/pixel (%d workers)", pass, targetSamples, pr.workerPool.GetNumWorkers())

	if pass == 1 {
		pr.workerPool.Start()
	}

	for taskID, tile := range pr.tiles {
		pr.workerPool.SubmitTask(TileTask{
			Tile:          tile,
			PassNumber:    pass,
			TargetSamples: targetSamples,
			TaskID:        taskID,
			PixelStats:    pr.pixelStats,
		})
	}

	for i := 0; i < len(pr.tiles); i++ {
		result, ok := pr.workerPool.GetResult()
		if !ok {
			return nil, RenderStats{}, fmt.Errorf("worker pool closed unexpectedly")
		}
		if result.Error != nil {
			return nil, RenderStats{}, result.Error
		}

		tile := pr.tiles[result.TaskID]
		tile.PassesCompleted++

		if tileCallback != nil {
			tileCallback(TileCompletionResult{
				TileX:       tile.Bounds.Min.X / pr.config.TileSize,
				TileY:       tile.Bounds.Min.Y / pr.config.TileSize,
				TileImage:   pr.extractTileImage(tile),
				PassNumber:  pass,
				TileNumber:  i + 1,
				TotalTiles:  len(pr.tiles),
				TotalPasses: pr.config.MaxPasses,
			})
		}
	}

	img, stats := pr.assembleCurrentImage(targetSamples)
	return img, stats, nil
}

func (pr *ProgressiveRaytracer) extractTileImage(tile *Tile) *image.RGBA {
	bounds := tile.Bounds
	img := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if y >= len(pr.pixelStats) || x >= len(pr.pixelStats[y]) {
				continue
			}
			stats := &pr.pixelStats[y][x]
			if stats.SampleCount > 0 {
				img.SetRGBA(x-bounds.Min.X, y-bounds.Min.Y, vec3ToColor(stats.GetColor()))
			}
		}
	}
	return img
}

func (pr *ProgressiveRaytracer) assembleCurrentImage(targetSamples int) (*image.RGBA, RenderStats) {
	img := image.NewRGBA(image.Rect(0, 0, pr.scene.Width, pr.scene.Height))
	stats := RenderStats{
		TotalPixels: pr.scene.Width * pr.scene.Height,
		MaxSamples:  targetSamples,
		MinSamples:  pr.config.MaxSamplesPerPixel,
	}

	for y := 0; y < pr.scene.Height; y++ {
		for x := 0; x < pr.scene.Width; x++ {
			pixel := &pr.pixelStats[y][x]
			img.SetRGBA(x, y, vec3ToColor(pixel.GetColor()))

			stats.TotalSamples += pixel.SampleCount
			stats.MinSamples = min(stats.MinSamples, pixel.SampleCount)
			stats.MaxSamplesUsed = max(stats.MaxSamplesUsed, pixel.SampleCount)
		}
	}

	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	return img, stats
}

// RenderProgressive runs every configured pass, streaming PassResult and
// (if options.TileUpdates) TileCompletionResult events until done, ctx
// is cancelled, or an error occurs.
func (pr *ProgressiveRaytracer) RenderProgressive(ctx context.Context, options RenderOptions) (<-chan PassResult, <-chan TileCompletionResult, <-chan error) {
	passChan := make(chan PassResult, 1)
	tileChan := make(chan TileCompletionResult, 100)
	errChan := make(chan error, 1)

	if !options.TileUpdates {
		close(tileChan)
	}

	go func() {
		defer close(passChan)
		if options.TileUpdates {
			defer close(tileChan)
		}
		defer close(errChan)
		defer pr.workerPool.Stop()

		pr.logger.Infof("starting progressive render: %d passes", pr.config.MaxPasses)

		for pass := 1; pass <= pr.config.MaxPasses; pass++ {
			select {
			case <-ctx.Done():
				pr.logger.Infof("render cancelled before pass %d", pass)
				errChan <- ctx.Err()
				return
			default:
			}

			startTime := time.Now()

			var tileCallback func(TileCompletionResult)
			if options.TileUpdates {
				tileCallback = func(result TileCompletionResult) {
					select {
					case tileChan <- result:
					case <-ctx.Done():
					default:
					}
				}
			}

			img, stats, err := pr.RenderPass(pass, tileCallback)
			if err != nil {
				errChan <- err
				return
			}

			actualSamples := int(stats.AverageSamples)
			pr.logger.Infof("pass %d done in %v (%d samples/pixel)", pass, time.Since(startTime), actualSamples)

			isLast := pass == pr.config.MaxPasses || actualSamples >= pr.config.MaxSamplesPerPixel
			select {
			case passChan <- PassResult{PassNumber: pass, Image: img, Stats: stats, IsLast: isLast}:
			case <-ctx.Done():
				return
			}

			if actualSamples >= pr.config.MaxSamplesPerPixel {
				pr.logger.Infof("reached max samples/pixel (%d), stopping", pr.config.MaxSamplesPerPixel)
				break
			}
		}
	}()

	return passChan, tileChan, errChan
}
