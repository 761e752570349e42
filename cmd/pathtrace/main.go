// Command pathtrace renders a test scene with one of the path-tracing
// integrators and writes the result to a PNG, grounded on the teacher's
// root main.go (there a flag-selected scene; here a flag-selected
// integrator, with a timestamped output file under output/<integrator>/).
package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/kschuler/lumentrace/pkg/config"
	"github.com/kschuler/lumentrace/pkg/logging"
	"github.com/kschuler/lumentrace/pkg/pathspace/testscene"
	"github.com/kschuler/lumentrace/pkg/pathtracer"
	"github.com/kschuler/lumentrace/pkg/renderer"
	"github.com/kschuler/lumentrace/pkg/vmath"
	"go.uber.org/zap"
)

func newTracerFactory(name string, cfg *config.Config) (func() pathtracer.PathTracer, error) {
	switch name {
	case "position":
		return func() pathtracer.PathTracer { return pathtracer.NewPositionTracer() }, nil
	case "normal":
		return func() pathtracer.PathTracer { return pathtracer.NewNormalTracer() }, nil
	case "direct":
		return func() pathtracer.PathTracer { return pathtracer.NewDirectTracer() }, nil
	case "uni":
		return func() pathtracer.PathTracer { return pathtracer.NewUnidirectionalTracer() }, nil
	case "uni-nee":
		return func() pathtracer.PathTracer {
			return pathtracer.NewUnidirectLT1Tracer(cfg.Path.DirectLightSamples, cfg.Path.IndirectSplit)
		}, nil
	case "bidirect":
		return func() pathtracer.PathTracer { return pathtracer.NewBidirectLT2Tracer() }, nil
	case "bidirect-mis":
		return func() pathtracer.PathTracer { return pathtracer.NewBidirectMISTracer(cfg.Path.MaxPathLen) }, nil
	default:
		return nil, fmt.Errorf("unknown integrator %q", name)
	}
}

func main() {
	integrator := flag.String("integrator", "uni-nee", "Integrator: position, normal, direct, uni, uni-nee, bidirect, bidirect-mis")
	configPath := flag.String("config", "", "Optional YAML config file overlaying the defaults")
	width := flag.Int("width", 0, "Image width (0 uses config default)")
	height := flag.Int("height", 0, "Image height (0 uses config default)")
	samples := flag.Int("samples", 0, "Samples per pixel (0 uses config default)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		os.Exit(1)
	}
	if *width > 0 {
		cfg.Render.Width = *width
	}
	if *height > 0 {
		cfg.Render.Height = *height
	}
	if *samples > 0 {
		cfg.Render.SamplesPerPixel = *samples
	}

	if err := logging.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "initializing logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	newTracer, err := newTracerFactory(*integrator, cfg)
	if err != nil {
		logging.Error("invalid integrator", zap.Error(err))
		os.Exit(1)
	}

	scene := testscene.Cornell()
	cam := renderer.NewCamera(
		vmath.NewVec3(278, 278, -800),
		vmath.NewVec3(278, 278, 0),
		vmath.NewVec3(0, 1, 0),
		40,
		float32(cfg.Render.Width)/float32(cfg.Render.Height),
	)
	sceneData := renderer.SceneData{
		Space:   scene.Space,
		Mats:    scene.Mats,
		Sources: scene.Sources,
		Camera:  cam,
		Width:   cfg.Render.Width,
		Height:  cfg.Render.Height,
	}

	pconfig := renderer.DefaultProgressiveConfig()
	pconfig.TileSize = cfg.Render.TileSize
	pconfig.NumWorkers = cfg.Render.Workers
	pconfig.MaxSamplesPerPixel = cfg.Render.SamplesPerPixel

	pr := renderer.NewProgressiveRaytracer(sceneData, newTracer, pconfig, renderer.DefaultAdaptiveConfig(), logging.Sugar)

	startTime := time.Now()
	ctx := context.Background()
	passChan, _, errChan := pr.RenderProgressive(ctx, renderer.RenderOptions{})

	var lastResult renderer.PassResult
	for passChan != nil || errChan != nil {
		select {
		case result, ok := <-passChan:
			if !ok {
				passChan = nil
				continue
			}
			lastResult = result
		case err, ok := <-errChan:
			if !ok {
				errChan = nil
				continue
			}
			if err != nil {
				logging.Error("render failed", zap.Error(err))
				os.Exit(1)
			}
		}
	}

	renderTime := time.Since(startTime)
	logging.Info("render completed",
		zap.Duration("elapsed", renderTime),
		zap.Float64("avg_samples", lastResult.Stats.AverageSamples),
		zap.Int("min_samples", lastResult.Stats.MinSamples),
		zap.Int("max_samples", lastResult.Stats.MaxSamplesUsed),
	)

	outputDir := filepath.Join("output", *integrator)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		logging.Error("creating output directory", zap.Error(err))
		os.Exit(1)
	}

	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", time.Now().Format("20060102_150405")))
	file, err := os.Create(filename)
	if err != nil {
		logging.Error("creating output file", zap.Error(err))
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, lastResult.Image); err != nil {
		logging.Error("encoding PNG", zap.Error(err))
		os.Exit(1)
	}

	fmt.Printf("render saved as %s\n", filename)
}
