// Package config handles path tracer configuration loading, grounded on
// the teacher's internal/config package (default-then-file-overlay
// loading, yaml-tagged struct).
package config

// Config holds the tunables every integrator and the renderer draw on.
type Config struct {
	Path    PathConfig    `yaml:"path"`
	Render  RenderConfig  `yaml:"render"`
	Logging LoggingConfig `yaml:"logging"`
}

// PathConfig holds the random-walk and shadow-ray settings. The demo
// driver passes MaxPathLen, DirectLightSamples and IndirectSplit to the
// tracers it builds. RRMinDepth, RRSurvival and ShadowEpsilonMin/Max are
// loaded and defaulted here, but no tracer reads them: the tracers use
// their own built-in constants for Russian roulette and shadow rays.
type PathConfig struct {
	// MaxPathLen bounds how many vertices a sampled path may have.
	MaxPathLen int `yaml:"max_path_len"`

	// RRMinDepth is the depth at which Russian roulette termination
	// starts being applied (below it, paths always survive).
	RRMinDepth int `yaml:"rr_min_depth"`

	// RRSurvival is the survival probability used once RRMinDepth is
	// reached.
	RRSurvival float32 `yaml:"rr_survival"`

	// ShadowEpsilonMin/Max bound the shadow ray's valid t-range to
	// avoid self-intersection at both ends of the connection segment.
	ShadowEpsilonMin float32 `yaml:"shadow_epsilon_min"`
	ShadowEpsilonMax float32 `yaml:"shadow_epsilon_max"`

	// DirectLightSamples is the number of light samples
	// UnidirectLT1Tracer spends at every vertex.
	DirectLightSamples int `yaml:"direct_light_samples"`

	// IndirectSplit is the number of indirect samples
	// UnidirectLT1Tracer spends at its first vertex.
	IndirectSplit int `yaml:"indirect_split"`
}

// RenderConfig controls the worker pool and output image.
type RenderConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	SamplesPerPixel int `yaml:"samples_per_pixel"`
	Workers     int `yaml:"workers"`
	TileSize    int `yaml:"tile_size"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values, matching the
// original engine's published constants where the spec names them.
func Default() *Config {
	return &Config{
		Path: PathConfig{
			MaxPathLen:         5,
			RRMinDepth:         2,
			RRSurvival:         0.5,
			ShadowEpsilonMin:   1e-4,
			ShadowEpsilonMax:   1e-3,
			DirectLightSamples: 1,
			IndirectSplit:      1,
		},
		Render: RenderConfig{
			Width:           640,
			Height:          480,
			SamplesPerPixel: 64,
			Workers:         0, // 0 means runtime.NumCPU()
			TileSize:        32,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
