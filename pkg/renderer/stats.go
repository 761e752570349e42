package renderer

import "github.com/kschuler/lumentrace/pkg/vmath"

// RenderStats summarizes one rendering pass, grounded on the teacher's
// pkg/renderer/stats.go.
type RenderStats struct {
	TotalPixels    int
	TotalSamples   int
	AverageSamples float64
	MaxSamples     int
	MinSamples     int
	MaxSamplesUsed int
}

// PixelStats tracks adaptive-sampling statistics for a single pixel.
type PixelStats struct {
	ColorAccum       vmath.Color3
	LuminanceAccum   float64
	LuminanceSqAccum float64
	SampleCount      int
}

// luminance is the Rec. 709 relative-luminance weighting, used only to
// drive adaptive-sampling convergence, never for the transported color
// itself.
func luminance(c vmath.Color3) float32 {
	return 0.2126*c.X() + 0.7152*c.Y() + 0.0722*c.Z()
}

// AddSample folds one more radiance sample into the pixel's statistics.
func (ps *PixelStats) AddSample(color vmath.Color3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	l := float64(luminance(color))
	ps.LuminanceAccum += l
	ps.LuminanceSqAccum += l * l
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel.
func (ps *PixelStats) GetColor() vmath.Color3 {
	if ps.SampleCount == 0 {
		return vmath.Color3{}
	}
	return ps.ColorAccum.Mul(1.0 / float32(ps.SampleCount))
}
