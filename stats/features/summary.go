// Package features summarizes a recording into a compact set of spectral and
// temporal descriptors suitable for display alongside a velocity estimate.
package features

import (
	"github.com/cwbudde/algo-doppler/dsp/spectrum"
	"github.com/cwbudde/algo-doppler/stats/frequency"
	timestats "github.com/cwbudde/algo-doppler/stats/time"
)

// Summary is a compact feature vector describing a recording.
type Summary struct {
	SpectralCentroid  float64 // Hz
	SpectralBandwidth float64 // Hz
	SpectralRolloff   float64 // Hz
	ZeroCrossingRate  float64
	DominantFreq      float64 // Hz
	Energy            float64 // mean sample power
	HarmonicRatio     float64
}

// Summarize computes the feature summary of a recording. Empty input yields
// a zero-valued Summary.
func Summarize(signal []float64, sampleRate float64) Summary {
	if len(signal) == 0 || sampleRate <= 0 {
		return Summary{}
	}

	spec := spectrum.Compute(signal, sampleRate)
	fs := frequency.Calculate(spec.Magnitudes, sampleRate)

	var energy float64
	for _, x := range signal {
		energy += x * x
	}

	energy /= float64(len(signal))

	return Summary{
		SpectralCentroid:  fs.Centroid,
		SpectralBandwidth: fs.Bandwidth,
		SpectralRolloff:   fs.Rolloff,
		ZeroCrossingRate:  timestats.ZeroCrossingRate(signal),
		DominantFreq:      fs.Dominant,
		Energy:            energy,
		HarmonicRatio:     fs.HarmonicRatio,
	}
}
