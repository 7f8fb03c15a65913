package spectrum

import (
	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-doppler/dsp/core"
)

// Spectrum holds a one-sided magnitude spectrum as parallel slices of
// ascending frequencies (Hz) and non-negative magnitudes.
type Spectrum struct {
	Frequencies []float64
	Magnitudes  []float64
}

// FallbackDominantHz is returned by [DominantFrequency] when no bin at or
// above the requested minimum frequency exists. A mid-range default keeps
// downstream candidate-band construction sensible for degenerate inputs.
const FallbackDominantHz = 1000.0

// Compute returns the one-sided magnitude spectrum of samples.
//
// The input is zero-padded to the next power of two for the transform, so
// bin i sits at i*sampleRate/fftSize. Magnitudes are scaled by 2/len(samples)
// so a single sinusoid of amplitude A reports a magnitude of approximately A.
// Empty input yields a zero-valued Spectrum rather than an error.
func Compute(samples []float64, sampleRate float64) Spectrum {
	n := len(samples)
	if n == 0 || sampleRate <= 0 {
		return Spectrum{}
	}

	fftSize := core.NextPowerOf2(n)

	in := make([]complex128, fftSize)
	for i, v := range samples {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, fftSize)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Spectrum{}
	}

	if err := plan.Forward(out, in); err != nil {
		return Spectrum{}
	}

	bins := fftSize/2 + 1

	re := make([]float64, bins)
	im := make([]float64, bins)

	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mags := make([]float64, bins)
	vecmath.Magnitude(mags, re, im)

	scale := 2 / float64(n)
	binHz := sampleRate / float64(fftSize)

	freqs := make([]float64, bins)
	for i := range mags {
		mags[i] *= scale
		freqs[i] = float64(i) * binHz
	}

	return Spectrum{Frequencies: freqs, Magnitudes: mags}
}

// DominantFrequency returns the frequency of the maximum-magnitude bin at or
// above minFreq. When no bin qualifies it falls back to [FallbackDominantHz];
// this is a deliberate heuristic, not an error.
func DominantFrequency(s Spectrum, minFreq float64) float64 {
	bestFreq := 0.0
	bestMag := -1.0

	for i, f := range s.Frequencies {
		if f < minFreq {
			continue
		}

		if s.Magnitudes[i] > bestMag {
			bestMag = s.Magnitudes[i]
			bestFreq = f
		}
	}

	if bestMag < 0 {
		return FallbackDominantHz
	}

	return bestFreq
}

// ParabolicPeakOffset fits a parabola through the peak bin and its neighbours
// and returns the fractional bin offset of the true maximum. Returns 0 for
// peaks at the edges or for flat neighbourhoods.
func ParabolicPeakOffset(magnitudes []float64, peak int) float64 {
	if peak <= 0 || peak >= len(magnitudes)-1 {
		return 0
	}

	alpha := magnitudes[peak-1]
	beta := magnitudes[peak]
	gamma := magnitudes[peak+1]

	denom := alpha - 2*beta + gamma
	if denom > -core.Epsilon && denom < core.Epsilon {
		return 0
	}

	return 0.5 * (alpha - gamma) / denom
}
