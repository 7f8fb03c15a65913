package spectrum

import (
	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-doppler/dsp/core"
	"github.com/cwbudde/algo-doppler/dsp/window"
)

// Grid is a short-time time-frequency representation.
//
// Power is indexed [frequency][time] and holds linear magnitudes (not squared,
// not dB). Invariant: len(Power) == len(Frequencies) and every row has
// len(Times) columns.
type Grid struct {
	Times       []float64 // frame centers, seconds, ascending
	Frequencies []float64 // bin frequencies, Hz, ascending
	Power       [][]float64
}

// Frames returns the number of time columns.
func (g Grid) Frames() int { return len(g.Times) }

// DB returns the grid magnitudes converted to decibels, with the shared
// epsilon guarding silent cells. Display aid only; the analysis chain works
// on the linear magnitudes.
func (g Grid) DB() [][]float64 {
	out := make([][]float64, len(g.Power))
	for r, row := range g.Power {
		out[r] = make([]float64, len(row))
		for c, v := range row {
			out[r][c] = core.LinearToDB(v + core.Epsilon)
		}
	}

	return out
}

// STFTConfig holds short-time transform parameters.
type STFTConfig struct {
	WindowSize int
	Overlap    float64 // fraction of WindowSize shared between frames, default 0.5
	WindowType window.Type
}

func normalizeSTFTConfig(cfg STFTConfig) STFTConfig {
	if cfg.WindowSize <= 0 {
		cfg.WindowSize = 1024
	}

	if cfg.Overlap <= 0 || cfg.Overlap >= 1 {
		cfg.Overlap = 0.5
	}

	if cfg.WindowType == 0 {
		cfg.WindowType = window.TypeHann
	}

	return cfg
}

// STFT computes a short-time transform of samples.
//
// Frames advance by WindowSize*(1-Overlap) samples; the final frame is
// zero-padded. The same configuration must be used for grids that are
// compared against each other. Empty input yields a zero-valued Grid.
func STFT(samples []float64, sampleRate float64, cfg STFTConfig) Grid {
	n := len(samples)
	if n == 0 || sampleRate <= 0 {
		return Grid{}
	}

	cfg = normalizeSTFTConfig(cfg)
	w := cfg.WindowSize

	hop := w - int(float64(w)*cfg.Overlap)
	if hop < 1 {
		hop = 1
	}

	frames := 1
	if n > w {
		frames = 1 + (n-w+hop-1)/hop
	}

	fftSize := core.NextPowerOf2(w)
	bins := fftSize/2 + 1

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Grid{}
	}

	coeffs := window.Generate(cfg.WindowType, w, window.WithPeriodic())

	binHz := sampleRate / float64(fftSize)
	freqs := make([]float64, bins)
	for i := range freqs {
		freqs[i] = float64(i) * binHz
	}

	power := make([][]float64, bins)
	for r := range power {
		power[r] = make([]float64, frames)
	}

	times := make([]float64, frames)

	in := make([]complex128, fftSize)
	out := make([]complex128, fftSize)
	frame := make([]float64, w)
	re := make([]float64, bins)
	im := make([]float64, bins)
	mag := make([]float64, bins)

	for f := 0; f < frames; f++ {
		start := f * hop
		times[f] = (float64(start) + float64(w)/2) / sampleRate

		for i := range frame {
			if start+i < n {
				frame[i] = samples[start+i]
			} else {
				frame[i] = 0
			}
		}

		vecmath.MulBlockInPlace(frame, coeffs)

		for i := 0; i < fftSize; i++ {
			if i < w {
				in[i] = complex(frame[i], 0)
			} else {
				in[i] = 0
			}
		}

		if err := plan.Forward(out, in); err != nil {
			return Grid{}
		}

		for i := 0; i < bins; i++ {
			re[i] = real(out[i])
			im[i] = imag(out[i])
		}

		vecmath.Magnitude(mag, re, im)

		for r := 0; r < bins; r++ {
			power[r][f] = mag[r]
		}
	}

	return Grid{Times: times, Frequencies: freqs, Power: power}
}
