package doppler

import (
	"github.com/cwbudde/algo-doppler/dsp/spectrum"
	"github.com/cwbudde/algo-doppler/dsp/window"
)

// Split describes the division of a recording into the approach phase and
// the recede phase around the point of closest approach.
type Split struct {
	TransitionTime float64 // seconds from signal start
	ApproachLen    int     // samples before the transition
	RecedeLen      int     // samples after the transition
}

// SplitApproachRecede locates the point of closest approach, where the
// observed frequency peaks, and splits the recording there.
func SplitApproachRecede(samples []float64, cfg Config) Split {
	cfg = normalizeConfig(cfg)

	n := len(samples)
	if n == 0 || cfg.SampleRate <= 0 {
		return Split{}
	}

	grid := spectrum.STFT(samples, cfg.SampleRate, spectrum.STFTConfig{
		WindowSize: maxInt(minInt(4096, n/4), 256),
		WindowType: window.TypeHann,
	})

	if grid.Frames() == 0 {
		return Split{RecedeLen: n}
	}

	track := spectrum.TrackDominant(grid, cfg.FreqMin, cfg.FreqMax)

	transition := 0
	for i, f := range track {
		if f > track[transition] {
			transition = i
		}
	}

	t := grid.Times[transition]

	splitSample := minInt(int(t*cfg.SampleRate), n)

	return Split{
		TransitionTime: t,
		ApproachLen:    splitSample,
		RecedeLen:      n - splitSample,
	}
}
