package filter

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-doppler/internal/testutil"
	timestats "github.com/cwbudde/algo-doppler/stats/time"
)

// steadyRMS filters the signal and returns the RMS of the second half,
// skipping the filter's transient.
func steadyRMS(c Chain, sig []float64) float64 {
	out := c.Process(sig)
	return timestats.RMS(out[len(out)/2:])
}

func TestButterworthLP_Passband(t *testing.T) {
	sig := testutil.DeterministicSine(100, 44100, 1.0, 44100)

	got := steadyRMS(ButterworthLP(1000, 5, 44100), sig)
	want := 1.0 / math.Sqrt2

	if math.Abs(got-want)/want > 0.01 {
		t.Errorf("passband RMS = %g, want ~%g", got, want)
	}
}

func TestButterworthLP_Stopband(t *testing.T) {
	sig := testutil.DeterministicSine(10000, 44100, 1.0, 44100)

	got := steadyRMS(ButterworthLP(1000, 5, 44100), sig)

	// A 5th-order filter a decade above cutoff attenuates by ~100 dB.
	if got > 0.001 {
		t.Errorf("stopband RMS = %g, want < 0.001", got)
	}
}

func TestButterworthHP(t *testing.T) {
	low := testutil.DeterministicSine(20, 44100, 1.0, 44100)
	high := testutil.DeterministicSine(2000, 44100, 1.0, 44100)

	c := ButterworthHP(200, 5, 44100)

	if got := steadyRMS(c, low); got > 0.01 {
		t.Errorf("stopband RMS = %g, want < 0.01", got)
	}

	want := 1.0 / math.Sqrt2
	if got := steadyRMS(c, high); math.Abs(got-want)/want > 0.02 {
		t.Errorf("passband RMS = %g, want ~%g", got, want)
	}
}

func TestBandpass(t *testing.T) {
	c := Bandpass(200, 2000, 5, 44100)

	inBand := testutil.DeterministicSine(700, 44100, 1.0, 44100)
	below := testutil.DeterministicSine(30, 44100, 1.0, 44100)
	above := testutil.DeterministicSine(12000, 44100, 1.0, 44100)

	want := 1.0 / math.Sqrt2
	if got := steadyRMS(c, inBand); math.Abs(got-want)/want > 0.05 {
		t.Errorf("in-band RMS = %g, want ~%g", got, want)
	}
	if got := steadyRMS(c, below); got > 0.01 {
		t.Errorf("below-band RMS = %g, want < 0.01", got)
	}
	if got := steadyRMS(c, above); got > 0.01 {
		t.Errorf("above-band RMS = %g, want < 0.01", got)
	}
}

func TestBandpass_SectionCount(t *testing.T) {
	// Order 5 per side: two biquads plus one first-order section each.
	c := Bandpass(200, 2000, 5, 44100)
	if len(c) != 6 {
		t.Errorf("sections = %d, want 6", len(c))
	}

	c = Bandpass(200, 2000, 4, 44100)
	if len(c) != 4 {
		t.Errorf("sections = %d, want 4", len(c))
	}
}

func TestChainProcess_Stateless(t *testing.T) {
	c := ButterworthLP(1000, 4, 44100)
	sig := testutil.DeterministicNoise(3, 1.0, 4096)

	a := c.Process(sig)
	b := c.Process(sig)

	diff, err := testutil.MaxAbsDiff(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if diff != 0 {
		t.Errorf("repeated Process differs by %g, want bit-identical", diff)
	}
}

func TestDesign_InvalidParameters(t *testing.T) {
	// Out-of-range cutoffs degrade to pass-through sections, never panic.
	c := ButterworthLP(30000, 4, 44100)
	sig := testutil.DeterministicSine(1000, 44100, 1.0, 4096)

	out := c.Process(sig)
	diff, err := testutil.MaxAbsDiff(out, sig)
	if err != nil {
		t.Fatal(err)
	}
	if diff > 1e-12 {
		t.Errorf("pass-through differs from input by %g", diff)
	}

	if got := ButterworthLP(1000, 0, 44100); got != nil {
		t.Errorf("order 0: got %d sections, want nil", len(got))
	}
}
