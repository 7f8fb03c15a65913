package signal

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-doppler/dsp/core"
)

func TestGeneratorSine(t *testing.T) {
	g := NewGenerator(1, core.WithSampleRate(8000))

	sig, err := g.Sine(1000, 0.5, 8000)
	if err != nil {
		t.Fatal(err)
	}

	if len(sig) != 8000 {
		t.Fatalf("len = %d, want 8000", len(sig))
	}
	if sig[0] != 0 {
		t.Errorf("sig[0] = %g, want 0", sig[0])
	}

	for i, v := range sig {
		if math.Abs(v) > 0.5 {
			t.Fatalf("sig[%d] = %g exceeds amplitude", i, v)
		}
	}
}

func TestGeneratorSine_Invalid(t *testing.T) {
	g := NewGenerator(1)
	if _, err := g.Sine(440, 1, 0); err == nil {
		t.Error("expected error for zero samples")
	}
}

func TestGeneratorWhiteNoise_Deterministic(t *testing.T) {
	a, err := NewGenerator(42).WhiteNoise(1, 256)
	if err != nil {
		t.Fatal(err)
	}

	b, err := NewGenerator(42).WhiteNoise(1, 256)
	if err != nil {
		t.Fatal(err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seeded noise differs at %d", i)
		}
	}

	c, err := NewGenerator(43).WhiteNoise(1, 256)
	if err != nil {
		t.Fatal(err)
	}

	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical noise")
	}
}

func TestMix(t *testing.T) {
	dst := []float64{1, 2, 3}
	out := Mix(dst, []float64{0.5, -0.5, 1})

	if out[0] != 1.5 || out[1] != 1.5 || out[2] != 4 {
		t.Errorf("mix = %v, want [1.5 1.5 4]", out)
	}

	// A shorter source leaves the tail of dst untouched.
	dst = []float64{1, 1, 1}
	Mix(dst, []float64{1})
	if dst[0] != 2 || dst[1] != 1 || dst[2] != 1 {
		t.Errorf("truncated mix = %v, want [2 1 1]", dst)
	}
}

func TestNormalize(t *testing.T) {
	out, err := Normalize([]float64{0.5, -0.25}, 1.0)
	if err != nil {
		t.Fatal(err)
	}

	if out[0] != 1 || out[1] != -0.5 {
		t.Errorf("got %v, want [1 -0.5]", out)
	}

	// Silence normalizes to silence.
	out, err = Normalize([]float64{0, 0}, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	if out[0] != 0 || out[1] != 0 {
		t.Errorf("got %v, want zeros", out)
	}

	if _, err := Normalize(nil, 1.0); err == nil {
		t.Error("expected error for empty input")
	}
}
