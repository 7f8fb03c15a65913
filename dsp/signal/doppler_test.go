package signal

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-doppler/internal/testutil"
)

func TestDopplerPassValidate(t *testing.T) {
	cases := []struct {
		name string
		pass DopplerPass
		want error
	}{
		{"zero frequency", DopplerPass{SpeedKmh: 80, Duration: 6, SampleRate: 44100}, ErrInvalidFrequency},
		{"negative frequency", DopplerPass{SourceFreq: -440, SpeedKmh: 80, Duration: 6, SampleRate: 44100}, ErrInvalidFrequency},
		{"zero speed", DopplerPass{SourceFreq: 440, Duration: 6, SampleRate: 44100}, ErrInvalidSpeed},
		{"zero duration", DopplerPass{SourceFreq: 440, SpeedKmh: 80, SampleRate: 44100}, ErrInvalidDuration},
		{"zero rate", DopplerPass{SourceFreq: 440, SpeedKmh: 80, Duration: 6}, ErrInvalidSampleRate},
		{"supersonic", DopplerPass{SourceFreq: 440, SpeedKmh: 2000, Duration: 6, SampleRate: 44100}, ErrSupersonic},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.pass.Validate(); !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestDopplerPassGenerate(t *testing.T) {
	p := DopplerPass{SourceFreq: 440, SpeedKmh: 80, SampleRate: 44100, Duration: 6}

	pass, err := p.Generate()
	if err != nil {
		t.Fatal(err)
	}

	if got, want := len(pass.Signal), 6*44100; got != want {
		t.Fatalf("signal length = %d, want %d", got, want)
	}

	// Peak-normalized to unit amplitude.
	peak := 0.0
	for _, v := range pass.Signal {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}

	if peak > 1 {
		t.Errorf("peak = %g, want <= 1", peak)
	}
	if peak < 0.999 {
		t.Errorf("peak = %g, want ~1 after normalization", peak)
	}

	// Defaults resolved into the echoed parameters.
	if pass.Params.Distance != DefaultDistance {
		t.Errorf("Distance = %g, want default %g", pass.Params.Distance, DefaultDistance)
	}
	if pass.Params.SpeedOfSound != DefaultSpeedOfSound {
		t.Errorf("SpeedOfSound = %g, want default %g", pass.Params.SpeedOfSound, DefaultSpeedOfSound)
	}
}

func TestDopplerPassFrequencyCurve(t *testing.T) {
	p := DopplerPass{SourceFreq: 440, SpeedKmh: 100, SampleRate: 44100, Duration: 6}

	pass, err := p.Generate()
	if err != nil {
		t.Fatal(err)
	}

	curve := pass.FreqOverTime
	if len(curve) == 0 {
		t.Fatal("empty frequency curve")
	}

	// The observed frequency falls monotonically through the pass, starting
	// above the source frequency and ending below it.
	testutil.RequireNonAscending(t, curve)

	if curve[0] <= 440 {
		t.Errorf("approach frequency = %g, want > 440", curve[0])
	}
	if curve[len(curve)-1] >= 440 {
		t.Errorf("recede frequency = %g, want < 440", curve[len(curve)-1])
	}

	// Approach asymptote: f * c / (c - v).
	v := 100 / 3.6
	wantApproach := 440 * DefaultSpeedOfSound / (DefaultSpeedOfSound - v)
	if math.Abs(curve[0]-wantApproach) > 1 {
		t.Errorf("approach frequency = %g, want ~%g", curve[0], wantApproach)
	}
}

func TestDopplerPassAmplitudeBound(t *testing.T) {
	// Peak normalization keeps every sample in [-1, 1] across the corners
	// of the supported frequency and speed ranges.
	cases := []struct {
		freq  float64
		speed float64
	}{
		{50, 1},
		{50, 500},
		{5000, 1},
		{5000, 500},
		{440, 80},
	}

	for _, tc := range cases {
		p := DopplerPass{SourceFreq: tc.freq, SpeedKmh: tc.speed, SampleRate: 8000, Duration: 4}

		pass, err := p.Generate()
		if err != nil {
			t.Fatalf("f=%g v=%g: %v", tc.freq, tc.speed, err)
		}

		testutil.RequireFinite(t, pass.Signal)

		for i, v := range pass.Signal {
			if v < -1 || v > 1 {
				t.Fatalf("f=%g v=%g: sample %d = %g out of [-1, 1]", tc.freq, tc.speed, i, v)
			}
		}
	}
}

func TestDopplerPassDisplayCurves(t *testing.T) {
	p := DopplerPass{SourceFreq: 440, SpeedKmh: 80, SampleRate: 44100, Duration: 6}

	pass, err := p.Generate()
	if err != nil {
		t.Fatal(err)
	}

	n := len(pass.Time)
	if n < 2000 || n > 2200 {
		t.Errorf("display points = %d, want ~2000", n)
	}
	if len(pass.Waveform) != n || len(pass.FreqOverTime) != n || len(pass.TimeFreq) != n {
		t.Errorf("curve lengths differ: time=%d wave=%d freq=%d timefreq=%d",
			n, len(pass.Waveform), len(pass.FreqOverTime), len(pass.TimeFreq))
	}
}

func TestDopplerPassDeterministic(t *testing.T) {
	p := DopplerPass{SourceFreq: 440, SpeedKmh: 80, SampleRate: 44100, Duration: 2}

	a, err := p.Generate()
	if err != nil {
		t.Fatal(err)
	}

	b, err := p.Generate()
	if err != nil {
		t.Fatal(err)
	}

	for i := range a.Signal {
		if a.Signal[i] != b.Signal[i] {
			t.Fatalf("non-deterministic at sample %d", i)
		}
	}
}

func TestDopplerPassCustomGeometry(t *testing.T) {
	near := DopplerPass{SourceFreq: 440, SpeedKmh: 80, SampleRate: 8000, Duration: 4, Distance: 2}
	far := DopplerPass{SourceFreq: 440, SpeedKmh: 80, SampleRate: 8000, Duration: 4, Distance: 50}

	np, err := near.Generate()
	if err != nil {
		t.Fatal(err)
	}

	fp, err := far.Generate()
	if err != nil {
		t.Fatal(err)
	}

	// A distant observer sees a gentler frequency transition: the observed
	// range at mid-pass stays closer to the source frequency.
	mid := len(np.FreqOverTime) / 2
	nearSlope := np.FreqOverTime[mid-10] - np.FreqOverTime[mid+10]
	farSlope := fp.FreqOverTime[mid-10] - fp.FreqOverTime[mid+10]

	if nearSlope <= farSlope {
		t.Errorf("near slope %g should exceed far slope %g", nearSlope, farSlope)
	}
}
