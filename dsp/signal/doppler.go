package signal

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-doppler/dsp/core"
)

// Errors returned by DopplerPass functions.
var (
	ErrInvalidFrequency  = errors.New("doppler: source frequency must be positive")
	ErrInvalidSpeed      = errors.New("doppler: speed must be positive")
	ErrInvalidDuration   = errors.New("doppler: duration must be positive")
	ErrInvalidSampleRate = errors.New("doppler: sample rate must be positive")
	ErrSupersonic        = errors.New("doppler: speed must stay below the speed of sound")
)

// DefaultSpeedOfSound is the speed of sound in air in m/s.
const DefaultSpeedOfSound = 343.0

// DefaultDistance is the observer's perpendicular distance from the source
// path in meters.
const DefaultDistance = 10.0

// displayPoints is the approximate length of the downsampled curves kept for
// plotting.
const displayPoints = 2000

// DopplerPass synthesizes the sound of a tonal source passing a stationary
// observer in a straight line at constant speed.
//
// The source crosses its closest approach at Duration/2, at perpendicular
// distance Distance from the observer. The observed frequency follows the
// classical Doppler equation for a moving source and stationary observer,
// and the amplitude falls off with inverse distance. Generation is pure and
// deterministic.
type DopplerPass struct {
	SourceFreq float64 // source tone in Hz
	SpeedKmh   float64 // source speed in km/h
	SampleRate float64 // sample rate in Hz
	Duration   float64 // total duration in seconds

	// Distance and SpeedOfSound are optional; zero values select
	// [DefaultDistance] and [DefaultSpeedOfSound].
	Distance     float64
	SpeedOfSound float64
}

// Pass holds a synthesized pass-by signal together with downsampled curves
// for display and the echoed generation parameters.
type Pass struct {
	Signal     []float64
	SampleRate float64

	// Downsampled display curves, all the same length (~2000 points).
	Time         []float64 // seconds
	Waveform     []float64 // signal values
	FreqOverTime []float64 // observed frequency in Hz
	TimeFreq     []float64 // time axis for FreqOverTime (same as Time)

	Params DopplerPass // inputs with defaults resolved
}

// Validate checks that the DopplerPass parameters are valid.
func (p *DopplerPass) Validate() error {
	if p.SourceFreq <= 0 {
		return ErrInvalidFrequency
	}

	if p.SpeedKmh <= 0 {
		return ErrInvalidSpeed
	}

	if p.Duration <= 0 {
		return ErrInvalidDuration
	}

	if p.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}

	c := p.SpeedOfSound
	if c == 0 {
		c = DefaultSpeedOfSound
	}

	if p.SpeedKmh/3.6 >= c {
		return ErrSupersonic
	}

	return nil
}

// Generate synthesizes the pass-by signal.
//
// At each sample the source position is x(t) = v*(t - Duration/2), the
// distance r(t) = sqrt(x² + d²), and the radial velocity (positive receding)
// v_r(t) = v*x/r. The observed frequency is
//
//	f_obs(t) = f_src * c / (c + v_r(t))
//
// The waveform is sin of the running phase sum of f_obs, attenuated by d/r
// and peak-normalized to unit amplitude.
func (p *DopplerPass) Generate() (Pass, error) {
	if err := p.Validate(); err != nil {
		return Pass{}, err
	}

	params := *p
	if params.Distance == 0 {
		params.Distance = DefaultDistance
	}

	if params.SpeedOfSound == 0 {
		params.SpeedOfSound = DefaultSpeedOfSound
	}

	v := params.SpeedKmh / 3.6
	d := params.Distance
	c := params.SpeedOfSound
	sr := params.SampleRate

	n := int(math.Round(params.Duration * sr))
	if n < 1 {
		n = 1
	}

	tMid := params.Duration / 2

	sig := make([]float64, n)
	freqs := make([]float64, n)

	phase := 0.0
	maxAbs := 0.0

	for i := 0; i < n; i++ {
		t := float64(i) / sr

		x := v * (t - tMid)
		r := math.Sqrt(x*x + d*d)
		radial := v * x / r

		f := params.SourceFreq * c / (c + radial)
		freqs[i] = f

		phase += 2 * math.Pi * f / sr

		s := math.Sin(phase) * d / r
		sig[i] = s

		if a := math.Abs(s); a > maxAbs {
			maxAbs = a
		}
	}

	scale := 1 / (maxAbs + core.Epsilon)
	for i := range sig {
		sig[i] *= scale
	}

	ds := n / displayPoints
	if ds < 1 {
		ds = 1
	}

	points := (n + ds - 1) / ds

	times := make([]float64, 0, points)
	wave := make([]float64, 0, points)
	freqCurve := make([]float64, 0, points)

	for i := 0; i < n; i += ds {
		times = append(times, float64(i)/sr)
		wave = append(wave, sig[i])
		freqCurve = append(freqCurve, freqs[i])
	}

	return Pass{
		Signal:       sig,
		SampleRate:   sr,
		Time:         times,
		Waveform:     wave,
		FreqOverTime: freqCurve,
		TimeFreq:     times,
		Params:       params,
	}, nil
}
