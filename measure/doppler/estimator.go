package doppler

import (
	"fmt"

	"github.com/cwbudde/algo-doppler/dsp/spectrum"
	"github.com/cwbudde/algo-doppler/dsp/window"
)

// Estimator runs multi-band centroid tracking with a fixed configuration.
// The zero value is not usable; construct with [NewEstimator].
type Estimator struct {
	cfg Config
}

// NewEstimator returns an Estimator for the given configuration. Zero-valued
// fields select the calibrated defaults.
func NewEstimator(cfg Config) *Estimator {
	return &Estimator{cfg: normalizeConfig(cfg)}
}

// Estimate runs the estimator over samples and returns a Result. This is the
// one-shot convenience form of [Estimator.Estimate].
func Estimate(samples []float64, cfg Config) Result {
	return NewEstimator(cfg).Estimate(samples)
}

// Estimate analyzes a Doppler-shifted recording and estimates source velocity
// and true emission frequency.
//
// The primary analysis window is the largest feasible (finest frequency
// resolution); when its best band scores below the fallback threshold,
// alternative window sizes trade frequency resolution for time resolution,
// which recovers fast passes that smear across long frames.
func (e *Estimator) Estimate(samples []float64) Result {
	cfg := e.cfg
	if len(samples) == 0 || cfg.SampleRate <= 0 {
		return errorResult(msgNoSignature)
	}

	dominant := spectrum.DominantFrequency(
		spectrum.Compute(samples, cfg.SampleRate), cfg.FreqMin)

	bands := cfg.Bands
	if bands == nil {
		bands = candidateBands(dominant, cfg)
	}

	primary := cfg.PrimaryWindow
	if primary <= 0 {
		primary = maxInt(minInt(maxAnalysisWindow, len(samples)/4), minAnalysisWindow)
	}

	best, found := e.scan(samples, primary, bands)

	if !found || best.score < cfg.FallbackThreshold {
		for _, alt := range cfg.FallbackWindows {
			if alt == primary || alt > len(samples)/4 {
				continue
			}

			t, ok := e.scan(samples, alt, bands)
			if ok && (!found || t.score > best.score) {
				best = t
				found = true
			}
		}
	}

	if !found || best.score <= cfg.MinScore {
		return errorResult(msgNoSignature)
	}

	fApp := best.fStart
	fRec := best.fEnd

	fSum := fApp + fRec
	if fSum <= 0 {
		return errorResult(msgShiftTooSmall)
	}

	fDiff := fApp - fRec
	if fDiff/fSum < cfg.MinRelativeShift {
		return errorResult(msgShiftTooSmall)
	}

	vMs := SpeedOfSound * fDiff / fSum
	vKmh := vMs * 3.6

	if vKmh > cfg.MaxSpeedKmh {
		return errorResult(fmt.Sprintf("Estimated velocity %.0f km/h unrealistic", vKmh))
	}

	fEst := 2 * fApp * fRec / fSum

	curve, axis := downsampleCurve(best.curve, best.times)

	return Result{
		VelocityKmh:   vKmh,
		VelocityMs:    vMs,
		EstimatedFreq: fEst,
		ApproachFreq:  fApp,
		RecedeFreq:    fRec,
		DominantFreq:  dominant,
		Band:          best.band,
		Score:         best.score,
		FreqOverTime:  curve,
		FreqTimeAxis:  axis,
		Algorithm:     Algorithm,
	}
}

// scan runs band tracking at one STFT resolution and returns the best-scoring
// band. A band that scores zero still wins over no band at all; the caller
// applies the minimum-score rejection.
func (e *Estimator) scan(samples []float64, windowSize int, bands []Band) (tracking, bool) {
	grid := spectrum.STFT(samples, e.cfg.SampleRate, spectrum.STFTConfig{
		WindowSize: windowSize,
		Overlap:    e.cfg.Overlap,
		WindowType: window.TypeHann,
	})

	if grid.Frames() == 0 {
		return tracking{}, false
	}

	var best tracking
	found := false

	for _, band := range bands {
		if band.Low >= band.High {
			continue
		}

		t, ok := trackBand(grid, band, e.cfg)
		if !ok {
			continue
		}

		if !found || t.score > best.score {
			best = t
			found = true
		}
	}

	return best, found
}

// candidateBands builds the fixed candidate bands plus two adaptive bands
// centered on the dominant frequency, clipped to the configured search range.
func candidateBands(dominant float64, cfg Config) []Band {
	bands := []Band{
		{50, 200},
		{200, 500},
		{500, 1000},
		{1000, 2000},
		{2000, 5000},
		{maxFloat(cfg.FreqMin, dominant*0.7), minFloat(cfg.FreqMax, dominant*1.3)},
		{maxFloat(cfg.FreqMin, dominant*0.4), minFloat(cfg.FreqMax, dominant*4.0)},
	}

	return bands
}

// downsampleCurve thins the display curve to at most displayPoints entries,
// keeping curve and time axis aligned.
func downsampleCurve(curve, times []float64) ([]float64, []float64) {
	n := minInt(len(curve), len(times))

	step := maxInt(1, n/displayPoints)

	outCurve := make([]float64, 0, n/step+1)
	outTimes := make([]float64, 0, n/step+1)

	for i := 0; i < n; i += step {
		outCurve = append(outCurve, curve[i])
		outTimes = append(outTimes, times[i])
	}

	return outCurve, outTimes
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}

	return b
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}

	return b
}
