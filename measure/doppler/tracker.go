package doppler

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-doppler/dsp/core"
	"github.com/cwbudde/algo-doppler/dsp/spectrum"
)

// tracking is the centroid trajectory of one candidate band together with
// its plateau frequencies and Doppler-likeness score.
type tracking struct {
	band   Band
	fStart float64 // approach plateau, Hz
	fEnd   float64 // recede plateau, Hz
	score  float64
	curve  []float64 // smoothed centroid, one value per STFT frame
	times  []float64 // frame centers, seconds
}

// trackBand tracks the power-weighted spectral centroid of one band across
// the grid and scores how Doppler-like the trajectory is. Returns false when
// the band covers no grid rows or yields too few frames to judge.
func trackBand(g spectrum.Grid, band Band, cfg Config) (tracking, bool) {
	var rows []int
	for r, f := range g.Frequencies {
		if f >= band.Low && f <= band.High {
			rows = append(rows, r)
		}
	}

	if len(rows) == 0 {
		return tracking{}, false
	}

	frames := g.Frames()
	if frames < minActiveFrames {
		return tracking{}, false
	}

	// Soft-argmax centroid: raising magnitudes to a high power concentrates
	// the weight on the ridge while staying differentiable across bins.
	centroid := make([]float64, frames)
	energy := make([]float64, frames)

	for c := 0; c < frames; c++ {
		var wSum, fwSum float64
		for _, r := range rows {
			w := math.Pow(g.Power[r][c], cfg.CentroidExponent)
			wSum += w
			fwSum += g.Frequencies[r] * w
		}

		if wSum == 0 {
			wSum = core.Epsilon
		}

		centroid[c] = fwSum / wSum
		energy[c] = wSum
	}

	smooth := medianFilter(centroid, oddKernel(maxInt(5, frames/10)))
	smooth = movingAverage(smooth, maxInt(3, frames/5))

	// Trim to the active region so silence before and after the pass does
	// not dilute the plateau medians.
	start, end := activeRegion(energy)
	active := smooth[start:end]
	if len(active) < minActiveFrames {
		active = smooth
	}

	plateau := maxInt(1, len(active)/plateauFraction)
	fStart := median(active[:plateau])
	fEnd := median(active[len(active)-plateau:])

	score := 0.0
	if drop := fStart - fEnd; drop > 0 {
		falling := 0
		for i := 1; i < len(smooth); i++ {
			if smooth[i] < smooth[i-1] {
				falling++
			}
		}

		monotonicity := float64(falling) / float64(len(smooth)-1)
		score = drop / (fStart + 1e-5) * math.Pow(monotonicity, cfg.MonotonicityExponent)
	}

	return tracking{
		band:   band,
		fStart: fStart,
		fEnd:   fEnd,
		score:  score,
		curve:  smooth,
		times:  g.Times,
	}, true
}

// activeRegion returns the [start, end) frame span whose energy exceeds a
// small fraction of the peak, widened by a few buffer frames. When too few
// frames qualify, the whole span is returned.
func activeRegion(energy []float64) (int, int) {
	n := len(energy)

	peak := 0.0
	for _, e := range energy {
		if e > peak {
			peak = e
		}
	}

	threshold := energyActiveFraction * peak

	first, last, count := -1, -1, 0
	for i, e := range energy {
		if e > threshold {
			if first < 0 {
				first = i
			}

			last = i
			count++
		}
	}

	if count < minActiveFrames {
		return 0, n
	}

	return maxInt(0, first-activeEdgeBuffer), minInt(n, last+activeEdgeBuffer)
}

func median(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}

	sorted := make([]float64, len(v))
	copy(sorted, v)
	sort.Float64s(sorted)

	return stat.Quantile(0.5, stat.Empirical, sorted, nil)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
