// Package time computes time-domain statistics of audio recordings.
package time

import (
	"math"
	"sort"
)

// Stats holds time-domain statistics of a recording.
//
//nolint:revive
type Stats struct {
	Length        int
	Mean          float64
	Std           float64 // population standard deviation
	RMS           float64
	Min           float64
	Max           float64
	PeakToPeak    float64
	SNR_dB        float64 // estimated signal-to-noise ratio
	Energy        float64 // sum of squares
	Power         float64 // energy / length
	ZeroCrossings int
	Duration      float64 // seconds; 0 when the sample rate is unknown
}

// Calculate computes all statistics in a single pass over the signal, using
// Welford's online algorithm for a numerically stable variance. Pass
// sampleRate 0 when it is unknown; Duration is then left at zero.
func Calculate(signal []float64, sampleRate float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{SNR_dB: math.Inf(-1)}
	}

	var (
		mean  float64
		m2    float64
		sumSq float64

		minVal        = signal[0]
		maxVal        = signal[0]
		zeroCrossings int
	)

	for i, x := range signal {
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)

		sumSq += x * x

		if x > maxVal {
			maxVal = x
		}

		if x < minVal {
			minVal = x
		}

		if i > 0 && signal[i-1]*x < 0 {
			zeroCrossings++
		}
	}

	nf := float64(n)

	s := Stats{
		Length:        n,
		Mean:          mean,
		Std:           math.Sqrt(m2 / nf),
		RMS:           math.Sqrt(sumSq / nf),
		Min:           minVal,
		Max:           maxVal,
		PeakToPeak:    maxVal - minVal,
		SNR_dB:        SNR(signal),
		Energy:        sumSq,
		Power:         sumSq / nf,
		ZeroCrossings: zeroCrossings,
	}

	if sampleRate > 0 {
		s.Duration = nf / sampleRate
	}

	return s
}

// SNR estimates the signal-to-noise ratio in dB, taking the quietest tenth of
// the samples (by absolute value) as the noise floor. Returns -Inf for empty
// or silent input.
func SNR(signal []float64) float64 {
	n := len(signal)
	if n == 0 {
		return math.Inf(-1)
	}

	var signalPower float64
	sorted := make([]float64, n)

	for i, x := range signal {
		signalPower += x * x
		sorted[i] = math.Abs(x)
	}

	signalPower /= float64(n)
	if signalPower == 0 {
		return math.Inf(-1)
	}

	sort.Float64s(sorted)

	quiet := n / 10
	if quiet < 1 {
		quiet = 1
	}

	var noisePower float64
	for _, a := range sorted[:quiet] {
		noisePower += a * a
	}

	noisePower /= float64(quiet)

	return 10 * math.Log10(signalPower/(noisePower+1e-10))
}

// Mean returns the mean of the signal using Kahan summation.
func Mean(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sum, c float64
	for _, x := range signal {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(signal))
}

// RMS returns the root-mean-square of the signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sumSq float64
	for _, x := range signal {
		sumSq += x * x
	}

	return math.Sqrt(sumSq / float64(len(signal)))
}

// Peak returns the peak absolute amplitude of the signal.
func Peak(signal []float64) float64 {
	var peak float64
	for _, x := range signal {
		a := math.Abs(x)
		if a > peak {
			peak = a
		}
	}

	return peak
}

// ZeroCrossings returns the number of sign changes between consecutive
// samples.
func ZeroCrossings(signal []float64) int {
	var count int

	for i := 1; i < len(signal); i++ {
		if signal[i-1]*signal[i] < 0 {
			count++
		}
	}

	return count
}

// ZeroCrossingRate returns the zero-crossing count normalized by the signal
// length.
func ZeroCrossingRate(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	return float64(ZeroCrossings(signal)) / float64(len(signal))
}
