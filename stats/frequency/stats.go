// Package frequency computes spectral shape descriptors from a one-sided
// magnitude spectrum.
package frequency

import "math"

// Stats holds spectral shape descriptors computed from a magnitude spectrum.
type Stats struct {
	BinCount      int
	Centroid      float64 // magnitude-weighted mean frequency, Hz
	Bandwidth     float64 // magnitude-weighted std around the centroid, Hz
	Rolloff       float64 // frequency containing 85% of the magnitude, Hz
	Dominant      float64 // strongest non-DC bin, Hz
	HarmonicRatio float64 // energy near harmonics of Dominant / total, 0..1
	Energy        float64 // sum of squared magnitudes
	Max           float64
	MaxBin        int
}

const rolloffFraction = 0.85

// binFreq returns the frequency in Hz of bin i of a one-sided spectrum.
// fftSize = 2 * (binCount - 1).
func binFreq(i int, sampleRate float64, binCount int) float64 {
	return float64(i) * sampleRate / float64(2*(binCount-1))
}

// Calculate computes all descriptors from a magnitude spectrum (linear scale,
// NOT dB). The magnitude slice represents bins from 0 (DC) to Nyquist; the
// frequency of bin i is i * sampleRate / (2 * (len(magnitude) - 1)).
func Calculate(magnitude []float64, sampleRate float64) Stats {
	n := len(magnitude)
	if n < 2 {
		return Stats{BinCount: n}
	}

	var s Stats
	s.BinCount = n
	s.Max = magnitude[0]

	for i, v := range magnitude {
		s.Energy += v * v
		if v > s.Max {
			s.Max = v
			s.MaxBin = i
		}
	}

	s.Centroid = Centroid(magnitude, sampleRate)
	s.Bandwidth = Bandwidth(magnitude, sampleRate)
	s.Rolloff = Rolloff(magnitude, sampleRate, rolloffFraction)
	s.Dominant = Dominant(magnitude, sampleRate)
	s.HarmonicRatio = HarmonicRatio(magnitude, sampleRate)

	return s
}

// Centroid returns the spectral centroid in Hz, the magnitude-weighted mean
// frequency of the spectrum.
func Centroid(magnitude []float64, sampleRate float64) float64 {
	n := len(magnitude)
	if n < 2 {
		return 0
	}

	sum := 0.0
	for _, v := range magnitude {
		sum += v
	}

	if sum == 0 {
		sum = 1e-10
	}

	weighted := 0.0
	for i, v := range magnitude {
		weighted += binFreq(i, sampleRate, n) * v
	}

	return weighted / sum
}

// Bandwidth returns the spectral bandwidth in Hz, the magnitude-weighted
// standard deviation of frequency around the centroid.
func Bandwidth(magnitude []float64, sampleRate float64) float64 {
	n := len(magnitude)
	if n < 2 {
		return 0
	}

	sum := 0.0
	for _, v := range magnitude {
		sum += v
	}

	if sum == 0 {
		sum = 1e-10
	}

	cent := Centroid(magnitude, sampleRate)

	weightedSq := 0.0
	for i, v := range magnitude {
		diff := binFreq(i, sampleRate, n) - cent
		weightedSq += diff * diff * v / sum
	}

	return math.Sqrt(weightedSq)
}

// Rolloff returns the frequency below which the given fraction (0..1) of the
// cumulative magnitude lies. A typical fraction is 0.85.
func Rolloff(magnitude []float64, sampleRate float64, fraction float64) float64 {
	n := len(magnitude)
	if n < 2 {
		return 0
	}

	total := 0.0
	for _, v := range magnitude {
		total += v
	}

	if total == 0 {
		return 0
	}

	threshold := fraction * total

	cumulative := 0.0
	for i, v := range magnitude {
		cumulative += v
		if cumulative >= threshold {
			return binFreq(i, sampleRate, n)
		}
	}

	return binFreq(n-1, sampleRate, n)
}

// Dominant returns the frequency of the strongest bin, skipping DC.
func Dominant(magnitude []float64, sampleRate float64) float64 {
	n := len(magnitude)
	if n < 2 {
		return 0
	}

	best := 1
	for i := 2; i < n; i++ {
		if magnitude[i] > magnitude[best] {
			best = i
		}
	}

	return binFreq(best, sampleRate, n)
}

// HarmonicRatio returns the fraction of spectral energy concentrated near the
// first five harmonics of the dominant frequency. Each harmonic contributes
// the energy of a seven-bin window centered on its nearest bin. Returns 0
// when the spectrum is silent.
func HarmonicRatio(magnitude []float64, sampleRate float64) float64 {
	n := len(magnitude)
	if n < 2 {
		return 0
	}

	total := 0.0
	for _, v := range magnitude {
		total += v * v
	}

	fundamental := Dominant(magnitude, sampleRate)
	if fundamental <= 0 || total == 0 {
		return 0
	}

	binHz := sampleRate / float64(2*(n-1))

	harmonic := 0.0
	for h := 1; h <= 5; h++ {
		idx := int(math.Round(fundamental * float64(h) / binHz))

		lo := idx - 3
		if lo < 0 {
			lo = 0
		}

		hi := idx + 4
		if hi > n {
			hi = n
		}

		for i := lo; i < hi; i++ {
			harmonic += magnitude[i] * magnitude[i]
		}
	}

	return harmonic / total
}
