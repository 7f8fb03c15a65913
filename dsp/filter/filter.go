// Package filter provides Butterworth low-pass and band-pass filtering as
// cascades of biquad sections, used to band-limit recordings before analysis.
package filter

import (
	"math"
)

// Coefficients holds the transfer function coefficients for a single
// second-order section. a0 is normalized to 1 and not stored.
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// Section is a single biquad with coefficients and internal state,
// implemented in Direct Form II Transposed.
type Section struct {
	Coefficients

	d0, d1 float64
}

// ProcessSample filters one input sample and returns the output.
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.d0
	s.d0 = s.B1*x - s.A1*y + s.d1
	s.d1 = s.B2*x - s.A2*y

	return y
}

// Reset clears the section state.
func (s *Section) Reset() {
	s.d0 = 0
	s.d1 = 0
}

// Chain is a cascade of biquad sections applied in order.
type Chain []Section

// Process filters the signal through all sections and returns a new slice.
// The chain state is reset first, so repeated calls are independent.
func (c Chain) Process(signal []float64) []float64 {
	for i := range c {
		c[i].Reset()
	}

	out := make([]float64, len(signal))
	for i, x := range signal {
		y := x
		for s := range c {
			y = c[s].ProcessSample(y)
		}

		out[i] = y
	}

	return out
}

// bilinearK computes the bilinear transform warping factor tan(pi*freq/sr).
// Returns (0, false) for out-of-range parameters.
func bilinearK(freq, sampleRate float64) (float64, bool) {
	if sampleRate <= 0 || freq <= 0 || freq >= sampleRate/2 {
		return 0, false
	}

	return math.Tan(math.Pi * freq / sampleRate), true
}

// butterworthQ returns the quality factor of biquad section index for a
// Butterworth filter of the given order.
func butterworthQ(order, index int) float64 {
	theta := math.Pi * float64(2*index+1) / (2 * float64(order))

	s := math.Sin(theta)
	if s == 0 {
		return 1 / math.Sqrt2
	}

	return 1 / (2 * s)
}

// lowpassRBJ designs a lowpass biquad at freq with quality factor q.
func lowpassRBJ(freq, q, sampleRate float64) Coefficients {
	k, ok := bilinearK(freq, sampleRate)
	if !ok {
		return Coefficients{B0: 1}
	}

	norm := 1 / (1 + k/q + k*k)

	return Coefficients{
		B0: k * k * norm,
		B1: 2 * k * k * norm,
		B2: k * k * norm,
		A1: 2 * (k*k - 1) * norm,
		A2: (1 - k/q + k*k) * norm,
	}
}

// highpassRBJ designs a highpass biquad at freq with quality factor q.
func highpassRBJ(freq, q, sampleRate float64) Coefficients {
	k, ok := bilinearK(freq, sampleRate)
	if !ok {
		return Coefficients{B0: 1}
	}

	norm := 1 / (1 + k/q + k*k)

	return Coefficients{
		B0: norm,
		B1: -2 * norm,
		B2: norm,
		A1: 2 * (k*k - 1) * norm,
		A2: (1 - k/q + k*k) * norm,
	}
}

// firstOrderLP designs a first-order lowpass section for odd orders.
func firstOrderLP(freq, sampleRate float64) Coefficients {
	k, ok := bilinearK(freq, sampleRate)
	if !ok {
		return Coefficients{B0: 1}
	}

	norm := 1 / (1 + k)

	return Coefficients{
		B0: k * norm,
		B1: k * norm,
		A1: (k - 1) * norm,
	}
}

// firstOrderHP designs a first-order highpass section for odd orders.
func firstOrderHP(freq, sampleRate float64) Coefficients {
	k, ok := bilinearK(freq, sampleRate)
	if !ok {
		return Coefficients{B0: 1}
	}

	norm := 1 / (1 + k)

	return Coefficients{
		B0: norm,
		B1: -norm,
		A1: (k - 1) * norm,
	}
}

// ButterworthLP designs a lowpass Butterworth cascade of the given order.
// For odd orders, the final section is first-order.
func ButterworthLP(freq float64, order int, sampleRate float64) Chain {
	if order <= 0 {
		return nil
	}

	sections := make(Chain, 0, (order+1)/2)

	for i := order/2 - 1; i >= 0; i-- {
		q := butterworthQ(order, i)
		sections = append(sections, Section{Coefficients: lowpassRBJ(freq, q, sampleRate)})
	}

	if order%2 != 0 {
		sections = append(sections, Section{Coefficients: firstOrderLP(freq, sampleRate)})
	}

	return sections
}

// ButterworthHP designs a highpass Butterworth cascade of the given order.
// For odd orders, the final section is first-order.
func ButterworthHP(freq float64, order int, sampleRate float64) Chain {
	if order <= 0 {
		return nil
	}

	sections := make(Chain, 0, (order+1)/2)

	for i := order/2 - 1; i >= 0; i-- {
		q := butterworthQ(order, i)
		sections = append(sections, Section{Coefficients: highpassRBJ(freq, q, sampleRate)})
	}

	if order%2 != 0 {
		sections = append(sections, Section{Coefficients: firstOrderHP(freq, sampleRate)})
	}

	return sections
}

// Bandpass designs a band-pass filter as a highpass cascade at lowFreq
// followed by a lowpass cascade at highFreq, each of the given order.
func Bandpass(lowFreq, highFreq float64, order int, sampleRate float64) Chain {
	hp := ButterworthHP(lowFreq, order, sampleRate)
	lp := ButterworthLP(highFreq, order, sampleRate)

	return append(hp, lp...)
}
