package doppler

import "sort"

// reflectIndex maps an out-of-range index back into [0, n) by mirroring at
// the edges (d c b a | a b c d | d c b a).
func reflectIndex(i, n int) int {
	if n == 1 {
		return 0
	}

	for i < 0 || i >= n {
		if i < 0 {
			i = -i - 1
		}

		if i >= n {
			i = 2*n - 1 - i
		}
	}

	return i
}

// oddKernel rounds size up to the next odd number.
func oddKernel(size int) int {
	if size%2 == 0 {
		return size + 1
	}

	return size
}

// medianFilter applies a centered median filter with edge reflection.
// The kernel size must be odd.
func medianFilter(v []float64, size int) []float64 {
	n := len(v)
	out := make([]float64, n)

	if n == 0 || size <= 1 {
		copy(out, v)
		return out
	}

	half := size / 2
	win := make([]float64, size)

	for i := range v {
		for k := 0; k < size; k++ {
			win[k] = v[reflectIndex(i-half+k, n)]
		}

		sort.Float64s(win)
		out[i] = win[half]
	}

	return out
}

// movingAverage applies a uniform filter with edge reflection. Even sizes
// use a left-heavy window.
func movingAverage(v []float64, size int) []float64 {
	n := len(v)
	out := make([]float64, n)

	if n == 0 || size <= 1 {
		copy(out, v)
		return out
	}

	half := size / 2

	for i := range v {
		sum := 0.0
		for k := 0; k < size; k++ {
			sum += v[reflectIndex(i-half+k, n)]
		}

		out[i] = sum / float64(size)
	}

	return out
}
