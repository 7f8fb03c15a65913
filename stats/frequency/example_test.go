package frequency_test

import (
	"fmt"

	frequencystats "github.com/cwbudde/algo-doppler/stats/frequency"
)

func ExampleCalculate() {
	mag := []float64{0, 1, 2, 1, 0}
	s := frequencystats.Calculate(mag, 8000)
	fmt.Printf("centroid=%.0f rolloff=%.0f\n", s.Centroid, s.Rolloff)

	// Output:
	// centroid=2000 rolloff=3000
}

func ExampleDominant() {
	mag := []float64{9, 0, 1, 0, 0}
	fmt.Printf("dominant=%.0f\n", frequencystats.Dominant(mag, 8000))

	// Output:
	// dominant=2000
}
