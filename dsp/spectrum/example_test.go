package spectrum_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-doppler/dsp/spectrum"
)

func ExampleCompute() {
	sr := 4096.0
	sig := make([]float64, 4096)
	for i := range sig {
		sig[i] = 0.5 * math.Sin(2*math.Pi*440*float64(i)/sr)
	}

	s := spectrum.Compute(sig, sr)
	fmt.Printf("dominant=%.0f\n", spectrum.DominantFrequency(s, 50))

	// Output:
	// dominant=440
}

func ExampleSTFT() {
	sig := make([]float64, 8000)
	for i := range sig {
		sig[i] = math.Sin(2 * math.Pi * 440 * float64(i) / 8000)
	}

	g := spectrum.STFT(sig, 8000, spectrum.STFTConfig{WindowSize: 1024})
	fmt.Printf("frames=%d bins=%d\n", g.Frames(), len(g.Frequencies))

	// Output:
	// frames=15 bins=513
}
