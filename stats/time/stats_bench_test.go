//nolint:revive
package time

import (
	"fmt"
	"math"
	"testing"
)

func makeBenchSignal(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * float64(i) / float64(n))
	}

	return out
}

func BenchmarkCalculate(b *testing.B) {
	sizes := []int{64, 1024, 16384, 65536}
	for _, n := range sizes {
		signal := makeBenchSignal(n)
		b.Run(fmt.Sprintf("%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))
			for i := 0; i < b.N; i++ {
				_ = Calculate(signal, 44100)
			}
		})
	}
}

func BenchmarkSNR(b *testing.B) {
	signal := makeBenchSignal(16384)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = SNR(signal)
	}
}
