package codec

import (
	"math/rand"
	"testing"
)

func BenchmarkNewEncoder(b *testing.B) {
	for _, n := range []int{100, 1000, 10000} {
		n := n
		b.Run(benchName(n), func(b *testing.B) {
			const blockSize = 512
			r := rand.New(rand.NewSource(int64(n)))
			msg := make([]byte, n*blockSize)
			r.Read(msg)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := NewEncoder(msg, blockSize); err != nil {
					b.Fatalf("NewEncoder: %v", err)
				}
			}
		})
	}
}

func benchName(n int) string {
	switch {
	case n < 1000:
		return "N=100"
	case n < 10000:
		return "N=1000"
	default:
		return "N=10000"
	}
}
