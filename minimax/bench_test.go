package minimax_test

import (
	"testing"

	"github.com/katalvlaran/npuzzle/minimax"
)

func BenchmarkMinimax(b *testing.B) {
	start := scramble(18, 11)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := minimax.Minimax(start, goal); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAlphaBeta(b *testing.B) {
	start := scramble(18, 11)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := minimax.AlphaBeta(start, goal); err != nil {
			b.Fatal(err)
		}
	}
}
