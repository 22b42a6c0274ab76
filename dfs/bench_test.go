package dfs_test

import (
	"testing"

	"github.com/katalvlaran/npuzzle/dfs"
)

func BenchmarkSearch(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := dfs.Search(start3, goal); err != nil {
			b.Fatal(err)
		}
	}
}
