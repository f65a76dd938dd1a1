package strmatch_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/algokit/strmatch"
)

var (
	benchText    = strings.Repeat("ab", 50_000) + "abc"
	benchPattern = strings.Repeat("ab", 50) + "c"
)

func BenchmarkKMP(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = strmatch.KMP(benchText, benchPattern)
	}
}

func BenchmarkRabinKarp(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = strmatch.RabinKarp(benchText, benchPattern)
	}
}

func BenchmarkNaive(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = strmatch.Naive(benchText, benchPattern)
	}
}
