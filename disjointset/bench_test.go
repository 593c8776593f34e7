package disjointset_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/radiomesh/disjointset"
)

// BenchmarkUnionFind measures a mixed workload of unions and finds over 10k elements.
func BenchmarkUnionFind(b *testing.B) {
	const n = 10_000
	r := rand.New(rand.NewSource(1))
	pairs := make([][2]int, n)
	for i := range pairs {
		pairs[i] = [2]int{r.Intn(n), r.Intn(n)}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f := disjointset.New(n)
		for _, p := range pairs {
			f.Union(p[0], p[1])
			_ = f.Find(p[1])
		}
	}
}
