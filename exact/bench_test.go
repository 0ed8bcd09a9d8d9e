package exact_test

import (
	"fmt"
	"testing"

	"github.com/xosmig/breaking-the-cycle/builder"
	"github.com/xosmig/breaking-the-cycle/exact"
)

func BenchmarkSolve_GNP(b *testing.B) {
	for _, n := range []int{16, 32, 48} {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomGNP(n, 2.0/float64(n)))
		if err != nil {
			b.Fatal(err)
		}
		for _, portable := range []bool{false, true} {
			var opts []exact.Option
			if portable {
				opts = append(opts, exact.WithPortableExtract())
			}
			b.Run(fmt.Sprintf("n=%d/portable=%v", n, portable), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, ok := exact.Solve(g, opts...); !ok {
						b.Fatal("no solution")
					}
				}
			})
		}
	}
}
