package optimal_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/morris/optimal"
	"github.com/katalvlaran/morris/trajectory"
)

func BenchmarkSelect(b *testing.B) {
	for _, tc := range []struct{ n, m int }{
		{20, 4},
		{50, 4},
		{20, 6},
	} {
		b.Run(fmt.Sprintf("N=%d/m=%d", tc.n, tc.m), func(b *testing.B) {
			cands, err := trajectory.BuildMany(tc.n, 8, trajectory.DefaultOptions(), trajectory.NewRand(1))
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := optimal.SelectIndices(cands, tc.m); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
