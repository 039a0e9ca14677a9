// SPDX-License-Identifier: MIT

package auction_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/assignment/auction"
)

// BenchmarkSolve measures full solves on uniform random benefits in
// [0, 100) for growing sizes. The Instance is built once per case, so the
// loop measures allocation-free re-solves.
func BenchmarkSolve(b *testing.B) {
	cases := []struct {
		m, n int
		seed int64
	}{
		{10, 10, 1},
		{50, 80, 2},
		{100, 100, 3},
		{200, 400, 4},
	}
	for _, tc := range cases {
		b.Run(fmt.Sprintf("%dx%d", tc.m, tc.n), func(b *testing.B) {
			r := rand.New(rand.NewSource(tc.seed))
			inst, err := auction.New(tc.m, tc.n, auction.WithSlack(1e-2))
			if err != nil {
				b.Fatal(err)
			}
			benefits := inst.Benefits()[:tc.m*tc.n]
			for i := range benefits {
				benefits[i] = r.Float64() * 100
			}

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := inst.Solve(tc.m, tc.n, 100); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
