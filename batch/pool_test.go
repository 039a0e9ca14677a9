// SPDX-License-Identifier: MIT

package batch_test

import (
	"context"
	"math/rand"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/assignment/auction"
	"github.com/katalvlaran/assignment/batch"
	"github.com/katalvlaran/assignment/internal/exact"
	"github.com/katalvlaran/assignment/matrix"
)

// randomProblems returns count random problems of at most 5×7 together
// with their rows, for checking against exact optima.
func randomProblems(t *testing.T, count int, seed int64) ([]matrix.Matrix, [][][]float64) {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	mats := make([]matrix.Matrix, count)
	rows := make([][][]float64, count)
	for i := range mats {
		m := 1 + r.Intn(5)
		n := m + r.Intn(8-m)
		rows[i] = make([][]float64, m)
		for a := range rows[i] {
			rows[i][a] = make([]float64, n)
			for c := range rows[i][a] {
				rows[i][a][c] = r.Float64() * 100
			}
		}
		d, err := matrix.NewDenseFromRows(rows[i])
		require.NoError(t, err)
		mats[i] = d
	}

	return mats, rows
}

func TestNewPool_Errors(t *testing.T) {
	_, err := batch.NewPool(0, 2, 3)
	require.ErrorIs(t, err, batch.ErrInvalidWorkers)

	_, err = batch.NewPool(2, 3, 2)
	require.ErrorIs(t, err, auction.ErrInvalidCapacity)

	_, err = batch.NewPool(2, 2, 3, auction.WithSlack(-1))
	require.ErrorIs(t, err, auction.ErrInvalidOption)
}

func TestSolveAll_MatchesSequential(t *testing.T) {
	mats, rows := randomProblems(t, 40, 7)

	pool, err := batch.NewPool(4, 5, 7)
	require.NoError(t, err)
	require.Equal(t, 4, pool.Workers())
	got, err := pool.SolveAll(context.Background(), mats)
	require.NoError(t, err)
	require.Len(t, got, len(mats))

	inst, err := auction.New(5, 7)
	require.NoError(t, err)
	want := make([]batch.Result, len(mats))
	for i, mat := range mats {
		require.NoError(t, inst.SolveMatrix(mat))
		want[i].Assignment, err = inst.Assignment(nil)
		require.NoError(t, err)
		want[i].Total, err = inst.TotalBenefit()
		require.NoError(t, err)
		want[i].Stats = inst.Stats()
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("SolveAll mismatch (-sequential +parallel):\n%s", diff)
	}

	for i, res := range got {
		opt, err := exact.Optimum(rows[i], auction.DefaultSlackBenefit)
		require.NoError(t, err)
		m := len(rows[i])
		require.InDelta(t, opt, res.Total, float64(m)*auction.DefaultSlack+1e-9, "problem %d", i)
	}
}

func TestSolveAll_Empty(t *testing.T) {
	pool, err := batch.NewPool(2, 2, 2)
	require.NoError(t, err)
	got, err := pool.SolveAll(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSolveAll_ErrorStopsBatch(t *testing.T) {
	mats, _ := randomProblems(t, 10, 3)
	tooBig, err := matrix.NewDense(6, 8)
	require.NoError(t, err)
	mats[4] = tooBig

	pool, err := batch.NewPool(3, 5, 7)
	require.NoError(t, err)
	got, err := pool.SolveAll(context.Background(), mats)
	require.ErrorIs(t, err, auction.ErrInvalidProblemSize)
	require.ErrorContains(t, err, "problem 4")
	require.Nil(t, got)

	// Every instance went back to the pool.
	got, err = pool.SolveAll(context.Background(), mats[:4])
	require.NoError(t, err)
	require.Len(t, got, 4)
}

func TestSolveAll_Cancelled(t *testing.T) {
	mats, _ := randomProblems(t, 10, 5)
	pool, err := batch.NewPool(2, 5, 7)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	got, err := pool.SolveAll(ctx, mats)
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, got)

	_, err = pool.Solve(ctx, mats[0])
	require.ErrorIs(t, err, context.Canceled)
}

func TestSolveAll_SharedPool(t *testing.T) {
	mats, _ := randomProblems(t, 20, 11)
	pool, err := batch.NewPool(2, 5, 7)
	require.NoError(t, err)
	want, err := pool.SolveAll(context.Background(), mats)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 4)
	results := make([][]batch.Result, 4)
	for i := range errs {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = pool.SolveAll(context.Background(), mats)
		}()
	}
	wg.Wait()
	for i := range errs {
		require.NoError(t, errs[i])
		require.Empty(t, cmp.Diff(want, results[i]))
	}
}
