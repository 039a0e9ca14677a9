// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/assignment/matrix"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	for _, tc := range []struct {
		name       string
		rows, cols int
	}{
		{"zero rows", 0, 3},
		{"zero cols", 2, 0},
		{"negative", -1, 4},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.NewDense(tc.rows, tc.cols)
			require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
		})
	}
}

func TestDense_AtSetBounds(t *testing.T) {
	d, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, d.Rows())
	require.Equal(t, 3, d.Cols())

	require.NoError(t, d.Set(1, 2, 7.5))
	v, err := d.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.5, v)

	_, err = d.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, d.Set(0, -1, 1), matrix.ErrOutOfRange)
}

func TestNewDenseFromRows(t *testing.T) {
	d, err := matrix.NewDenseFromRows([][]float64{{3, 1, 2}, {4, 0, 5}})
	require.NoError(t, err)
	v, err := d.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)

	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.True(t, errors.Is(err, matrix.ErrDimensionMismatch))

	_, err = matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_RowAliases(t *testing.T) {
	d, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	row, err := d.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)
	row[0] = 9
	v, _ := d.At(1, 0)
	require.Equal(t, 9.0, v, "Row must alias the backing storage")

	_, err = d.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_CloneIsDeep(t *testing.T) {
	d, err := matrix.NewDenseFromRows([][]float64{{1, 2}})
	require.NoError(t, err)
	c := d.Clone()
	require.NoError(t, c.Set(0, 0, 42))
	v, _ := d.At(0, 0)
	require.Equal(t, 1.0, v)
	require.Equal(t, "[1, 2]\n", d.String())
}

func TestValidators(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	var nilDense *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(nilDense), matrix.ErrNilMatrix)

	d, err := matrix.NewDenseFromRows([][]float64{{-3, 8}, {2, 1}})
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateFinite(d))
	mx, err := matrix.MaxEntry(d)
	require.NoError(t, err)
	require.Equal(t, 8.0, mx)

	require.NoError(t, d.Set(1, 1, math.NaN()))
	require.ErrorIs(t, matrix.ValidateFinite(d), matrix.ErrNaNInf)
	_, err = matrix.MaxEntry(d)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// gridMatrix is a non-Dense Matrix used to exercise the generic At path.
type gridMatrix [][]float64

func (g gridMatrix) Rows() int                    { return len(g) }
func (g gridMatrix) Cols() int                    { return len(g[0]) }
func (g gridMatrix) At(i, j int) (float64, error) { return g[i][j], nil }
func (g gridMatrix) Clone() matrix.Matrix         { return g }
func (g gridMatrix) Set(i, j int, v float64) error {
	g[i][j] = v

	return nil
}

func TestValidators_GenericPath(t *testing.T) {
	g := gridMatrix{{1, 2}, {6, math.Inf(1)}}
	require.ErrorIs(t, matrix.ValidateFinite(g), matrix.ErrNaNInf)
	g[1][1] = 4
	mx, err := matrix.MaxEntry(g)
	require.NoError(t, err)
	require.Equal(t, 6.0, mx)
}
