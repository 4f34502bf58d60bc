// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/dupguard/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// colMajor is a minimal non-Dense Matrix used to exercise the generic At paths.
type colMajor struct {
	r, c int
	data []float64 // offset = j*r + i
}

func (m *colMajor) Rows() int { return m.r }
func (m *colMajor) Cols() int { return m.c }
func (m *colMajor) At(i, j int) (float64, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, matrix.ErrOutOfRange
	}

	return m.data[j*m.r+i], nil
}
func (m *colMajor) Set(i, j int, v float64) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return matrix.ErrOutOfRange
	}
	m.data[j*m.r+i] = v

	return nil
}
func (m *colMajor) Clone() matrix.Matrix {
	cp := append([]float64(nil), m.data...)

	return &colMajor{r: m.r, c: m.c, data: cp}
}

// TestNewDenseFromRows covers the happy path and every rejection.
func TestNewDenseFromRows(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)

	m, err = matrix.NewDenseFromRows(nil)
	require.NoError(t, err)
	assert.Zero(t, m.Rows())
	assert.Zero(t, m.Cols())

	_, err = matrix.NewDenseFromRows([][]float64{{}})
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.NewDenseFromRows([][]float64{{1, math.NaN()}})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestNewEmptyAndRowVector checks the two degenerate constructors.
func TestNewEmptyAndRowVector(t *testing.T) {
	e, err := matrix.NewEmpty(4)
	require.NoError(t, err)
	assert.Equal(t, 0, e.Rows())
	assert.Equal(t, 4, e.Cols())
	_, err = matrix.NewEmpty(-1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	v, err := matrix.NewRowVector([]float64{0.5, 1})
	require.NoError(t, err)
	assert.Equal(t, 1, v.Rows())
	assert.Equal(t, 2, v.Cols())
	_, err = matrix.NewRowVector(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowHelpers_DenseAndGeneric compares the Dense fast path with the At path.
func TestRowHelpers_DenseAndGeneric(t *testing.T) {
	dense, err := matrix.NewDenseFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	generic := &colMajor{r: 2, c: 3, data: []float64{1, 4, 2, 5, 3, 6}}

	for name, m := range map[string]matrix.Matrix{"dense": dense, "generic": generic} {
		row, err := matrix.RowAt(m, 1)
		require.NoError(t, err, name)
		assert.Equal(t, []float64{4, 5, 6}, row, name)

		rows, err := matrix.AllRows(m)
		require.NoError(t, err, name)
		assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, rows, name)

		flat, err := matrix.Flatten(m)
		require.NoError(t, err, name)
		assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, flat, name)

		_, err = matrix.RowAt(m, 2)
		assert.ErrorIs(t, err, matrix.ErrOutOfRange, name)
	}
}

// TestRowHelpers_Nil rejects nil and typed-nil matrices.
func TestRowHelpers_Nil(t *testing.T) {
	var typed *matrix.Dense
	for _, m := range []matrix.Matrix{nil, typed} {
		_, err := matrix.RowAt(m, 0)
		assert.ErrorIs(t, err, matrix.ErrNilMatrix)
		_, err = matrix.AllRows(m)
		assert.ErrorIs(t, err, matrix.ErrNilMatrix)
		_, err = matrix.Flatten(m)
		assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	}

	empty, err := matrix.NewEmpty(3)
	require.NoError(t, err)
	rows, err := matrix.AllRows(empty)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
