// SPDX-License-Identifier: MIT

// Package matrix - row views over configuration matrices.
//
// Purpose:
//   - Build matrices from plain [][]float64 configurations (zero rows allowed).
//   - Read configurations back as independent []float64 copies (RowAt, AllRows).
//   - Flatten whole matrices in row-major order, the same layout Dense stores.
//
// Determinism:
//   - Fixed i→j loop order everywhere; no map iteration.

package matrix

import "fmt"

// rowsErrorf tags row-helper errors with the public function name.
func rowsErrorf(fn string, err error) error {
	return fmt.Errorf("%s: %w", fn, err)
}

// NewEmpty returns a 0×cols matrix: a batch with no configurations but a
// known width.
func NewEmpty(cols int) (*Dense, error) {
	if cols < 0 {
		return nil, rowsErrorf("NewEmpty", ErrInvalidDimensions)
	}

	return &Dense{c: cols, data: []float64{}, validateNaNInf: DefaultValidateNaNInf}, nil
}

// NewDenseFromRows copies rows into a new len(rows)×len(rows[0]) Dense.
// Implementation:
//   - Stage 1: empty input yields a 0×0 matrix.
//   - Stage 2: every row must have the width of rows[0] (> 0).
//   - Stage 3: copy values in row-major order through the numeric policy.
//
// Errors:
//   - ErrInvalidDimensions when rows[0] is empty.
//   - ErrDimensionMismatch when a row is ragged.
//   - ErrNaNInf when a value is not finite.
//
// Complexity: O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return NewDense(0, 0)
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, rowsErrorf("NewDenseFromRows", ErrInvalidDimensions)
	}
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, rowsErrorf("NewDenseFromRows", err)
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, rowsErrorf(fmt.Sprintf("NewDenseFromRows: row %d", i), ErrDimensionMismatch)
		}
		for j, v := range row {
			if err = m.Set(i, j, v); err != nil {
				return nil, rowsErrorf("NewDenseFromRows", err)
			}
		}
	}

	return m, nil
}

// NewRowVector wraps a single configuration into a 1×len(x) matrix.
// This is the Go counterpart of promoting a vector to a 2-D batch of one.
func NewRowVector(x []float64) (*Dense, error) {
	if len(x) == 0 {
		return nil, rowsErrorf("NewRowVector", ErrInvalidDimensions)
	}

	return NewDenseFromRows([][]float64{x})
}

// RowAt returns a copy of row i of m.
// *Dense takes a single copy() fast path; other implementations go through At.
// Complexity: O(c).
func RowAt(m Matrix, i int) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, rowsErrorf("RowAt", err)
	}
	if d, ok := m.(*Dense); ok {
		return d.Row(i)
	}
	if i < 0 || i >= m.Rows() {
		return nil, rowsErrorf("RowAt", ErrOutOfRange)
	}
	out := make([]float64, m.Cols())
	for j := range out {
		v, err := m.At(i, j)
		if err != nil {
			return nil, rowsErrorf("RowAt", err)
		}
		out[j] = v
	}

	return out, nil
}

// AllRows returns every row of m as independent slices, in row order.
// A nil matrix yields (nil, ErrNilMatrix); a 0-row matrix yields an empty slice.
// Complexity: O(r*c).
func AllRows(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, rowsErrorf("AllRows", err)
	}
	out := make([][]float64, m.Rows())
	for i := range out {
		row, err := RowAt(m, i)
		if err != nil {
			return nil, rowsErrorf("AllRows", err)
		}
		out[i] = row
	}

	return out, nil
}

// Flatten returns all elements of m in row-major order (length Rows*Cols).
// Complexity: O(r*c).
func Flatten(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, rowsErrorf("Flatten", err)
	}
	if d, ok := m.(*Dense); ok {
		out := make([]float64, len(d.data))
		copy(out, d.data)

		return out, nil
	}
	r, c := m.Rows(), m.Cols()
	out := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, rowsErrorf("Flatten", err)
			}
			out = append(out, v)
		}
	}

	return out, nil
}
