// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface.
package matrix

// Matrix is a two-dimensional mutable array of float64 values where each row
// is one configuration.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows (configurations). May be zero.
	Rows() int

	// Cols returns the number of columns (coordinates per configuration).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns v at position (i, j).
	// Returns ErrOutOfRange for invalid indices and ErrNaNInf when the
	// implementation enforces the finite-only policy.
	Set(i, j int, v float64) error

	// Clone returns a deep copy independent of the original.
	Clone() Matrix
}
