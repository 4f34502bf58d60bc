// SPDX-License-Identifier: MIT

// Package matrix holds configuration matrices for candidate bookkeeping.
//
// A configuration matrix stores one candidate per row: row i is the i-th
// configuration, column j its j-th coordinate. The package provides:
//
//   - Matrix, a minimal read/write interface (Rows/Cols/At/Set/Clone) that the
//     duplicates package and Space implementations exchange.
//   - Dense, a row-major implementation backed by a single flat slice.
//   - Row helpers (NewDenseFromRows, NewRowVector, NewEmpty, RowAt, AllRows,
//     Flatten)
//     that turn matrices into plain []float64 configurations and back.
//   - Validators (ValidateNotNil, ValidateFinite, ValidateVecLen) shared by
//     callers that need to fail fast on malformed input.
//
// Unlike general linear-algebra containers, a configuration matrix may have
// zero rows: "no evaluated points yet" is an ordinary state of an optimization
// loop, not an error.
//
// Numeric policy:
//
//	NaN and ±Inf are rejected on ingestion by default (DefaultValidateNaNInf),
//	because rounding cannot give them a stable duplicate key.
//
// Complexity quicksheet:
//   - NewDenseFromRows: O(r*c); At/Set: O(1); RowAt: O(c); Flatten/Clone: O(r*c).
package matrix
