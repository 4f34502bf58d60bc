// SPDX-License-Identifier: MIT

// Package duplicates tells an optimization loop whether a candidate point was
// already evaluated, is pending evaluation, or was explicitly ignored.
//
// 🚀 What is a Manager?
//
//	A Manager is built once per optimization step from three configuration
//	matrices (one configuration per row):
//	  • evaluated: points whose objective value is known
//	  • pending  : points submitted for evaluation, result outstanding
//	  • ignored  : points excluded on purpose (e.g. they crashed before)
//	All rows are rounded to a fixed number of decimals and merged into one
//	roundset.Set; the source of a row is not retained. The Manager is then
//	queried, read-only, for every new candidate.
//
// ✨ Queries:
//   - IsZippedDuplicate: the candidate is already in the space's encoded
//     (zipped) layout, the same layout as the construction matrices.
//   - IsUnzippedDuplicate: the candidate is raw; it is converted with
//     Space.ZipInputs first. The encoded width may differ from the raw width.
//   - ZippedDuplicates / UnzippedDuplicates / FilterUnzipped: batch forms that
//     call ZipInputs once for N rows.
//
// ⚙️ Usage:
//
//	mgr, err := duplicates.NewManager(space, evaluated, pending, nil,
//		duplicates.WithDecimals(4),
//		duplicates.WithLogger(logger),
//	)
//	if err != nil {
//		return err // ErrInvalidInput / ErrInvalidConfiguration: an upstream bug
//	}
//	dup, err := mgr.IsUnzippedDuplicate(candidate)
//
// Errors are contract violations (mismatched dimensionality, negative
// decimals, a failing Space); callers should propagate them, not retry.
//
// Concurrency:
//
//	Construction must complete before queries start. Afterwards a Manager is
//	never mutated and may be shared by any number of goroutines, provided the
//	Space is itself safe for concurrent use.
package duplicates
