// SPDX-License-Identifier: MIT

package duplicates

import (
	"fmt"

	"github.com/katalvlaran/dupguard/matrix"
	"github.com/katalvlaran/dupguard/prom"
)

// Method tags used in error wrappers.
const (
	ctxZippedDuplicates   = "ZippedDuplicates"
	ctxUnzippedDuplicates = "UnzippedDuplicates"
	ctxFilterUnzipped     = "FilterUnzipped"
)

// ZippedDuplicates answers IsZippedDuplicate for every row of zipped.
// flags[i] is true when row i is a duplicate. A 0-row matrix yields an empty slice.
// The first failing row aborts the batch.
//
// Complexity: O(r·d).
func (m *Manager) ZippedDuplicates(zipped matrix.Matrix) ([]bool, error) {
	flags, err := m.rowsLookup(prom.FormZipped, zipped)
	if err != nil {
		return nil, managerErrorf(ctxZippedDuplicates, err)
	}

	return flags, nil
}

// UnzippedDuplicates converts all rows of raw with a single Space.ZipInputs
// call and answers IsZippedDuplicate for every encoded row.
//
// Errors:
//   - ErrNilSpace, ErrZipFailed (including a result whose row count differs
//     from raw.Rows()), ErrInvalidInput.
//
// Complexity: one ZipInputs call + O(r·d').
func (m *Manager) UnzippedDuplicates(raw matrix.Matrix) ([]bool, error) {
	flags, err := m.unzippedFlags(raw)
	if err != nil {
		return nil, managerErrorf(ctxUnzippedDuplicates, err)
	}

	return flags, nil
}

// FilterUnzipped returns the rows of raw that are not duplicates, in their
// original order and raw form. When every row is a duplicate the result is a
// 0×raw.Cols() matrix.
func (m *Manager) FilterUnzipped(raw matrix.Matrix) (matrix.Matrix, error) {
	flags, err := m.unzippedFlags(raw)
	if err != nil {
		return nil, managerErrorf(ctxFilterUnzipped, err)
	}
	kept := make([][]float64, 0, len(flags))
	for i, dup := range flags {
		if dup {
			continue
		}
		row, err := matrix.RowAt(raw, i)
		if err != nil {
			return nil, managerErrorf(ctxFilterUnzipped, err)
		}
		kept = append(kept, row)
	}
	var out *matrix.Dense
	if len(kept) == 0 {
		out, err = matrix.NewEmpty(raw.Cols())
	} else {
		out, err = matrix.NewDenseFromRows(kept)
	}
	if err != nil {
		return nil, managerErrorf(ctxFilterUnzipped, err)
	}

	return out, nil
}

// unzippedFlags zips raw once and looks up each encoded row.
func (m *Manager) unzippedFlags(raw matrix.Matrix) ([]bool, error) {
	if m.space == nil {
		return nil, ErrNilSpace
	}
	if err := matrix.ValidateNotNil(raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if raw.Rows() == 0 {
		return []bool{}, nil
	}
	zipped, err := m.space.ZipInputs(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrZipFailed, err)
	}
	if err = matrix.ValidateNotNil(zipped); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrZipFailed, err)
	}
	if zipped.Rows() != raw.Rows() {
		return nil, fmt.Errorf("%w: %d rows in, %d rows out: %w",
			ErrZipFailed, raw.Rows(), zipped.Rows(), matrix.ErrDimensionMismatch)
	}

	return m.rowsLookup(prom.FormUnzipped, zipped)
}

// rowsLookup answers lookup for each row of rows.
func (m *Manager) rowsLookup(form string, rows matrix.Matrix) ([]bool, error) {
	if err := matrix.ValidateNotNil(rows); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	flags := make([]bool, rows.Rows())
	for i := range flags {
		x, err := matrix.RowAt(rows, i)
		if err != nil {
			return nil, err
		}
		if flags[i], err = m.lookup(form, x); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}

	return flags, nil
}
