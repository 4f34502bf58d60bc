// SPDX-License-Identifier: MIT

package duplicates

import (
	"fmt"

	"github.com/katalvlaran/dupguard/matrix"
	"github.com/katalvlaran/dupguard/prom"
	"github.com/katalvlaran/dupguard/roundset"
	"github.com/rs/zerolog"
)

// Method tags used in error wrappers.
const (
	ctxNew                 = "New"
	ctxIsZippedDuplicate   = "IsZippedDuplicate"
	ctxIsUnzippedDuplicate = "IsUnzippedDuplicate"
)

// Manager indexes evaluated, pending and ignored configurations and answers
// duplicate queries for new candidates. It is read-only after NewManager.
type Manager struct {
	space   Space          // not owned; may be nil for zipped-only use
	unique  *roundset.Set  // union of all indexed rows
	log     zerolog.Logger // Nop unless WithLogger
	metrics bool
}

// NewManager builds the duplicate index for one optimization step.
// Implementation:
//   - Stage 1: create an empty roundset.Set with the configured decimals.
//   - Stage 2: index every row of evaluated (a 0-row matrix contributes nothing).
//   - Stage 3: index pending, then ignored, when present; nil means "none".
//   - Stage 4: keep a reference to space for unzipped queries.
//
// Errors:
//   - ErrInvalidConfiguration for negative decimals.
//   - matrix.ErrNilMatrix when evaluated is nil.
//   - ErrInvalidInput when the sources disagree on the number of columns or
//     hold a non-finite value.
//
// Complexity: O(k·d) for k indexed rows of d coordinates.
func NewManager(space Space, evaluated, pending, ignored matrix.Matrix, opts ...Option) (*Manager, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	unique, err := roundset.New(roundset.WithDecimals(o.decimals))
	if err != nil {
		return nil, managerErrorf(ctxNew, err)
	}
	if err = matrix.ValidateNotNil(evaluated); err != nil {
		return nil, managerErrorf(ctxNew, fmt.Errorf("evaluated: %w", err))
	}

	m := &Manager{space: space, unique: unique, log: o.logger, metrics: o.metrics}
	sources := []struct {
		name string
		rows matrix.Matrix
	}{
		{prom.SourceEvaluated, evaluated},
		{prom.SourcePending, pending},
		{prom.SourceIgnored, ignored},
	}
	counts := make(map[string]int, len(sources))
	for _, src := range sources {
		n, err := m.index(src.name, src.rows)
		if err != nil {
			return nil, managerErrorf(ctxNew, err)
		}
		counts[src.name] = n
	}

	if m.metrics {
		prom.UniqueConfigurations.Set(float64(unique.Len()))
	}
	m.log.Debug().
		Int(prom.SourceEvaluated, counts[prom.SourceEvaluated]).
		Int(prom.SourcePending, counts[prom.SourcePending]).
		Int(prom.SourceIgnored, counts[prom.SourceIgnored]).
		Int("unique", unique.Len()).
		Int("dim", unique.Dim()).
		Int("decimals", unique.Decimals()).
		Msg("duplicate manager ready")

	return m, nil
}

// index inserts every row of rows into the set and returns the row count.
// An absent (nil) matrix or a 0-row matrix is a no-op.
func (m *Manager) index(source string, rows matrix.Matrix) (int, error) {
	if matrix.ValidateNotNil(rows) != nil || rows.Rows() == 0 {
		return 0, nil
	}
	xs, err := matrix.AllRows(rows)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", source, err)
	}
	if _, err = m.unique.Update(xs); err != nil {
		return 0, fmt.Errorf("%s: %w", source, err)
	}
	if m.metrics {
		prom.IndexedRows.WithLabelValues(source).Add(float64(len(xs)))
	}

	return len(xs), nil
}

// Decimals returns the rounding precision of the index.
func (m *Manager) Decimals() int { return m.unique.Decimals() }

// Len returns the number of distinct rounded configurations indexed.
func (m *Manager) Len() int { return m.unique.Len() }

// Dim returns the zipped dimensionality fixed by the indexed rows, or 0 when
// nothing was indexed.
func (m *Manager) Dim() int { return m.unique.Dim() }

// IsZippedDuplicate reports whether x, already in zipped form, rounds to an
// indexed configuration. An empty Manager answers false for any non-zero length.
//
// Errors:
//   - ErrInvalidInput when x is empty, when len(x) != Dim() on a non-empty
//     Manager, or when x holds NaN/±Inf.
//
// Complexity: O(d) expected; no side effects on the index.
func (m *Manager) IsZippedDuplicate(x []float64) (bool, error) {
	dup, err := m.lookup(prom.FormZipped, x)
	if err != nil {
		return false, managerErrorf(ctxIsZippedDuplicate, err)
	}

	return dup, nil
}

// IsUnzippedDuplicate converts the raw configuration x with Space.ZipInputs
// (as a 1×len(x) matrix), flattens the result row-major and checks it like
// IsZippedDuplicate.
//
// Errors:
//   - ErrNilSpace when the Manager has no Space.
//   - ErrInvalidInput when x is empty or not finite, or the zipped width does
//     not match Dim().
//   - ErrZipFailed wrapping the Space's own error.
func (m *Manager) IsUnzippedDuplicate(x []float64) (bool, error) {
	zipped, err := m.zip(x)
	if err != nil {
		return false, managerErrorf(ctxIsUnzippedDuplicate, err)
	}
	dup, err := m.lookup(prom.FormUnzipped, zipped)
	if err != nil {
		return false, managerErrorf(ctxIsUnzippedDuplicate, err)
	}

	return dup, nil
}

// zip converts a single raw configuration into its flattened zipped form.
func (m *Manager) zip(x []float64) ([]float64, error) {
	if m.space == nil {
		return nil, ErrNilSpace
	}
	row, err := matrix.NewRowVector(x)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	zipped, err := m.space.ZipInputs(row)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrZipFailed, err)
	}
	flat, err := matrix.Flatten(zipped)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrZipFailed, err)
	}
	if dim := m.unique.Dim(); dim != 0 {
		if err = matrix.ValidateVecLen(flat, dim); err != nil {
			return nil, fmt.Errorf("%w: zipped width %d: %w", ErrInvalidInput, len(flat), err)
		}
	}

	return flat, nil
}

// lookup queries the index and records metrics for one configuration.
// An empty configuration is rejected even by an empty Manager.
func (m *Manager) lookup(form string, x []float64) (bool, error) {
	if len(x) == 0 {
		return false, fmt.Errorf("empty configuration: %w", ErrInvalidInput)
	}
	dup, err := m.unique.Contains(x)
	if err != nil {
		return false, err
	}
	if m.metrics {
		prom.DuplicateLookups.WithLabelValues(form).Inc()
		if dup {
			prom.DuplicateHits.WithLabelValues(form).Inc()
		}
	}
	if dup {
		m.log.Trace().Str("form", form).Floats64("x", x).Msg("duplicate candidate")
	}

	return dup, nil
}
