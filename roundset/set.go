// SPDX-License-Identifier: MIT

package roundset

import (
	"fmt"
	"sync"
)

// Method tags used in error wrappers.
const (
	ctxAdd      = "Add"
	ctxUpdate   = "Update"
	ctxContains = "Contains"
	ctxRound    = "Round"
)

// Set is a rounding-aware set of fixed-length configurations.
//
// Keys are grouped into buckets by their xxhash fingerprint; membership is
// decided by exact comparison of the encoded keys inside a bucket, so a hash
// collision never produces a false duplicate.
type Set struct {
	mu      sync.RWMutex
	rnd     rounder
	dim     int              // 0 until the first insertion
	size    int              // number of distinct keys
	buckets map[uint64][]Key // fingerprint -> keys sharing it
}

// New returns an empty Set.
// Implementation:
//   - Stage 1: apply options over the defaults (decimals = DefaultDecimals).
//   - Stage 2: reject a negative decimals count with ErrInvalidConfiguration.
//   - Stage 3: precompute the rounding scale.
//
// Complexity: O(1).
func New(opts ...Option) (*Set, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.decimals < 0 {
		return nil, fmt.Errorf("roundset.New: decimals=%d: %w", o.decimals, ErrInvalidConfiguration)
	}

	return &Set{
		rnd:     newRounder(o.decimals),
		buckets: make(map[uint64][]Key),
	}, nil
}

// Decimals returns the rounding precision fixed at construction.
func (s *Set) Decimals() int { return s.rnd.decimals }

// Len returns the number of distinct rounded configurations.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.size
}

// Dim returns the established dimensionality, or 0 while the set is empty.
func (s *Set) Dim() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.dim
}

// Round returns x with every coordinate rounded to Decimals() places.
// It does not touch the set and does not check dimensionality.
// Errors: ErrInvalidInput for an empty x or a non-finite coordinate.
func (s *Set) Round(x []float64) ([]float64, error) {
	if _, err := s.rnd.key(x); err != nil {
		return nil, setErrorf(ctxRound, "", err)
	}
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = s.rnd.round(v)
	}

	return out, nil
}

// Key returns the exact identity x is stored under.
// Errors: ErrInvalidInput for an empty x or a non-finite coordinate.
func (s *Set) Key(x []float64) (Key, error) {
	k, err := s.rnd.key(x)
	if err != nil {
		return "", setErrorf("Key", "", err)
	}

	return k, nil
}

// Add rounds x and inserts it unless an equivalent configuration is present.
// It reports whether the set grew. A duplicate is not an error.
//
// Errors:
//   - ErrInvalidInput when len(x) differs from Dim() on a non-empty set, when x
//     is empty, or when a coordinate is NaN/±Inf. The set is left unchanged.
//
// Complexity: O(d) expected.
func (s *Set) Add(x []float64) (bool, error) {
	k, err := s.rnd.key(x)
	if err != nil {
		return false, setErrorf(ctxAdd, "", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err = s.checkDimLocked(len(x)); err != nil {
		return false, setErrorf(ctxAdd, "", err)
	}

	return s.insertLocked(k), nil
}

// Update applies Add to every configuration of xs and returns how many were new.
// The whole batch is keyed and checked against one dimensionality before
// anything is inserted, so a failing Update leaves the set unchanged.
// An empty batch is a no-op.
//
// Complexity: O(k·d) for k configurations of d coordinates.
func (s *Set) Update(xs [][]float64) (int, error) {
	if len(xs) == 0 {
		return 0, nil
	}
	keys := make([]Key, len(xs))
	for i, x := range xs {
		k, err := s.rnd.key(x)
		if err != nil {
			return 0, setErrorf(ctxUpdate, fmt.Sprintf("configuration %d", i), err)
		}
		keys[i] = k
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	dim := s.dim
	if dim == 0 {
		dim = len(xs[0]) // the batch itself establishes the dimensionality
	}
	for i, x := range xs {
		if len(x) != dim {
			return 0, setErrorf(ctxUpdate, fmt.Sprintf("configuration %d has %d coordinates, want %d", i, len(x), dim), ErrInvalidInput)
		}
	}
	added := 0
	for _, k := range keys {
		if s.insertLocked(k) {
			added++
		}
	}

	return added, nil
}

// Contains reports whether a configuration rounding to the same key as x is present.
// On an empty set any length is accepted and the answer is false.
//
// Errors:
//   - ErrInvalidInput for a dimensionality mismatch on a non-empty set, or a
//     non-finite coordinate.
//
// Complexity: O(d) expected; no side effects.
func (s *Set) Contains(x []float64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.size == 0 {
		if err := checkFinite(x); err != nil {
			return false, setErrorf(ctxContains, "", err)
		}

		return false, nil
	}
	if err := s.checkDimLocked(len(x)); err != nil {
		return false, setErrorf(ctxContains, "", err)
	}
	k, err := s.rnd.key(x)
	if err != nil {
		return false, setErrorf(ctxContains, "", err)
	}

	return s.hasLocked(k), nil
}

// checkDimLocked enforces the established dimensionality. Caller holds mu.
func (s *Set) checkDimLocked(n int) error {
	if s.dim != 0 && n != s.dim {
		return fmt.Errorf("configuration has %d coordinates, want %d: %w", n, s.dim, ErrInvalidInput)
	}

	return nil
}

// hasLocked looks k up in its bucket. Caller holds mu (read or write).
func (s *Set) hasLocked(k Key) bool {
	for _, other := range s.buckets[k.fingerprint()] {
		if other == k {
			return true
		}
	}

	return false
}

// insertLocked stores k if absent and fixes dim on the first insertion.
// Caller holds mu for writing.
func (s *Set) insertLocked(k Key) bool {
	if s.hasLocked(k) {
		return false
	}
	fp := k.fingerprint()
	s.buckets[fp] = append(s.buckets[fp], k)
	if s.dim == 0 {
		s.dim = k.Dim()
	}
	s.size++

	return true
}
