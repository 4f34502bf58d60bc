// SPDX-License-Identifier: MIT

// Package roundset implements a set of fixed-length numeric configurations
// whose equality is "equal after rounding every coordinate to N decimals".
//
// Candidates proposed by an optimizer travel through encodings, flattening
// and float conversions, so bit-exact comparison is meaningless. A Set first
// rounds each coordinate independently (round half to even on x·10^N, the
// rule numpy's around uses) and then stores the exact rounded values. Two
// configurations collide iff every coordinate rounds to the same value; there
// is no second, floating tolerance on top.
//
// ✨ Key properties:
//   - Add is idempotent: re-adding a rounding-equivalent configuration is a no-op.
//   - Update validates the whole batch before inserting anything.
//   - The dimensionality is fixed by the first insertion; mismatched queries
//     fail with ErrInvalidInput. An empty Set accepts any length and reports
//     "not present".
//   - The Set never shrinks.
//
// ⚙️ Usage:
//
//	s, err := roundset.New(roundset.WithDecimals(2))
//	if err != nil {
//		// ErrInvalidConfiguration for negative decimals
//	}
//	_, _ = s.Add([]float64{1.001, 2.004})
//	ok, _ := s.Contains([]float64{1.0, 2.0}) // true
//
// Concurrency:
//
//	All methods are safe for concurrent use; readers share an RWMutex.
//
// Performance:
//   - Add / Contains: O(d) expected (one xxhash over the encoded key).
//   - Update: O(k·d) for k configurations, one lock acquisition.
package roundset
