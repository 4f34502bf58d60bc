// SPDX-License-Identifier: MIT

// Package roundset - rounding rule & key encoding.
//
// A coordinate v is normalized to the integral float64 RoundToEven(v·10^d).
// The encoded key stores, per coordinate, one tag byte followed by the 8
// little-endian bytes of that integral value. Integral float64 values are
// exact, so key equality is exact equality of the rounded grid points.
//
// Two corner cases keep the rule total:
//   - 10^d overflows (d > 308): every coordinate is kept as-is (tagRaw); at that
//     precision rounding can no longer change a float64.
//   - v·10^d overflows for a huge |v|: v is kept as-is (tagRaw). Such a v is
//     already an integer far coarser than the rounding step. The tag prevents
//     it from colliding with a scaled grid point of the same bit pattern.

package roundset

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/katalvlaran/dupguard/matrix"
)

// Coordinate tags inside an encoded Key.
const (
	tagScaled byte = 's' // value is RoundToEven(v·scale)
	tagRaw    byte = 'r' // value is v itself (scale or product overflowed)
)

// bytesPerCoord is the encoded width of one coordinate: tag + float64 bits.
const bytesPerCoord = 1 + 8

// Key is the exact, hashable identity of a rounded configuration.
// Keys from sets with different decimals are not comparable.
type Key string

// Dim reports the number of coordinates encoded in k.
func (k Key) Dim() int { return len(k) / bytesPerCoord }

// fingerprint is the bucket hash of k.
func (k Key) fingerprint() uint64 { return xxhash.Sum64String(string(k)) }

// rounder applies one Set's rounding rule. It is immutable after creation and
// carries no shared state, so every Set owns its own behavior.
type rounder struct {
	decimals int
	scale    float64 // 10^decimals, +Inf when it overflows
	exact    bool    // scale overflowed: keep values untouched
}

// newRounder precomputes the scale for decimals (assumed >= 0).
func newRounder(decimals int) rounder {
	scale := math.Pow10(decimals)

	return rounder{decimals: decimals, scale: scale, exact: math.IsInf(scale, 1)}
}

// coord returns the tagged grid value of v. v must be finite.
func (r rounder) coord(v float64) (byte, float64) {
	if r.exact {
		return tagRaw, foldZero(v)
	}
	scaled := v * r.scale
	if math.IsInf(scaled, 0) {
		return tagRaw, v
	}

	return tagScaled, foldZero(math.RoundToEven(scaled))
}

// foldZero maps -0 to +0 so both zeros share one bit pattern.
func foldZero(v float64) float64 {
	if v == 0 {
		return 0
	}

	return v
}

// round maps v onto the decimal grid: the value numpy's around(v, d) returns.
func (r rounder) round(v float64) float64 {
	tag, g := r.coord(v)
	if tag == tagRaw {
		return g
	}

	return g / r.scale
}

// key validates x and encodes its rounded coordinates.
// Errors: ErrInvalidInput for an empty x or a non-finite coordinate.
func (r rounder) key(x []float64) (Key, error) {
	if len(x) == 0 {
		return "", fmt.Errorf("empty configuration: %w", ErrInvalidInput)
	}
	if err := checkFinite(x); err != nil {
		return "", err
	}
	buf := make([]byte, len(x)*bytesPerCoord)
	for i, v := range x {
		tag, g := r.coord(v)
		off := i * bytesPerCoord
		buf[off] = tag
		binary.LittleEndian.PutUint64(buf[off+1:off+bytesPerCoord], math.Float64bits(g))
	}

	return Key(buf), nil
}

// checkFinite applies the matrix finite-only policy to x as ErrInvalidInput.
func checkFinite(x []float64) error {
	if err := matrix.ValidateFinite(x); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return nil
}
