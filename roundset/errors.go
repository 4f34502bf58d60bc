// SPDX-License-Identifier: MIT

package roundset

import (
	"errors"
	"fmt"
)

// Sentinel errors for rounded-set operations. Match them with errors.Is.
var (
	// ErrInvalidInput indicates a configuration that cannot be keyed: its
	// length differs from the dimensionality already established by the set,
	// it is empty, or one of its coordinates is NaN or ±Inf.
	ErrInvalidInput = errors.New("roundset: invalid input")

	// ErrInvalidConfiguration indicates a nonsensical construction parameter
	// (a negative number of decimals).
	ErrInvalidConfiguration = errors.New("roundset: invalid configuration")
)

// setErrorf wraps err with "Set.<method>: <detail>" context.
func setErrorf(method, detail string, err error) error {
	if detail == "" {
		return fmt.Errorf("Set.%s: %w", method, err)
	}

	return fmt.Errorf("Set.%s: %s: %w", method, detail, err)
}
