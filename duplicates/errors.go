// SPDX-License-Identifier: MIT

package duplicates

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dupguard/roundset"
)

// Sentinel errors for duplicate-manager operations. Match them with errors.Is.
var (
	// ErrInvalidInput indicates a configuration whose coordinate count does not
	// match the dimensionality of the indexed configurations, or which cannot be
	// keyed at all (empty, NaN, ±Inf). Same sentinel as roundset.ErrInvalidInput.
	ErrInvalidInput = roundset.ErrInvalidInput

	// ErrInvalidConfiguration indicates a negative decimals count.
	// Same sentinel as roundset.ErrInvalidConfiguration.
	ErrInvalidConfiguration = roundset.ErrInvalidConfiguration

	// ErrNilSpace indicates an unzipped query on a Manager built without a Space.
	ErrNilSpace = errors.New("duplicates: space is nil")

	// ErrZipFailed indicates that Space.ZipInputs failed or returned a result
	// that does not have one row per input row.
	ErrZipFailed = errors.New("duplicates: zip inputs failed")
)

// managerErrorf wraps err with "Manager.<method>: " context.
func managerErrorf(method string, err error) error {
	return fmt.Errorf("Manager.%s: %w", method, err)
}
