// SPDX-License-Identifier: MIT

package duplicates

import "github.com/katalvlaran/dupguard/matrix"

// Space converts raw (unzipped) configurations to the encoded (zipped) layout
// the Manager indexes. ZipInputs receives N raw rows (N×d) and must return N
// encoded rows (N×d'); d' may differ from d. It must be pure and deterministic.
//
// The Manager does not own the Space; it must stay valid for as long as
// unzipped queries are issued.
type Space interface {
	ZipInputs(x matrix.Matrix) (matrix.Matrix, error)
}

// SpaceFunc adapts an ordinary function to the Space interface.
type SpaceFunc func(x matrix.Matrix) (matrix.Matrix, error)

// ZipInputs calls f(x).
func (f SpaceFunc) ZipInputs(x matrix.Matrix) (matrix.Matrix, error) { return f(x) }
