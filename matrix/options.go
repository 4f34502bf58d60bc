// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults (single source of truth).
package matrix

// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
// Configurations are hashed after rounding; NaN and ±Inf have no meaningful rounded
// key, so they are refused at the door.
const DefaultValidateNaNInf = true
