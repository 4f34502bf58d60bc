// Package dupguard keeps an optimization loop from spending evaluations on
// configurations it has already seen.
//
// A configuration is a vector of floats. Two configurations are duplicates
// when every coordinate rounds to the same value at a fixed number of
// decimals (4 by default). The module is organized as:
//
//	matrix/      configuration matrices (one configuration per row) and row helpers
//	roundset/    a concurrent set of rounded configurations keyed by xxhash
//	duplicates/  Manager: indexes evaluated, pending and ignored points and
//	             answers zipped and unzipped duplicate queries
//	settings/    YAML, keyword-map and DUPGUARD_* environment configuration,
//	             zerolog logger construction
//	prom/        Prometheus collectors for lookups, hits and indexed rows
//
// Quick example:
//
//	mgr, _ := duplicates.NewManager(nil, evaluated, pending, nil, duplicates.WithDecimals(2))
//	dup, _ := mgr.IsZippedDuplicate([]float64{1.00, 2.00})
//
//	go get github.com/katalvlaran/dupguard
package dupguard
