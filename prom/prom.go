// SPDX-License-Identifier: MIT

// Package prom holds the Prometheus collectors reported by duplicate managers.
// Collectors register on the default registry at import time.
package prom

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label values for the form of a queried configuration.
const (
	FormZipped   = "zipped"
	FormUnzipped = "unzipped"
)

// Label values for the source of an indexed configuration.
const (
	SourceEvaluated = "evaluated"
	SourcePending   = "pending"
	SourceIgnored   = "ignored"
)

var (
	DuplicateLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dupguard_duplicate_lookups_total",
		Help: "The total number of duplicate lookups",
	}, []string{"form"})
	DuplicateHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dupguard_duplicate_hits_total",
		Help: "The total number of lookups that found a duplicate",
	}, []string{"form"})
	IndexedRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dupguard_indexed_rows_total",
		Help: "The total number of configuration rows indexed by source",
	}, []string{"source"})
	UniqueConfigurations = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "dupguard_unique_configurations",
		Help: "Distinct rounded configurations held by the most recently built manager",
	})
)
