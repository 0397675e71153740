// Package metrics exposes the prometheus collectors for the backend.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AllocationRuns counts how often a bucket allocation was recomputed.
	AllocationRuns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "margin_allocation_runs_total",
		Help: "Number of bucket allocation computations",
	})

	// BucketDeductions counts payments deducted from bucket balances.
	BucketDeductions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "margin_bucket_deductions_total",
		Help: "Number of payments deducted from bucket balances",
	})
)
