// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UtterancesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_utterances_processed_total",
			Help: "Total number of utterances processed, by parsed intent",
		},
		[]string{"intent"},
	)

	EmptyResults = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "assistant_empty_results_total",
			Help: "Total number of queries that produced no catalog matches",
		},
	)

	CorrectionsSuggested = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "assistant_corrections_suggested_total",
			Help: "Total number of did-you-mean suggestions offered",
		},
	)

	FuzzyQueryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "assistant_fuzzy_query_duration_seconds",
			Help:    "Duration of fuzzy catalog matching per query",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
		},
	)

	FollowUpsPending = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "assistant_follow_ups_pending",
			Help: "Number of sessions currently awaiting a follow-up answer",
		},
	)
)
