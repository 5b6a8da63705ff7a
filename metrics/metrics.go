package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AssessmentsComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mortgage_assessments_total",
			Help: "Total number of affordability assessments served",
		},
		[]string{"cache"},
	)

	AssessmentDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mortgage_assessment_duration_seconds",
			Help:    "Duration of affordability assessments in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
	)

	PurchasingPowerScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mortgage_pp_score",
			Help:    "Distribution of computed purchasing-power scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	DependencyFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mortgage_dependency_failures_total",
			Help: "Non-fatal cache and repository failures",
		},
		[]string{"dependency", "operation"},
	)

	RateLimited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		},
		[]string{"path"},
	)
)
