package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	ProfilesEvaluated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameProfilesEvaluated,
			Help: HelpTextProfilesEvaluated,
		},
		[]string{LabelSource},
	)

	GradesAssigned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGradesAssigned,
			Help: HelpTextGradesAssigned,
		},
		[]string{LabelGrade},
	)

	ProfileCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameProfileCacheHits,
			Help: HelpTextProfileCacheHits,
		},
	)

	ProfileCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameProfileCacheMisses,
			Help: HelpTextProfileCacheMisses,
		},
	)

	CharactersIngested = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCharactersIngested,
			Help: HelpTextCharactersIngested,
		},
	)

	LedgerEntriesRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLedgerEntriesTotal,
			Help: HelpTextLedgerEntriesTotal,
		},
		[]string{LabelCategory},
	)

	Recalibrations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRecalibrationsTotal,
			Help: HelpTextRecalibrationsTotal,
		},
		[]string{LabelOutcome},
	)

	GradeThreshold = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameGradeThreshold,
			Help: HelpTextGradeThreshold,
		},
		[]string{LabelGrade},
	)
)
