package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameProfilesEvaluated   = "profiles_evaluated_total"
	MetricNameGradesAssigned      = "grades_assigned_total"
	MetricNameProfileCacheHits    = "profile_cache_hits_total"
	MetricNameProfileCacheMisses  = "profile_cache_misses_total"
	MetricNameLedgerEntriesTotal  = "ledger_entries_recorded_total"
	MetricNameRecalibrationsTotal = "grade_recalibrations_total"
	MetricNameGradeThreshold      = "grade_threshold_score"
	MetricNameCharactersIngested  = "characters_ingested_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextProfilesEvaluated   = "Total number of combat profiles computed"
	HelpTextGradesAssigned      = "Total number of grades assigned, by grade"
	HelpTextProfileCacheHits    = "Profile lookups served from cache"
	HelpTextProfileCacheMisses  = "Profile lookups that required evaluation"
	HelpTextLedgerEntriesTotal  = "Total number of ledger entries recorded, by category"
	HelpTextRecalibrationsTotal = "Grade scale recalibrations, by outcome"
	HelpTextGradeThreshold      = "Current minimum score for each grade"
	HelpTextCharactersIngested  = "Total number of character snapshots stored"
)

// Label names
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelGrade    = "grade"
	LabelCategory = "category"
	LabelSource   = "source"
	LabelOutcome  = "outcome"
)

// Evaluation sources
const (
	SourceAdhoc  = "adhoc"
	SourceStored = "stored"
)

// Recalibration outcomes
const (
	OutcomeApplied = "applied"
	OutcomeSkipped = "skipped"
	OutcomeFailed  = "failed"
)

// unmatchedRoute labels requests that did not hit a registered route
const unmatchedRoute = "unmatched"

// HTTPLatencyBuckets spans 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
