package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by method, path, and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "revisor_requests_total",
		Help: "Total HTTP requests processed.",
	}, []string{"method", "path", "status"})

	// AuditDuration tracks end-to-end audit latency per model.
	AuditDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "revisor_audit_duration_seconds",
		Help:    "Time spent auditing a translation, including the model call.",
		Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
	}, []string{"model"})

	// InputChars tracks the combined length of source and translation texts.
	InputChars = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "revisor_input_chars",
		Help:    "Number of characters in audit input (source plus translation).",
		Buckets: []float64{100, 250, 500, 1000, 2500, 5000, 10000, 20000, 40000},
	})

	// ReportRows tracks how many issue rows each parsed report contains.
	ReportRows = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "revisor_report_rows",
		Help:    "Number of rows in a parsed audit report.",
		Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
	})

	// ParseFailures counts model replies that were not valid JSON even after
	// brace-scan recovery.
	ParseFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "revisor_parse_failures_total",
		Help: "Model replies rejected because no JSON report could be extracted.",
	})

	// AdapterAvailable tracks whether each adapter is reachable.
	AdapterAvailable = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "revisor_adapter_available",
		Help: "Whether an LLM adapter is available (1) or not (0).",
	}, []string{"adapter"})
)
