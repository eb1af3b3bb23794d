package reporter

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values
const (
	OutcomeMatched        = "matched"
	OutcomeFallback       = "fallback"
	OutcomeDecodeError    = "decode_error"
	OutcomeTransportError = "transport_error"
)

// noStatus is the status label of requests that got no response
const noStatus = "none"

// PrometheusReporter is a fetcher.Reporter that counts every dispatch
// outcome in prometheus
type PrometheusReporter struct {
	dispatches *prometheus.CounterVec
}

// NewPrometheusReporter creates a new prometheus reporter, registering its
// counter with reg. A nil reg registers with the default registerer.
func NewPrometheusReporter(namespace string, reg prometheus.Registerer) *PrometheusReporter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	return &PrometheusReporter{
		dispatches: NewPrometheusCounterVec(namespace, reg),
	}
}

// NewPrometheusCounterVec creates the dispatch counter
// build the counter name as: namespace_dispatch_total
func NewPrometheusCounterVec(namespace string, reg prometheus.Registerer) *prometheus.CounterVec {
	return promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
		Name: fmt.Sprintf("%s_dispatch_total", namespace),
		Help: "The total number of fetched responses, by fetcher, outcome and status code",
	}, []string{"fetcher", "outcome", "status"})
}

// ReportMatched reports a response decoded by a table entry
func (pr *PrometheusReporter) ReportMatched(name string, code int) {
	pr.dispatches.WithLabelValues(name, OutcomeMatched, strconv.Itoa(code)).Inc()
}

// ReportFallback reports a response handed to the fallback decoder
func (pr *PrometheusReporter) ReportFallback(name string, code int) {
	pr.dispatches.WithLabelValues(name, OutcomeFallback, strconv.Itoa(code)).Inc()
}

// ReportDecodeError reports a decoder failure
func (pr *PrometheusReporter) ReportDecodeError(name string, code int) {
	pr.dispatches.WithLabelValues(name, OutcomeDecodeError, strconv.Itoa(code)).Inc()
}

// ReportTransportError reports a request that got no response
func (pr *PrometheusReporter) ReportTransportError(name string) {
	pr.dispatches.WithLabelValues(name, OutcomeTransportError, noStatus).Inc()
}
