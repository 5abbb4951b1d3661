package ledgerline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ledgerline_client",
			Name:      "requests_total",
			Help:      "API calls issued, by resource.",
		},
		[]string{"resource"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ledgerline_client",
			Name:      "request_failures_total",
			Help:      "API calls that returned an error, by resource.",
		},
		[]string{"resource"},
	)
)

// observe records one issued call and, when err is non-nil, one failure.
func observe(resource string, err error) {
	requestsTotal.WithLabelValues(resource).Inc()
	if err != nil {
		requestFailuresTotal.WithLabelValues(resource).Inc()
	}
}
