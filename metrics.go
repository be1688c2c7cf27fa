package deepl

import (
	"net/http"
	"path"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "deepl_client",
			Name:      "requests_total",
			Help:      "API requests issued, by endpoint.",
		},
		[]string{"endpoint"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "deepl_client",
			Name:      "request_failures_total",
			Help:      "API requests that failed in transport or returned a non-success status.",
		},
		[]string{"endpoint", "reason"},
	)
)

// metricsTransport counts every outgoing request and classifies
// failures by endpoint. Installed as the outermost wrapper in New.
type metricsTransport struct{ base http.RoundTripper }

func (mt *metricsTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	endpoint := path.Base(req.URL.Path)
	requestsTotal.WithLabelValues(endpoint).Inc()

	resp, err := mt.base.RoundTrip(req)
	if err != nil {
		requestFailuresTotal.WithLabelValues(endpoint, "transport").Inc()
		return nil, err
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		requestFailuresTotal.WithLabelValues(endpoint, "authorization").Inc()
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		requestFailuresTotal.WithLabelValues(endpoint, "server").Inc()
	}
	return resp, nil
}
