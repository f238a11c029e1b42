package monitor

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "jumbo",
		Subsystem: "monitor",
		Name:      "http_requests_total",
		Help:      "total number of http requests",
	},
		[]string{"code", "method"},
	)

	requestDuration = prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Namespace: "jumbo",
		Subsystem: "monitor",
		Name:      "http_request_duration_seconds",
		Help:      "duration of http requests",
	},
		[]string{"code", "method"},
	)
)

func instrumentedHTTPClient(registry prometheus.Registerer) *http.Client {
	if registry != nil {
		registry.MustRegister(requestCounter, requestDuration)
	}
	return &http.Client{
		Transport: promhttp.InstrumentRoundTripperCounter(requestCounter,
			promhttp.InstrumentRoundTripperDuration(requestDuration,
				http.DefaultTransport,
			),
		),
	}
}
