package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nutriplan_client",
			Name:      "requests_total",
			Help:      "HTTP exchanges issued by the gateway.",
		},
		[]string{"method"},
	)

	requestErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nutriplan_client",
			Name:      "request_errors_total",
			Help:      "HTTP exchanges that failed at the transport level.",
		},
		[]string{"method"},
	)
)
