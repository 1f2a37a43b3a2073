package writequeue

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	submissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nutriplan_client",
			Name:      "write_submissions_total",
			Help:      "Write jobs accepted into the queue.",
		},
		[]string{"shard"},
	)

	queueFullTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nutriplan_client",
			Name:      "write_queue_full_total",
			Help:      "Submissions rejected because a shard stayed full.",
		},
		[]string{"shard"},
	)

	failuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nutriplan_client",
			Name:      "write_failures_total",
			Help:      "Write jobs whose final disposition was an error.",
		},
		[]string{"shard"},
	)

	queueDepth = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "nutriplan_client",
			Name:      "write_queue_depth",
			Help:      "Jobs waiting per shard.",
		},
		[]string{"shard"},
	)

	runDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "nutriplan_client",
			Name:      "write_run_seconds",
			Help:      "Wall time of individual job executions.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"shard"},
	)
)

func labelFor(shard int) string { return strconv.Itoa(shard) }
