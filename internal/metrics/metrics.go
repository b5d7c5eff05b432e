// Package metrics holds the Prometheus collectors for the parse
// pipeline and the cache layers. Collectors are registered once via
// promauto and shared by the API and the worker.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ParseRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parse_requests_total",
			Help: "Total parse requests by outcome (hit, parsed, empty)",
		},
		[]string{"outcome"},
	)

	ParseDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "parse_duration_seconds",
			Help:    "Wall time of a single message parse",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		},
	)

	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Cache hits by layer (memory, redis, mongo)",
		},
		[]string{"layer"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Cache misses by layer (memory, redis, mongo)",
		},
		[]string{"layer"},
	)

	BatchJobsRunning = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "batch_jobs_running",
			Help: "Batch parse jobs currently in flight",
		},
	)
)

// Cache layer label values.
const (
	LayerMemory = "memory"
	LayerRedis  = "redis"
	LayerMongo  = "mongo"
)

// Parse outcome label values.
const (
	OutcomeHit    = "hit"
	OutcomeParsed = "parsed"
	OutcomeEmpty  = "empty"
)
