// Package metrics exposes the service's Prometheus metrics. A dedicated
// registry keeps the exposition limited to campaign metrics instead of the
// default Go collector noise.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gongu"

var registry = prometheus.NewRegistry()

var (
	// ContributionsCreated counts stored contributions by channel.
	ContributionsCreated = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contributions_created_total",
		Help:      "Contributions accepted and stored, by payment channel.",
	}, []string{"channel"})

	// ContributionsDeleted counts explicit deletions.
	ContributionsDeleted = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contributions_deleted_total",
		Help:      "Contributions removed by explicit delete.",
	})

	// InvalidVotes counts contributions classified to a sentinel at intake.
	InvalidVotes = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invalid_votes_total",
		Help:      "Contributions whose label matched no vote option, by sentinel.",
	}, []string{"sentinel"})

	// StatsQueries counts week statistics computations.
	StatsQueries = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stats_queries_total",
		Help:      "Week statistics aggregations served.",
	})

	// SheetSyncs counts export sync attempts by outcome.
	SheetSyncs = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sheet_syncs_total",
		Help:      "Sheet export sync attempts, by result.",
	}, []string{"result"})

	// HTTPRequests counts handled requests by method, path and status.
	HTTPRequests = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests handled.",
	}, []string{"method", "path", "status"})
)

// Handler returns the exposition handler for the service registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
