// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RankingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matching_rankings_total",
			Help: "Total number of ranking passes executed",
		},
		[]string{"strategy"},
	)

	ListingsScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matching_listings_scored_total",
			Help: "Total number of listings scored across ranking passes",
		},
		[]string{"strategy"},
	)

	ListingsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matching_listings_skipped_total",
			Help: "Total number of listings excluded as unscorable",
		},
		[]string{"strategy"},
	)

	RankingDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "matching_ranking_duration_seconds",
			Help: "Duration of a full ranking pass in seconds",
		},
		[]string{"strategy"},
	)

	ProfileCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matching_profile_cache_requests_total",
			Help: "Student profile cache lookups by outcome",
		},
		[]string{"outcome"},
	)
)
