// Package metrics defines the custom Prometheus metrics for the SnapCart
// marketplace API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at import time
// via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "snapcart"

// LoginsTotal counts successful logins.
// Label:
//   - method: "password" or "oauth"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of successful logins, by method.",
	},
	[]string{"method"},
)

// AuthFailuresTotal counts rejected authentication attempts.
// Label:
//   - reason: "invalid_credentials", "oauth_state_mismatch", "oauth_exchange"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of failed authentication attempts, by reason.",
	},
	[]string{"reason"},
)

// RegistrationsTotal counts account creations.
// Label:
//   - source: "local" or "oauth"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created, by source.",
	},
	[]string{"source"},
)

// SellersCreatedTotal counts seller profile creations.
var SellersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sellers_created_total",
		Help:      "Total number of seller profiles created.",
	},
)

// SellersDeletedTotal counts seller profile deletions (cascade included).
var SellersDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sellers_deleted_total",
		Help:      "Total number of seller profiles deleted.",
	},
)

// ProductsDeletedInCascade tracks how many products each seller deletion
// removed.
var ProductsDeletedInCascade = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "products_deleted_in_cascade",
		Help:      "Number of products removed per seller cascade deletion.",
		Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
	},
)

// ReviewsCreatedTotal counts reviews posted.
var ReviewsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reviews_created_total",
		Help:      "Total number of product reviews created.",
	},
)
