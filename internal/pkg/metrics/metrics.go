// Package metrics defines all custom Prometheus metrics for the sweet shop
// API. It is the single source of truth for metric names, labels, and help
// strings; the vars register themselves with the default registry via
// promauto at init time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sweetshop"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created through /auth/register.",
	},
)

// LoginsTotal counts login attempts by outcome.
// Label:
//   - outcome: "ok", "bad_password", or "unknown_email"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by outcome.",
	},
	[]string{"outcome"},
)

// TokenRefreshesTotal counts access tokens minted from a refresh token.
var TokenRefreshesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_refreshes_total",
		Help:      "Total number of access tokens issued via /auth/refresh.",
	},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// CatalogMutationsTotal counts successful admin mutations on the catalog.
// Label:
//   - action: "create", "update", or "delete"
var CatalogMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_mutations_total",
		Help:      "Total number of successful catalog mutations, by action.",
	},
	[]string{"action"},
)

// CategoryListingsTotal counts category listings by where the data came from.
// Label:
//   - source: "cache" or "store"
var CategoryListingsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "category_listings_total",
		Help:      "Total number of category listings served, by data source.",
	},
	[]string{"source"},
)
