// Package metrics defines all custom Prometheus metrics for the planner API.
// It is the single source of truth for metric names, labels, and help
// strings; promauto registers everything with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "planner"

// LoginsTotal counts login attempts.
// Labels:
//   - kind: "organizer" or "guest"
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by principal kind and result.",
	},
	[]string{"kind", "result"},
)

// TokensIssuedTotal counts identity tokens minted after a successful login or
// registration.
// Label:
//   - kind: "organizer" or "guest"
var TokensIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of identity tokens issued, by principal kind.",
	},
	[]string{"kind"},
)

// GuestRegistrationsTotal counts guest registrations.
// Labels:
//   - flow: "public" (anonymous form) or "credentialed" (self-registration)
//   - mode: "created" (new record) or "merged" (existing record claimed)
var GuestRegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guest_registrations_total",
		Help:      "Total number of guest registrations, by flow and outcome.",
	},
	[]string{"flow", "mode"},
)

// ContentCacheTotal counts lookups against the public content cache.
// Label:
//   - result: "hit" or "miss"
var ContentCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "content_cache_total",
		Help:      "Total number of public content cache lookups, by result.",
	},
	[]string{"result"},
)
