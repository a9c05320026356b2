// Package metrics exposes prometheus instrumentation for the booking flows.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the application counters registered on a dedicated registry.
type Metrics struct {
	registry *prometheus.Registry

	TicketsCreated    prometheus.Counter
	PaymentsProcessed prometheus.Counter
	TicketsUsed       prometheus.Counter
	ChatTurns         prometheus.Counter
	UsersRegistered   prometheus.Counter
}

// New is the constructor for Metrics with its own registry, so tests can
// build isolated instances.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		TicketsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "musea_tickets_created_total",
			Help: "Total number of tickets created.",
		}),
		PaymentsProcessed: factory.NewCounter(prometheus.CounterOpts{
			Name: "musea_payments_processed_total",
			Help: "Total number of successful ticket payments.",
		}),
		TicketsUsed: factory.NewCounter(prometheus.CounterOpts{
			Name: "musea_tickets_used_total",
			Help: "Total number of tickets redeemed at entry.",
		}),
		ChatTurns: factory.NewCounter(prometheus.CounterOpts{
			Name: "musea_chat_turns_total",
			Help: "Total number of chatbot message turns.",
		}),
		UsersRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "musea_users_registered_total",
			Help: "Total number of registered users.",
		}),
	}
}

// Handler returns the HTTP handler serving the scrape endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
