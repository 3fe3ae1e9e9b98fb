// Package metrics exposes client counters on a dedicated Prometheus registry.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tictaptoe"

type Metrics struct {
	registry *prometheus.Registry

	intents        *prometheus.CounterVec
	rejections     *prometheus.CounterVec
	pushes         *prometheus.CounterVec
	transportState *prometheus.CounterVec
	gamesFinished  *prometheus.CounterVec
}

func New() *Metrics {
	that := &Metrics{
		registry: prometheus.NewRegistry(),
		intents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "intents_total",
			Help:      "Requests sent to the game server.",
		}, []string{"event"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "intent_rejections_total",
			Help:      "Requests refused by the game server.",
		}, []string{"event"}),
		pushes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pushes_total",
			Help:      "Events pushed by the game server.",
		}, []string{"event"}),
		transportState: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transport_state_total",
			Help:      "Connection state changes.",
		}, []string{"state"}),
		gamesFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_finished_total",
			Help:      "Finished games by mode and outcome.",
		}, []string{"mode", "outcome"}),
	}

	that.registry.MustRegister(
		that.intents,
		that.rejections,
		that.pushes,
		that.transportState,
		that.gamesFinished,
	)

	return that
}

func (that *Metrics) IntentSent(event string) {
	that.intents.WithLabelValues(event).Inc()
}

func (that *Metrics) IntentRejected(event string) {
	that.rejections.WithLabelValues(event).Inc()
}

func (that *Metrics) PushReceived(event string) {
	that.pushes.WithLabelValues(event).Inc()
}

func (that *Metrics) TransportState(state string) {
	that.transportState.WithLabelValues(state).Inc()
}

func (that *Metrics) GameFinished(mode, outcome string) {
	that.gamesFinished.WithLabelValues(mode, outcome).Inc()
}

func (that *Metrics) Registry() *prometheus.Registry {
	return that.registry
}

func (that *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(that.registry, promhttp.HandlerOpts{})
}
