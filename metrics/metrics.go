// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ballot_admin"

// Collection labels
const (
	Elections  = "elections"
	Candidates = "candidates"
)

// Recorder tracks admin activity. A nil *Recorder is safe to use and records nothing.
type Recorder struct {
	registry           *prometheus.Registry
	mutations          *prometheus.CounterVec
	validationFailures *prometheus.CounterVec
	records            *prometheus.GaugeVec
	sessions           prometheus.Gauge
	walletStatus       *prometheus.CounterVec
}

// New creates a Recorder with its own registry
func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		mutations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_total",
			Help:      "Committed record mutations by collection and operation",
		}, []string{"collection", "operation"}),
		validationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "Rejected forms by collection and error code",
		}, []string{"collection", "code"}),
		records: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "records",
			Help:      "Records currently held per collection",
		}, []string{"collection"}),
		sessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions",
			Help:      "Live admin sessions",
		}),
		walletStatus: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wallet_status_total",
			Help:      "Wallet status banners shown by kind",
		}, []string{"kind"}),
	}
}

// Mutation counts a committed change and updates the collection size
func (r *Recorder) Mutation(collection, operation string, size int) {
	if r == nil {
		return
	}
	r.mutations.WithLabelValues(collection, operation).Inc()
	r.records.WithLabelValues(collection).Set(float64(size))
}

// Records sets the collection size without counting a mutation
func (r *Recorder) Records(collection string, size int) {
	if r == nil {
		return
	}
	r.records.WithLabelValues(collection).Set(float64(size))
}

func (r *Recorder) ValidationFailure(collection string, codes []string) {
	if r == nil {
		return
	}
	for _, code := range codes {
		r.validationFailures.WithLabelValues(collection, code).Inc()
	}
}

func (r *Recorder) Sessions(n int) {
	if r == nil {
		return
	}
	r.sessions.Set(float64(n))
}

func (r *Recorder) WalletStatus(kind string) {
	if r == nil {
		return
	}
	r.walletStatus.WithLabelValues(kind).Inc()
}

// Handler serves the registry in the Prometheus text format
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
