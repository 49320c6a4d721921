package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the RPC façade's Prometheus collectors.
type Metrics struct {
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	PairingEvents    *prometheus.CounterVec
	HandshakeResults *prometheus.CounterVec
	SessionsActive   prometheus.Gauge
}

// New creates and registers the façade's Prometheus collectors.
func New() *Metrics {
	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pearpass_rpc_requests_total",
				Help: "Total RPC requests handled by the façade.",
			},
			[]string{"op", "outcome"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pearpass_rpc_duration_seconds",
				Help:    "RPC request latency by operation.",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
			},
			[]string{"op"},
		),
		PairingEvents: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pearpass_pairing_events_total",
				Help: "Pairing lifecycle events; the façade records only reset.",
			},
			[]string{"event"},
		),
		HandshakeResults: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pearpass_handshake_results_total",
				Help: "Session handshake outcomes.",
			},
			[]string{"stage", "result"},
		),
		SessionsActive: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "pearpass_sessions_active",
				Help: "Currently open sessions.",
			},
		),
	}
}

// Handler exposes the registered collectors over HTTP.
func (m *Metrics) Handler() http.Handler {
	return promhttp.Handler()
}
