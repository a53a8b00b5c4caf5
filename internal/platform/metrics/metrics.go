package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcomes de una solicitud de insights.
const (
	InsightOK    = "ok"
	InsightEmpty = "empty"
	InsightError = "error"
)

// Collector agrupa las métricas del servicio en un registry propio
// (no el global), así cada router de test tiene el suyo.
type Collector struct {
	registry *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	InsightRequests *prometheus.CounterVec
	RecordSaves     *prometheus.CounterVec
}

func NewCollector(namespace string) *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		registry: reg,
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		InsightRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "insight_requests_total",
				Help:      "Insight requests by outcome (ok, empty, error)",
			},
			[]string{"outcome"},
		),
		RecordSaves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "record_saves_total",
				Help:      "Whole-collection overwrites by storage key",
			},
			[]string{"key"},
		),
	}

	reg.MustRegister(c.HTTPRequests, c.HTTPDuration, c.InsightRequests, c.RecordSaves)
	return c
}

// ObserveHTTP registra un request terminado.
func (c *Collector) ObserveHTTP(method, route string, status int, d time.Duration) {
	if c == nil {
		return
	}
	c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.HTTPDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func (c *Collector) IncInsight(outcome string) {
	if c == nil {
		return
	}
	c.InsightRequests.WithLabelValues(outcome).Inc()
}

func (c *Collector) IncRecordSave(key string) {
	if c == nil {
		return
	}
	c.RecordSaves.WithLabelValues(key).Inc()
}

// Handler expone el registry en formato Prometheus.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
