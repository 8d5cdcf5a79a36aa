package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the service's prometheus collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	Errors          *prometheus.CounterVec

	OrdersPlaced     prometheus.Counter
	OrdersDelivered  prometheus.Counter
	OrdersDeleted    prometheus.Counter
	CheckoutDuration prometheus.Histogram
}

// NewMetrics initializes and registers all collectors.
func NewMetrics(service string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: service,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"path", "method", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "storefront",
			Subsystem: service,
			Name:      "http_request_duration_ms",
			Help:      "HTTP request latency in milliseconds.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}, []string{"path"}),
		Errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: service,
			Name:      "http_errors_total",
			Help:      "Total number of failed HTTP requests by error code.",
		}, []string{"path", "method", "code"}),
		OrdersPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: service,
			Name:      "orders_placed_total",
			Help:      "Order rows created by checkout.",
		}),
		OrdersDelivered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: service,
			Name:      "orders_delivered_total",
			Help:      "Orders flipped to delivered.",
		}),
		OrdersDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: service,
			Name:      "orders_deleted_total",
			Help:      "Orders removed from the ledger.",
		}),
		CheckoutDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "storefront",
			Subsystem: service,
			Name:      "checkout_duration_ms",
			Help:      "Cart to orders conversion latency in milliseconds.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000},
		}),
	}

	m.registry.MustRegister(
		m.Requests,
		m.RequestDuration,
		m.Errors,
		m.OrdersPlaced,
		m.OrdersDelivered,
		m.OrdersDeleted,
		m.CheckoutDuration,
	)
	return m
}

// RecordRequest increments request counters and observes latency.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(path).Observe(float64(duration.Milliseconds()))
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	m.Errors.WithLabelValues(path, method, code).Inc()
}

// Handler exposes the registry in prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
