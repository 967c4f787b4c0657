// Package metrics menyediakan instrumen Prometheus untuk HTTP dan tracking.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "scholartrack"

// Metrics memegang semua instrumen. Nil *Metrics = no-op.
type Metrics struct {
	Registry *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
	created         *prometheus.CounterVec
	transitions     *prometheus.CounterVec
	deleted         *prometheus.CounterVec
}

// New membuat registry sendiri, tidak memakai prometheus.DefaultRegisterer.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		Registry: reg,
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "route", "status"}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		created: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "applications_created_total",
			Help:      "Tracked applications created",
		}, []string{"track", "status"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "status_transitions_total",
			Help:      "Status changes applied to tracked applications",
		}, []string{"track", "from", "to"}),
		deleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "applications_deleted_total",
			Help:      "Tracked applications deleted",
		}, []string{"track"}),
	}
	reg.MustRegister(m.requestDuration, m.requestsTotal, m.created, m.transitions, m.deleted)
	return m
}

func (m *Metrics) Created(track, status string) {
	if m == nil {
		return
	}
	m.created.WithLabelValues(track, status).Inc()
}

func (m *Metrics) Transition(track, from, to string) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(track, from, to).Inc()
}

func (m *Metrics) Deleted(track string) {
	if m == nil {
		return
	}
	m.deleted.WithLabelValues(track).Inc()
}

// Middleware mencatat durasi & jumlah request; label route = template path (c.Route().Path).
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if m == nil {
			return c.Next()
		}
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		route := c.Route().Path
		labels := []string{c.Method(), route, strconv.Itoa(status)}
		m.requestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		m.requestsTotal.WithLabelValues(labels...).Inc()
		return err
	}
}
