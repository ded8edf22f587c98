package http

import (
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)

	loginAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "login_attempts_total",
			Help: "Total number of login attempts by result",
		},
		[]string{"result"}, // success, failure
	)

	importRows = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_import_rows_total",
			Help: "Total number of bulk import rows by outcome",
		},
		[]string{"outcome"}, // inserted, updated, ignored
	)

	registerMetricsOnce sync.Once
)

// MetricsMiddleware registra contagem e duração por rota. O label path usa o
// padrão da rota (/api/quotes/:id), não a URL concreta, para manter a
// cardinalidade baixa.
func MetricsMiddleware(service string) fiber.Handler {
	registerMetricsOnce.Do(func() {
		prometheus.MustRegister(requestCounter)
		prometheus.MustRegister(requestDuration)
		prometheus.MustRegister(loginAttempts)
		prometheus.MustRegister(importRows)
	})
	return func(c *fiber.Ctx) error {
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
		path := c.Route().Path
		statusStr := strconv.Itoa(status)

		requestCounter.WithLabelValues(service, c.Method(), path, statusStr).Inc()
		requestDuration.WithLabelValues(service, c.Method(), path, statusStr).Observe(time.Since(start).Seconds())
		return err
	}
}

// MetricsHandler expõe o endpoint Prometheus via adaptor net/http.
func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
