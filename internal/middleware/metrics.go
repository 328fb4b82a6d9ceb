package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "food_donation_service",
		Subsystem: "http",
		Name:      "in_flight_requests",
		Help:      "Current number of in-flight HTTP requests.",
	})

	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "food_donation_service",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests by role area, route and status class.",
	}, []string{"area", "method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "food_donation_service",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latencies in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"area", "method", "route"})

	httpResponseSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "food_donation_service",
		Subsystem: "http",
		Name:      "response_size_bytes",
		Help:      "HTTP response body sizes.",
		Buckets:   prometheus.ExponentialBuckets(64, 4, 8),
	}, []string{"area"})
)

const metricsPath = "/metrics"

// Metrics считает запросы по разделам API (/api/ngo, /api/volunteer, ...).
// Метка route берется из шаблона chi, чтобы id в пути не раздували кардинальность.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == metricsPath {
			next.ServeHTTP(w, r)
			return
		}

		httpInFlight.Inc()
		defer httpInFlight.Dec()

		start := time.Now()
		rw := wrapResponseWriter(w)

		next.ServeHTTP(rw, r)

		route := routePattern(r)
		area := routeArea(route)

		httpRequestsTotal.WithLabelValues(area, r.Method, route, statusClass(rw.status)).Inc()
		httpRequestDuration.WithLabelValues(area, r.Method, route).Observe(time.Since(start).Seconds())
		httpResponseSize.WithLabelValues(area).Observe(float64(rw.bytes))
	})
}

func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
		return rc.RoutePattern()
	}
	return "unmatched"
}

// routeArea первый сегмент после /api: auth, stats, donor, ngo, volunteer.
func routeArea(route string) string {
	rest, ok := strings.CutPrefix(route, "/api/")
	if !ok {
		return "infra"
	}
	area, _, _ := strings.Cut(rest, "/")
	if area == "" {
		return "infra"
	}
	return area
}

func statusClass(status int) string {
	return strconv.Itoa(status/100) + "xx"
}
