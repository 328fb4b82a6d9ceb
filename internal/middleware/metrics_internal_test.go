package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRouteArea(t *testing.T) {
	testCases := []struct {
		route string
		want  string
	}{
		{"/api/ngo/cart/items/{donation_id}", "ngo"},
		{"/api/volunteer/deliveries", "volunteer"},
		{"/api/auth/login", "auth"},
		{"/api/", "infra"},
		{"/health", "infra"},
		{"unmatched", "infra"},
	}

	for _, tc := range testCases {
		t.Run(tc.route, func(t *testing.T) {
			assert.Equal(t, tc.want, routeArea(tc.route))
		})
	}
}

func TestMetrics(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Route("/api", func(r chi.Router) {
		r.Put("/ngo/cart/items/{donation_id}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"message":"donation is no longer available"}`))
		})
	})
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {})

	route := "/api/ngo/cart/items/{donation_id}"
	counter := httpRequestsTotal.WithLabelValues("ngo", http.MethodPut, route, "4xx")
	before := testutil.ToFloat64(counter)

	for _, id := range []string{"d1", "d2"} {
		req := httptest.NewRequest(http.MethodPut, "/api/ngo/cart/items/"+id, nil)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, before+2, testutil.ToFloat64(counter))

	// собственные запросы /metrics не считаются
	scrapes := httpRequestsTotal.WithLabelValues("infra", http.MethodGet, "/metrics", "2xx")
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Zero(t, testutil.ToFloat64(scrapes))
}

func TestStatusClass(t *testing.T) {
	assert.Equal(t, "2xx", statusClass(http.StatusOK))
	assert.Equal(t, "4xx", statusClass(http.StatusNotFound))
	assert.Equal(t, "5xx", statusClass(http.StatusBadGateway))
}
