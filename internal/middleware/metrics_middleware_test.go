package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"vente-backend/internal/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// Requests to parameterized routes must all land in the series for the
// route template, not one series per id.
func TestMetricsMiddlewareRouteTemplateLabel(t *testing.T) {
	r := mux.NewRouter()
	r.Use(MetricsMiddleware)
	r.HandleFunc("/api/orders/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")

	for _, id := range []int{1, 2, 3} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest("GET", fmt.Sprintf("/api/orders/%d", id), nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status %d", id, rec.Code)
		}
	}

	got := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/api/orders/{id}", "200"))
	if got < 3 {
		t.Errorf("template series count = %v, want at least 3", got)
	}
	concrete := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/api/orders/1", "200"))
	if concrete != 0 {
		t.Errorf("concrete path series count = %v, want 0", concrete)
	}
}

func TestMetricsMiddlewareCapturesStatus(t *testing.T) {
	r := mux.NewRouter()
	r.Use(MetricsMiddleware)
	r.HandleFunc("/api/orders", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}).Methods("POST")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("POST", "/api/orders", nil))

	got := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("POST", "/api/orders", "201"))
	if got < 1 {
		t.Errorf("created series count = %v, want at least 1", got)
	}
}
