package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/2beens/postclient/internal/telemetry/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestMetrics(t *testing.T) {
	metricsManager, reg := metrics.NewTestManagerAndRegistry()
	handler := RequestMetrics(metricsManager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("{}"))
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/posts/", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/posts/1", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPut, "/posts/9", nil))

	assert.Equal(t, float64(2), testutil.ToFloat64(metricsManager.CounterServedRequests.WithLabelValues("GET", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metricsManager.CounterServedRequests.WithLabelValues("PUT", "404")))

	count, err := testutil.GatherAndCount(reg, "postclient_test_serve_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDrainAndCloseRequest(t *testing.T) {
	body := io.NopCloser(strings.NewReader(`{"title":"left unread"}`))
	req := httptest.NewRequest(http.MethodPost, "/posts/", body)

	called := false
	DrainAndCloseRequest()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	})).ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, called)
	rest, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Empty(t, rest)
}
