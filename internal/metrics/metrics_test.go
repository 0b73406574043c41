package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New()
	m.Query("shelf.create", nil)
	m.Query("shelf.create", errors.New("boom"))
	m.Query("shelf.create", errors.New("boom"))
	m.Swallowed("pantry", "add")
	m.Moved(3)
	m.Moved(0)

	require.Equal(t, 1.0, testutil.ToFloat64(m.queries.WithLabelValues("shelf.create", "ok")))
	require.Equal(t, 2.0, testutil.ToFloat64(m.queries.WithLabelValues("shelf.create", "error")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.swallowed.WithLabelValues("pantry", "add")))
	require.Equal(t, 3.0, testutil.ToFloat64(m.moved))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.Query("x", nil)
	m.Swallowed("a", "b")
	m.Moved(1)
}

func TestHandlerServesRegistry(t *testing.T) {
	m := New()
	m.Swallowed("cookbook", "favorite")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.Contains(rec.Body.String(), "pantrypal_swallowed_errors_total"))
}
