package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_IndependentRegistries(t *testing.T) {
	// Dos instancias no deben colisionar (un router por test).
	a := New()
	b := New()

	a.CowsRegistered.Inc()
	a.AuthFailures.WithLabelValues("invalid_token").Inc()

	assert.Equal(t, float64(1), testutil.ToFloat64(a.CowsRegistered))
	assert.Equal(t, float64(0), testutil.ToFloat64(b.CowsRegistered))
	assert.Equal(t, float64(1), testutil.ToFloat64(a.AuthFailures.WithLabelValues("invalid_token")))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	m := New()
	m.RegionDenials.Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), "cowinspect_region_denials_total 1")
}
