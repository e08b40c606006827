package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_IndependentRegistries(t *testing.T) {
	a, b := New(), New()
	a.RecordCommit()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.commits))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.commits))
}

func TestRecordGeneration(t *testing.T) {
	m := New()

	m.RecordGeneration(OutcomeOK, 3)
	m.RecordGeneration(OutcomeOK, 5)
	m.RecordGeneration(OutcomeFailed, 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.captionGenerations.WithLabelValues(OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.captionGenerations.WithLabelValues(OutcomeFailed)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.captionCandidates))
}

func TestRecordCounters(t *testing.T) {
	m := New()

	m.RecordNoisyAttempt(OutcomeDuplicate)
	m.RecordTranslation("fr", OutcomeOK)
	m.RecordTranslation("xx", OutcomeFailed)
	m.RecordAuth("login", OutcomeRejected)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.noisyAttempts.WithLabelValues(OutcomeDuplicate)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.translations.WithLabelValues("fr", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.translations.WithLabelValues("xx", OutcomeFailed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.authAttempts.WithLabelValues("login", OutcomeRejected)))
}

func TestHandler_ExposesRegisteredMetrics(t *testing.T) {
	m := New()
	m.RecordHTTPRequest(http.MethodGet, "/api/version", "200", 10*time.Millisecond)
	m.RegisterSessionGauge(func() int { return 7 })

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `captioner_http_requests_total{method="GET",route="/api/version",status_code="200"} 1`)
	assert.Contains(t, string(body), "captioner_sessions_active 7")
}
