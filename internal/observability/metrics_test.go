package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordScenarioRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics("test", reg)

	m.RecordScenarioRun("STANDARD_NORMAL", OutcomeCompleted, 20*time.Millisecond)
	m.RecordScenarioRun("STANDARD_NORMAL", OutcomeCompleted, 30*time.Millisecond)
	m.RecordScenarioRun("EXTREME_LOW_IDEAL", OutcomeSkipped, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ScenarioRunsTotal.WithLabelValues("STANDARD_NORMAL", OutcomeCompleted)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ScenarioRunsTotal.WithLabelValues("EXTREME_LOW_IDEAL", OutcomeSkipped)))
}

func TestMetrics_RecordSynthesis(t *testing.T) {
	m := NewMetrics("test", prometheus.NewRegistry())

	m.RecordSynthesis(5475, 12, 700)

	assert.Equal(t, 5475.0, testutil.ToFloat64(m.ReadingsSynthesized))
	assert.Equal(t, 12.0, testutil.ToFloat64(m.FailureEventsGenerated))
	assert.Equal(t, 700.0, testutil.ToFloat64(m.ReadingsLabeled))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordScenarioRun("x", OutcomeFailed, time.Second)
		m.RecordScenarioResult("x", 1, 2)
		m.RecordSynthesis(1, 2, 3)
		m.RecordAssessment(true)
		m.RecordWorkOrder()
		m.RecordHTTPRequest("/", "200", time.Millisecond)
	})
}

func TestHandler_ExposesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics("", reg)
	m.RecordWorkOrder()
	m.RecordAssessment(false)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "cip_engine_dashboard_work_orders_total 1"))
	assert.True(t, strings.Contains(body, `cip_engine_dashboard_assessments_total{crossed="false"} 1`))
}
