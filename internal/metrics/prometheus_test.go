package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveStage(t *testing.T) {
	m := NewMetrics()

	m.ObserveStage("notes", time.Second, nil)
	m.ObserveStage("notes", time.Second, errors.New("quota"))
	m.ObserveStage("render", time.Millisecond, nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.StageFailures.WithLabelValues("notes")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.StageFailures.WithLabelValues("render")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.StageDuration))
}

func TestObserveRequest(t *testing.T) {
	m := NewMetrics()

	m.ObserveRequest("POST", "/process_audio", "200", 2*time.Second)
	m.ObserveRequest("POST", "/process_audio", "500", time.Second)
	m.ObserveRequest("POST", "/process_audio", "200", time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("POST", "/process_audio", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("POST", "/process_audio", "500")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := NewMetrics()
	m.ObserveStage("save", time.Millisecond, nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "voicenotes_stage_duration_seconds"))
}

func TestInstancesAreIndependent(t *testing.T) {
	a, b := NewMetrics(), NewMetrics()
	a.ObserveStage("read", time.Millisecond, errors.New("x"))

	assert.Equal(t, 0.0, testutil.ToFloat64(b.StageFailures.WithLabelValues("read")))
}

func TestRecordInbox(t *testing.T) {
	m := NewMetrics()
	m.RecordInbox("converted")
	m.RecordInbox("failed")
	m.RecordInbox("converted")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.InboxProcessed.WithLabelValues("converted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.InboxProcessed.WithLabelValues("failed")))
}
