package observability

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	s := NewServer(0)
	s.started = time.Now()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.healthHandler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.NotEmpty(t, body["uptime"])
}

func TestMetricsHandler(t *testing.T) {
	InitMetrics()
	RecordRouted("task")
	RecordToolCall("add", "success", time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	MetricsHandler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "roundtable_messages_routed_total")
}

func TestParseHeaders(t *testing.T) {
	assert.Empty(t, parseHeaders(""))
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, parseHeaders("a=1,b=2"))
	assert.Equal(t, map[string]string{"key": "v=1"}, parseHeaders("key=v=1"),
		"values may themselves contain an equals sign")
}

func TestShutdownWithoutInit(t *testing.T) {
	assert.NoError(t, NewServer(0).Shutdown(t.Context()))
	assert.NoError(t, ShutdownTracing(t.Context()))
}
