package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatastoreDiagnosticUnconfigured(t *testing.T) {
	t.Setenv("SUPABASE_URL", "")
	tp := newTestPipeline(t)

	resp, err := tp.app.Test(httptest.NewRequest(http.MethodGet, "/test", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	payload := decodeJSON(t, resp)
	assert.Equal(t, "success", payload["status"])

	data, ok := payload["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "running", data["backend"])
	assert.Equal(t, "not available", data["database"])
	assert.Equal(t, "not set", data["database_url"])
	assert.Equal(t, "not connected", data["connection_status"])
	assert.Empty(t, data["buckets"])
}

func TestDatastoreDiagnosticReportsConfiguredURL(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://example.supabase.co")
	tp := newTestPipeline(t)

	resp, err := tp.app.Test(httptest.NewRequest(http.MethodGet, "/test", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	payload := decodeJSON(t, resp)
	data, ok := payload["data"].(map[string]interface{})
	require.True(t, ok)

	// URL present but no client: configured yet still unavailable.
	assert.Equal(t, "configured", data["database_url"])
	assert.Equal(t, "not available", data["database"])
}
