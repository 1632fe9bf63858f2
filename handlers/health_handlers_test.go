package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootMessage(t *testing.T) {
	tp := newTestPipeline(t)

	resp, err := tp.app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	payload := decodeJSON(t, resp)
	assert.Equal(t, "Hindi Cartoon Video Generator Backend", payload["message"])
}

func TestHelloMessage(t *testing.T) {
	tp := newTestPipeline(t)

	resp, err := tp.app.Test(httptest.NewRequest(http.MethodGet, "/api/hello", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	payload := decodeJSON(t, resp)
	assert.Equal(t, "Hello from the backend API!", payload["message"])
}
