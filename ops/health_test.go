package ops_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/c360studio/owl2store/ops"
	"github.com/stretchr/testify/require"
)

func TestHealthStartsNotReady(t *testing.T) {
	h := ops.NewHealth()
	require.False(t, h.Snapshot().Ready)
}

func TestHealthReadyAfterSetReady(t *testing.T) {
	h := ops.NewHealth()
	h.SetReady(true)
	require.True(t, h.Snapshot().Ready)
}

func TestHealthNotReadyWhileRebuilding(t *testing.T) {
	h := ops.NewHealth()
	h.SetReady(true)
	h.SetRebuilding(true)
	require.False(t, h.Snapshot().Ready)
	require.True(t, h.Snapshot().Rebuilding)

	h.SetRebuilding(false)
	require.True(t, h.Snapshot().Ready)
}

func TestHealthServeHTTPReflectsReadiness(t *testing.T) {
	h := ops.NewHealth()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	h.SetReady(true)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHealthSetLastErrorAppearsInSnapshot(t *testing.T) {
	h := ops.NewHealth()
	h.SetLastError("index rebuild failed")
	require.Equal(t, "index rebuild failed", h.Snapshot().LastError)

	h.SetLastError("")
	require.Empty(t, h.Snapshot().LastError)
}
