package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/replyguy/replyguy/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestHealthz(t *testing.T) {
	database := testutil.GetEmptyTestDB(t)
	h := NewHealthHandler(database)

	rec := httptest.NewRecorder()
	h.Healthz(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, database.Close())

	rec = httptest.NewRecorder()
	h.Healthz(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.JSONEq(t, `{"status":"unavailable"}`, rec.Body.String())
}
