package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T, capacity int) http.Handler {
	t.Helper()
	limiter := newRateLimiter(capacity, time.Minute, time.Now)
	return NewRouter(newTestRecipeHandler(), newTestContentHandler(t), limiter, zap.NewNop())
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(t, 5)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp healthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "Sourdough Simplified", resp.Site.Title)

	_, err := uuid.Parse(w.Header().Get(requestIDHeader))
	assert.NoError(t, err)
}

func TestRouter_KeepsClientRequestID(t *testing.T) {
	router := newTestRouter(t, 5)
	id := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/recipe/defaults", nil)
	req.Header.Set(requestIDHeader, id)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, id, w.Header().Get(requestIDHeader))
}

func TestRouter_CalculateIsRateLimited(t *testing.T) {
	router := newTestRouter(t, 2)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/recipe/calculate", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRouter_ContentIsNotRateLimited(t *testing.T) {
	router := newTestRouter(t, 1)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guide", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
