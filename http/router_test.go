package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter_SaveAndFetchAssessment(t *testing.T) {
	limiter, stop := newTestLimiter(t, 10)
	defer stop()
	router := NewRouter(limiter, newTestAffordabilityHandler(t), newTestLoanHandler(), newTestTermHandler())

	req := httptest.NewRequest(http.MethodPost, "/mortgage/affordability?save=true", strings.NewReader(exampleProfileJSON))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var saved assessmentResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&saved))
	require.NotEmpty(t, saved.AssessmentID)

	req = httptest.NewRequest(http.MethodGet, "/mortgage/assessments/"+saved.AssessmentID, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var record struct {
		ID          string  `json:"id"`
		PPScore     int     `json:"ppScore"`
		TargetPrice float64 `json:"targetPrice"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&record))
	assert.Equal(t, saved.AssessmentID, record.ID)
	assert.Equal(t, 86, record.PPScore)
	assert.InDelta(t, 377_797.09, record.TargetPrice, 0.5)
}

func TestRouter_AssessmentNotFound(t *testing.T) {
	limiter, stop := newTestLimiter(t, 10)
	defer stop()
	router := NewRouter(limiter, newTestAffordabilityHandler(t), newTestLoanHandler(), newTestTermHandler())

	for _, id := range []string{"unknown", "5f0c6f5e-7d2b-4a43-9d0b-3f1f3b6a2c11"} {
		req := httptest.NewRequest(http.MethodGet, "/mortgage/assessments/"+id, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code, id)
	}
}

func TestRouter_RateLimited(t *testing.T) {
	limiter, stop := newTestLimiter(t, 1)
	defer stop()
	router := NewRouter(limiter, newTestAffordabilityHandler(t), newTestLoanHandler(), newTestTermHandler())

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/loan/calculate",
			strings.NewReader(`{"amount": 1200, "interestRate": 0, "termMonths": 12}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, send().Code)

	w := send()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestRouter_HealthAndMetricsAreNotLimited(t *testing.T) {
	limiter, stop := newTestLimiter(t, 1)
	defer stop()
	router := NewRouter(limiter, newTestAffordabilityHandler(t), newTestLoanHandler(), newTestTermHandler())

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
