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

type assessmentResponse struct {
	PPScore      int    `json:"ppScore"`
	AssessmentID string `json:"assessmentId"`
	Scenarios    []struct {
		Name     string  `json:"name"`
		MaxPrice float64 `json:"maxPrice"`
	} `json:"scenarios"`
	LoanTracks      []json.RawMessage `json:"loanTracks"`
	Recommendations []json.RawMessage `json:"recommendations"`
}

func TestAssessHandler_OK(t *testing.T) {
	handler := newTestAffordabilityHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/mortgage/affordability", strings.NewReader(exampleProfileJSON))
	w := httptest.NewRecorder()

	handler.Assess(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp assessmentResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	assert.Equal(t, 86, resp.PPScore)
	assert.Empty(t, resp.AssessmentID)
	require.Len(t, resp.Scenarios, 3)
	assert.Equal(t, "Target", resp.Scenarios[1].Name)
	assert.InDelta(t, 377_797.09, resp.Scenarios[1].MaxPrice, 0.5)
	assert.Len(t, resp.LoanTracks, 2)
	assert.NotEmpty(t, resp.Recommendations)
}

func TestScoreHandler_OmitsTracksAndRecommendations(t *testing.T) {
	handler := newTestAffordabilityHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/mortgage/score", strings.NewReader(exampleProfileJSON))
	w := httptest.NewRecorder()

	handler.Score(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp assessmentResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	assert.Equal(t, 86, resp.PPScore)
	assert.NotNil(t, resp.LoanTracks)
	assert.Empty(t, resp.LoanTracks)
	assert.Empty(t, resp.Recommendations)
}

func TestAssessHandler_RejectsBadBodies(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"annualIncome":`},
		{"flag is not a boolean", `{"bankruptcy": "yes"}`},
		{"numeric field is an object", `{"annualIncome": {"amount": 1}}`},
		{"not an object", `[1, 2, 3]`},
	}
	handler := newTestAffordabilityHandler(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/mortgage/affordability", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.Assess(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "invalid request body")
		})
	}
}

func TestAssessHandler_AcceptsEmptyProfile(t *testing.T) {
	handler := newTestAffordabilityHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/mortgage/affordability", strings.NewReader(`{}`))
	w := httptest.NewRecorder()

	handler.Assess(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp assessmentResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	for _, s := range resp.Scenarios {
		assert.Zero(t, s.MaxPrice)
	}
}

func TestAssessHandler_MethodNotAllowed(t *testing.T) {
	handler := newTestAffordabilityHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/mortgage/affordability", nil)
	w := httptest.NewRecorder()

	handler.Assess(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestProfileSchema_CoversEveryField(t *testing.T) {
	props := profileSchema()["properties"].(map[string]any)

	assert.Equal(t, map[string]any{"type": "boolean"}, props["bankruptcy"])
	assert.Equal(t, map[string]any{"type": []string{"string", "number", "null"}}, props["annualIncome"])
	assert.Equal(t, map[string]any{"type": []string{"string", "null"}}, props["creditScore"])
}
