package allocation

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() *Handler {
	return NewHandler(newTestService(), 0.6, zerolog.Nop())
}

func TestHandleCalculate(t *testing.T) {
	h := newTestHandler()

	body := `{
		"total_amount": 10000,
		"assets": [
			{"name": "Global Equity", "expected_return": 0.07, "volatility": 0.15},
			{"name": "Tech", "expected_return": 0.10, "volatility": 0.25}
		],
		"risk_free": {"name": "Savings", "interest_rate": 0.03},
		"target_volatility": 0.10
	}`

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.HandleCalculate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	// Omitted correlation falls back to the default.
	assert.Equal(t, 0.6, result.Correlation)
	assert.Len(t, result.Assets, 2)
	assert.Equal(t, 10000.0, result.TotalAmount)
}

func TestHandleCalculateExplicitCorrelation(t *testing.T) {
	h := newTestHandler()

	body := `{
		"total_amount": 1000,
		"assets": [{"name": "Equity", "expected_return": 0.07, "volatility": 0.15}],
		"risk_free": {"name": "Savings", "interest_rate": 0.03},
		"target_volatility": 0.10,
		"correlation": 0.2
	}`

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.HandleCalculate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 0.2, result.Correlation)
}

func TestHandleCalculateErrors(t *testing.T) {
	h := newTestHandler()

	tests := []struct {
		name     string
		body     string
		expected int
	}{
		{"malformed json", `{`, http.StatusBadRequest},
		{
			"negative amount",
			`{"total_amount": -5, "assets": [], "risk_free": {"name": "S", "interest_rate": 0.03}, "target_volatility": 0}`,
			http.StatusBadRequest,
		},
		{
			"unachievable target",
			`{"total_amount": 100, "assets": [], "risk_free": {"name": "S", "interest_rate": 0.03}, "target_volatility": 0.2}`,
			http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			h.HandleCalculate(rec, req)
			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}
