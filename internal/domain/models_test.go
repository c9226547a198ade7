package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseScenario(t *testing.T) {
	tests := []struct {
		input    string
		expected Scenario
		wantErr  bool
	}{
		{"best", ScenarioBest, false},
		{"AVERAGE", ScenarioAverage, false},
		{" Worst ", ScenarioWorst, false},
		{"", ScenarioAverage, false},
		{"optimistic", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseScenario(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestScenarioValid(t *testing.T) {
	assert.True(t, ScenarioBest.Valid())
	assert.True(t, ScenarioAverage.Valid())
	assert.True(t, ScenarioWorst.Valid())
	assert.False(t, Scenario("bull").Valid())
}

func TestHoldingValue(t *testing.T) {
	state := PortfolioState{
		Holdings: []Holding{
			{Asset: "Global Equity", Value: 600},
			{Asset: "Tech", Value: 400},
		},
	}

	assert.Equal(t, 600.0, state.HoldingValue("Global Equity"))
	assert.Equal(t, 0.0, state.HoldingValue("Bonds"))
}
