package domain

import (
	"fmt"
	"strings"
)

// DefaultCorrelation is the shared pairwise correlation assumed between
// risky assets when a caller doesn't supply one.
const DefaultCorrelation = 0.6

// Asset represents a risky asset in the simulated portfolio.
// Immutable per simulation run.
type Asset struct {
	Name           string  `json:"name"`
	ExpectedReturn float64 `json:"expected_return"` // Annual geometric mean, decimal (0.07 = 7%)
	Volatility     float64 `json:"volatility"`      // Annual standard deviation, decimal, > 0
}

// RiskFreeAccount represents the risk-free leg of the portfolio.
type RiskFreeAccount struct {
	Name         string  `json:"name"`
	InterestRate float64 `json:"interest_rate"` // Annual, decimal
}

// Scenario selects the bias profile applied to simulated monthly returns.
type Scenario string

const (
	ScenarioBest    Scenario = "best"
	ScenarioAverage Scenario = "average"
	ScenarioWorst   Scenario = "worst"
)

// ParseScenario parses a scenario name, case-insensitively.
// An empty string maps to ScenarioAverage.
func ParseScenario(s string) (Scenario, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(ScenarioAverage):
		return ScenarioAverage, nil
	case string(ScenarioBest):
		return ScenarioBest, nil
	case string(ScenarioWorst):
		return ScenarioWorst, nil
	default:
		return "", fmt.Errorf("unknown scenario %q", s)
	}
}

// Valid reports whether the scenario is one of the three known profiles.
func (s Scenario) Valid() bool {
	return s == ScenarioBest || s == ScenarioAverage || s == ScenarioWorst
}

// Holding is one asset's dollar value within a recorded portfolio state.
// Holdings keep the declaration order of the request's assets so output
// field ordering is deterministic.
type Holding struct {
	Asset string  `json:"asset"`
	Value float64 `json:"value"`
}

// PortfolioState is the portfolio snapshot recorded for one simulated month.
// A simulation produces one state per month, index = month number starting
// at 0; the sequence is read-only output and never mutated in place.
type PortfolioState struct {
	Month       int       `json:"month"`
	Holdings    []Holding `json:"holdings"`
	RiskFree    float64   `json:"risk_free"`
	Total       float64   `json:"total"`       // Sum of all holdings incl. risk-free
	Contributed float64   `json:"contributed"` // Cumulative capital invested to date
}

// HoldingValue returns the recorded value for the named asset, or 0 when
// the asset isn't part of the state.
func (p PortfolioState) HoldingValue(asset string) float64 {
	for _, h := range p.Holdings {
		if h.Asset == asset {
			return h.Value
		}
	}
	return 0
}
