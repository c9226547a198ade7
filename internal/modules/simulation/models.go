package simulation

import (
	"time"

	"github.com/aristath/plutus/internal/domain"
)

// Request holds the full parameter set for one projection run.
type Request struct {
	InitialInvestment float64                `json:"initial_investment"`
	MonthlyDeposit    float64                `json:"monthly_deposit"`
	Assets            []domain.Asset         `json:"assets"`
	RiskFree          domain.RiskFreeAccount `json:"risk_free"`
	TargetVolatility  float64                `json:"target_volatility"`
	DurationMonths    int                    `json:"duration_months"`
	Scenario          domain.Scenario        `json:"scenario"`
	Correlation       float64                `json:"correlation"`
}

// RunSummary condenses a simulated path into headline figures.
// RealizedVolatility is annualized from the path's monthly returns.
type RunSummary struct {
	FinalValue         float64 `json:"final_value"`
	Contributed        float64 `json:"contributed"`
	Gain               float64 `json:"gain"`
	MaxDrawdown        float64 `json:"max_drawdown"`
	MeanMonthlyReturn  float64 `json:"mean_monthly_return"`
	RealizedVolatility float64 `json:"realized_volatility"`
}

// Run is a persisted simulation: the request, its summary, and (when
// loaded individually) the full month-by-month history.
type Run struct {
	ID        int64                   `json:"id"`
	CreatedAt time.Time               `json:"created_at"`
	Request   Request                 `json:"request"`
	Summary   RunSummary              `json:"summary"`
	History   []domain.PortfolioState `json:"history,omitempty"`
}
