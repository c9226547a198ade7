package allocation

import "github.com/aristath/plutus/internal/domain"

// Request is the wire form of an allocation call. Correlation is optional
// and defaults to domain.DefaultCorrelation when omitted.
type Request struct {
	TotalAmount      float64                `json:"total_amount"`
	Assets           []domain.Asset         `json:"assets"`
	RiskFree         domain.RiskFreeAccount `json:"risk_free"`
	TargetVolatility float64                `json:"target_volatility"`
	Correlation      *float64               `json:"correlation,omitempty"`
}

// AssetAllocation is the dollar and weight allocation for one risky asset.
// Weight fields are on a 0-100 scale.
type AssetAllocation struct {
	Name            string  `json:"name"`
	Amount          float64 `json:"amount"`
	BasketWeightPct float64 `json:"basket_weight_pct"` // Weight within the risky basket
	TotalWeightPct  float64 `json:"total_weight_pct"`  // Weight within the whole portfolio
}

// RiskFreeAllocation is the allocation to the risk-free account.
// The weight may be negative, modeling borrowing to lever the basket.
type RiskFreeAllocation struct {
	Name           string  `json:"name"`
	Amount         float64 `json:"amount"`
	TotalWeightPct float64 `json:"total_weight_pct"`
}

// BasketStats describes the combined risky basket prior to mixing with the
// risk-free account. SharpeRatio is nil when the basket has zero volatility
// and non-zero excess return (mathematically ±Inf, not representable in JSON).
type BasketStats struct {
	ExpectedReturn float64  `json:"expected_return"`
	Volatility     float64  `json:"volatility"`
	SharpeRatio    *float64 `json:"sharpe_ratio,omitempty"`
}

// Result is the full allocation output: per-asset dollar amounts, the
// risk-free remainder, basket-level statistics, and the echoed inputs.
type Result struct {
	TotalAmount      float64            `json:"total_amount"`
	TargetVolatility float64            `json:"target_volatility"`
	Correlation      float64            `json:"correlation"`
	BasketWeightPct  float64            `json:"basket_weight_pct"` // May exceed 100 (leverage)
	Assets           []AssetAllocation  `json:"assets"`
	RiskFree         RiskFreeAllocation `json:"risk_free"`
	Basket           BasketStats        `json:"basket"`
}
