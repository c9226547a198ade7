package allocation

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/aristath/plutus/internal/domain"
	"github.com/aristath/plutus/pkg/formulas"
)

// Bounds constrains the accepted risk-free interest rate range.
type Bounds struct {
	MinRiskFreeRate float64
	MaxRiskFreeRate float64
}

// Service computes dollar allocations across risky assets and a risk-free
// account to hit a target portfolio volatility.
//
// Weighting heuristic: assets are weighted within the basket by their Sharpe
// ratios (normalized over positive ratios only), then the basket/risk-free
// split is scaled so the mixed portfolio's volatility matches the target.
// This is a weighting heuristic, not a full mean-variance optimizer.
type Service struct {
	bounds Bounds
	log    zerolog.Logger
}

// NewService creates a new allocation service
func NewService(bounds Bounds, log zerolog.Logger) *Service {
	return &Service{
		bounds: bounds,
		log:    log.With().Str("service", "allocation").Logger(),
	}
}

// Validate checks allocation inputs shared with the simulation engine.
// Each failure wraps ErrInvalidInput with a descriptive cause.
func (s *Service) Validate(
	assets []domain.Asset,
	riskFree domain.RiskFreeAccount,
	targetVolatility float64,
	correlation float64,
) error {
	seen := make(map[string]bool, len(assets))
	for i, a := range assets {
		if a.Name == "" {
			return fmt.Errorf("%w: asset %d has an empty name", ErrInvalidInput, i)
		}
		if seen[a.Name] {
			return fmt.Errorf("%w: duplicate asset name %q", ErrInvalidInput, a.Name)
		}
		seen[a.Name] = true
		if a.Volatility <= 0 {
			return fmt.Errorf("%w: asset %q volatility must be > 0, got %v", ErrInvalidInput, a.Name, a.Volatility)
		}
	}

	if riskFree.InterestRate < s.bounds.MinRiskFreeRate || riskFree.InterestRate > s.bounds.MaxRiskFreeRate {
		return fmt.Errorf("%w: risk-free rate %v outside [%v, %v]",
			ErrInvalidInput, riskFree.InterestRate, s.bounds.MinRiskFreeRate, s.bounds.MaxRiskFreeRate)
	}
	if targetVolatility < 0 {
		return fmt.Errorf("%w: target volatility must be >= 0, got %v", ErrInvalidInput, targetVolatility)
	}
	if correlation < -1 || correlation > 1 {
		return fmt.Errorf("%w: correlation must be in [-1, 1], got %v", ErrInvalidInput, correlation)
	}

	return nil
}

// Calculate computes the allocation of totalAmount across the given assets
// and risk-free account so the resulting portfolio volatility matches
// targetVolatility as closely as analytically possible.
//
// The basket weight may exceed 1.0 when the target exceeds the basket's own
// volatility; the risk-free remainder then goes negative, modeling borrowing.
func (s *Service) Calculate(
	totalAmount float64,
	assets []domain.Asset,
	riskFree domain.RiskFreeAccount,
	targetVolatility float64,
	correlation float64,
) (*Result, error) {
	if totalAmount < 0 {
		return nil, fmt.Errorf("%w: total amount must be >= 0, got %v", ErrInvalidInput, totalAmount)
	}
	if err := s.Validate(assets, riskFree, targetVolatility, correlation); err != nil {
		return nil, err
	}

	if len(assets) == 0 {
		return s.allocateAllRiskFree(totalAmount, riskFree, targetVolatility, correlation)
	}

	weights, err := s.basketWeights(assets, riskFree.InterestRate)
	if err != nil {
		return nil, err
	}

	returns := make([]float64, len(assets))
	vols := make([]float64, len(assets))
	for i, a := range assets {
		returns[i] = a.ExpectedReturn
		vols[i] = a.Volatility
	}

	basketReturn := formulas.WeightedReturn(weights, returns)
	basketVol := formulas.BasketVolatility(weights, vols, correlation)
	basketSharpe := formulas.SharpeRatio(basketReturn, riskFree.InterestRate, basketVol)

	var basketWeight float64
	switch {
	case basketVol > 0:
		// Exceeds 1.0 when the target exceeds the basket's own
		// volatility. That is leverage, not an error.
		basketWeight = targetVolatility / basketVol
	case targetVolatility != 0:
		return nil, fmt.Errorf("%w: basket volatility is zero, cannot hit target %v",
			ErrUnachievableVolatility, targetVolatility)
	case basketReturn > riskFree.InterestRate:
		basketWeight = 1
	default:
		basketWeight = 0
	}

	basketAmount := totalAmount * basketWeight

	assetAllocs := make([]AssetAllocation, len(assets))
	for i, a := range assets {
		assetAllocs[i] = AssetAllocation{
			Name:            a.Name,
			Amount:          basketAmount * weights[i],
			BasketWeightPct: formulas.Round2(weights[i] * 100),
			TotalWeightPct:  formulas.Round2(basketWeight * weights[i] * 100),
		}
	}

	result := &Result{
		TotalAmount:      totalAmount,
		TargetVolatility: targetVolatility,
		Correlation:      correlation,
		BasketWeightPct:  formulas.Round2(basketWeight * 100),
		Assets:           assetAllocs,
		RiskFree: RiskFreeAllocation{
			Name:           riskFree.Name,
			Amount:         totalAmount - basketAmount,
			TotalWeightPct: formulas.Round2((1 - basketWeight) * 100),
		},
		Basket: BasketStats{
			ExpectedReturn: basketReturn,
			Volatility:     basketVol,
			SharpeRatio:    finiteOrNil(basketSharpe),
		},
	}

	s.log.Debug().
		Float64("total", totalAmount).
		Float64("target_volatility", targetVolatility).
		Float64("basket_volatility", basketVol).
		Float64("basket_weight", basketWeight).
		Msg("Allocation computed")

	return result, nil
}

// basketWeights derives intra-basket weights from Sharpe ratios, normalized
// over the sum of positive ratios only. When no asset has a positive ratio
// the basket falls back to equal weighting.
func (s *Service) basketWeights(assets []domain.Asset, riskFreeRate float64) ([]float64, error) {
	ratios := make([]float64, len(assets))
	sumPositive := 0.0
	hasPositive := false
	for i, a := range assets {
		ratios[i] = formulas.SharpeRatio(a.ExpectedReturn, riskFreeRate, a.Volatility)
		if ratios[i] > 0 {
			hasPositive = true
			sumPositive += ratios[i]
		}
	}

	weights := make([]float64, len(assets))
	switch {
	case sumPositive > 0:
		for i, r := range ratios {
			if r > 0 {
				weights[i] = r / sumPositive
			}
		}
	case hasPositive:
		// Positive ratios summing to exactly zero can only happen through
		// floating underflow; there is no way to normalize.
		return nil, fmt.Errorf("%w: positive ratios sum to zero", ErrDegenerateSharpeWeights)
	default:
		equal := 1.0 / float64(len(assets))
		for i := range weights {
			weights[i] = equal
		}
	}

	return weights, nil
}

// allocateAllRiskFree handles the zero-asset case: the entire amount goes to
// the risk-free account, which requires a zero volatility target.
func (s *Service) allocateAllRiskFree(
	totalAmount float64,
	riskFree domain.RiskFreeAccount,
	targetVolatility float64,
	correlation float64,
) (*Result, error) {
	if targetVolatility != 0 {
		return nil, fmt.Errorf("%w: no risky assets to generate volatility %v",
			ErrUnachievableVolatility, targetVolatility)
	}

	riskFreePct := 0.0
	if totalAmount > 0 {
		riskFreePct = 100.0
	}

	return &Result{
		TotalAmount:      totalAmount,
		TargetVolatility: targetVolatility,
		Correlation:      correlation,
		BasketWeightPct:  0,
		Assets:           []AssetAllocation{},
		RiskFree: RiskFreeAllocation{
			Name:           riskFree.Name,
			Amount:         totalAmount,
			TotalWeightPct: riskFreePct,
		},
	}, nil
}

func finiteOrNil(x float64) *float64 {
	if math.IsInf(x, 0) {
		return nil
	}
	return &x
}
