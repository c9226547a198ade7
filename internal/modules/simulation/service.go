package simulation

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/aristath/plutus/internal/domain"
	"github.com/aristath/plutus/internal/modules/allocation"
	"github.com/aristath/plutus/pkg/formulas"
	"github.com/aristath/plutus/pkg/random"
)

// Allocator is the slice of the allocation engine the simulation depends on.
type Allocator interface {
	Validate(assets []domain.Asset, riskFree domain.RiskFreeAccount, targetVolatility, correlation float64) error
	Calculate(totalAmount float64, assets []domain.Asset, riskFree domain.RiskFreeAccount, targetVolatility, correlation float64) (*allocation.Result, error)
}

// Service drives the month-by-month projection loop: stochastic growth of
// existing holdings, deposit injection, and a full rebalance through the
// allocation engine every month.
type Service struct {
	alloc Allocator
	log   zerolog.Logger
}

// NewService creates a new simulation service
func NewService(alloc Allocator, log zerolog.Logger) *Service {
	return &Service{
		alloc: alloc,
		log:   log.With().Str("service", "simulation").Logger(),
	}
}

// Simulate runs the projection and returns one PortfolioState per month,
// month 0 through req.DurationMonths. The returned sequence is fresh per
// call and never mutated afterwards.
//
// gen supplies the stochastic driver; pass a seeded source for reproducible
// paths. A nil gen gets a time-seeded source. Each call must own its
// generator; the engine never shares one across runs.
//
// Allocation failures inside the loop do not abort the run: they degrade to
// the documented fallbacks (month 0: everything risk-free; later months:
// keep grown holdings, park the remainder risk-free) so valid top-level
// inputs always produce a complete history.
func (s *Service) Simulate(req Request, gen random.Generator) ([]domain.PortfolioState, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	if gen == nil {
		gen = random.NewNormalSource()
	}

	holdings := make([]float64, len(req.Assets))
	riskFree := 0.0

	// Month 0: allocate the initial investment. A failed allocation parks
	// the whole amount in the risk-free account instead of aborting.
	if req.InitialInvestment > 0 {
		result, err := s.alloc.Calculate(req.InitialInvestment, req.Assets, req.RiskFree, req.TargetVolatility, req.Correlation)
		if err != nil {
			s.log.Warn().Err(err).Msg("Initial allocation failed, falling back to risk-free")
			riskFree = req.InitialInvestment
		} else {
			for i := range req.Assets {
				holdings[i] = result.Assets[i].Amount
			}
			riskFree = result.RiskFree.Amount
		}
	}

	contributed := req.InitialInvestment
	states := make([]domain.PortfolioState, 0, req.DurationMonths+1)
	states = append(states, record(0, req.Assets, holdings, riskFree, contributed))

	monthlyRiskFreeRate := req.RiskFree.InterestRate / formulas.MonthsPerYear

	for month := 1; month <= req.DurationMonths; month++ {
		// 1. Grow each holding by its stochastic monthly return.
		valueAfterGrowth := 0.0
		for i, asset := range req.Assets {
			mean := formulas.MonthlyReturn(asset.ExpectedReturn)
			vol := formulas.MonthlyVolatility(asset.Volatility)
			actual := monthlyReturn(req.Scenario, mean, vol, gen.Sample())
			holdings[i] *= 1 + actual
			valueAfterGrowth += holdings[i]
		}

		// 2. Compound the risk-free holding. Debt and credit share the
		// modeled rate.
		riskFree *= 1 + monthlyRiskFreeRate
		valueAfterGrowth += riskFree

		// 3. Inject the deposit.
		totalCapital := valueAfterGrowth + req.MonthlyDeposit
		contributed += req.MonthlyDeposit

		// 4. Full rebalance of the post-growth, post-deposit total.
		if totalCapital > 0 {
			result, err := s.alloc.Calculate(totalCapital, req.Assets, req.RiskFree, req.TargetVolatility, req.Correlation)
			if err != nil {
				// Keep grown holdings, park the remainder risk-free.
				// Preserves total value exactly while skipping the rebalance.
				s.log.Warn().Err(err).Int("month", month).Msg("Rebalance failed, keeping grown holdings")
				assetSum := 0.0
				for _, v := range holdings {
					assetSum += v
				}
				riskFree = totalCapital - assetSum
			} else {
				for i := range req.Assets {
					holdings[i] = result.Assets[i].Amount
				}
				riskFree = result.RiskFree.Amount
			}
		} else {
			// Wiped out or in net debt: the risk-free holding carries the
			// (possibly negative) total forward.
			for i := range holdings {
				holdings[i] = 0
			}
			riskFree = totalCapital
		}

		// 5. Rounding-error guard on risky holdings. The risk-free holding
		// is deliberately not clamped so debt can persist and compound.
		for i := range holdings {
			if holdings[i] < 0 {
				holdings[i] = 0
			}
		}

		states = append(states, record(month, req.Assets, holdings, riskFree, contributed))
	}

	return states, nil
}

// Summarize condenses a simulated path into headline statistics.
func Summarize(states []domain.PortfolioState) RunSummary {
	if len(states) == 0 {
		return RunSummary{}
	}

	totals := make([]float64, len(states))
	for i, st := range states {
		totals[i] = st.Total
	}

	last := states[len(states)-1]
	returns := formulas.CalculateReturns(totals)

	return RunSummary{
		FinalValue:         last.Total,
		Contributed:        last.Contributed,
		Gain:               formulas.Round2(last.Total - last.Contributed),
		MaxDrawdown:        formulas.MaxDrawdown(totals),
		MeanMonthlyReturn:  formulas.Mean(returns),
		RealizedVolatility: formulas.AnnualizedVolatility(returns),
	}
}

func (s *Service) validate(req Request) error {
	if req.InitialInvestment < 0 {
		return fmt.Errorf("%w: initial investment must be >= 0, got %v", allocation.ErrInvalidInput, req.InitialInvestment)
	}
	if req.MonthlyDeposit < 0 {
		return fmt.Errorf("%w: monthly deposit must be >= 0, got %v", allocation.ErrInvalidInput, req.MonthlyDeposit)
	}
	if req.DurationMonths < 0 {
		return fmt.Errorf("%w: duration must be >= 0 months, got %d", allocation.ErrInvalidInput, req.DurationMonths)
	}
	if !req.Scenario.Valid() {
		return fmt.Errorf("%w: unknown scenario %q", allocation.ErrInvalidInput, req.Scenario)
	}
	if err := s.alloc.Validate(req.Assets, req.RiskFree, req.TargetVolatility, req.Correlation); err != nil {
		return err
	}
	if len(req.Assets) == 0 && req.TargetVolatility != 0 {
		return fmt.Errorf("%w: no risky assets to generate volatility %v",
			allocation.ErrUnachievableVolatility, req.TargetVolatility)
	}
	return nil
}

// record snapshots the current holdings as a PortfolioState, rounding each
// recorded field to 2 decimal places. The working holdings stay unrounded.
func record(month int, assets []domain.Asset, holdings []float64, riskFree, contributed float64) domain.PortfolioState {
	hs := make([]domain.Holding, len(assets))
	total := 0.0
	for i, a := range assets {
		v := formulas.Round2(holdings[i])
		hs[i] = domain.Holding{Asset: a.Name, Value: v}
		total += v
	}

	rf := formulas.Round2(riskFree)
	total = formulas.Round2(total + rf)

	return domain.PortfolioState{
		Month:       month,
		Holdings:    hs,
		RiskFree:    rf,
		Total:       total,
		Contributed: formulas.Round2(contributed),
	}
}
