package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aristath/plutus/internal/config"
	"github.com/aristath/plutus/internal/domain"
	"github.com/aristath/plutus/internal/modules/allocation"
	"github.com/aristath/plutus/internal/modules/charts"
	"github.com/aristath/plutus/internal/modules/simulation"
	"github.com/aristath/plutus/pkg/logger"
	"github.com/aristath/plutus/pkg/random"
)

// simulateCmd represents the simulate command
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Project portfolio growth month by month",
	Long: `Runs a Monte Carlo projection: each month a deposit arrives, the
portfolio is rebalanced to the target volatility, and every asset
earns a random return drawn for the chosen scenario.

Scenarios: best, average, worst.

Example:
  plutus simulate --initial 10000 --deposit 500 --months 240 \
    --target-vol 0.12 --scenario worst --seed 42 \
    --asset "World Equity:0.07:0.15" --risk-free "Savings:0.02" \
    --chart projection.png`,
	RunE: runSimulate,
}

var (
	// Simulate flags
	simInitial     float64
	simDeposit     float64
	simMonths      int
	simTargetVol   float64
	simCorrelation float64
	simScenario    string
	simSeed        int64
	simChartPath   string
	simFullHistory bool
)

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().Float64Var(&simInitial, "initial", 0, "initial investment")
	simulateCmd.Flags().Float64Var(&simDeposit, "deposit", 0, "monthly deposit")
	simulateCmd.Flags().IntVar(&simMonths, "months", 120, "projection duration in months")
	simulateCmd.Flags().Float64Var(&simTargetVol, "target-vol", 0, "target annual volatility (decimal)")
	simulateCmd.Flags().Float64Var(&simCorrelation, "correlation", domain.DefaultCorrelation, "pairwise asset correlation")
	simulateCmd.Flags().StringVar(&simScenario, "scenario", "average", "market scenario (best|average|worst)")
	simulateCmd.Flags().Int64Var(&simSeed, "seed", 0, "random seed for a reproducible path (0 = random)")
	simulateCmd.Flags().StringVar(&simChartPath, "chart", "", "write a PNG chart of the projection to this path")
	simulateCmd.Flags().BoolVar(&simFullHistory, "history", false, "include the full monthly history in the output")
	simulateCmd.MarkFlagRequired("target-vol")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level := "warn"
	if verbose {
		level = "debug"
	}
	log := logger.New(logger.Config{Level: level, Pretty: true})

	assets, err := parseAssets()
	if err != nil {
		return err
	}
	riskFree, err := parseRiskFree()
	if err != nil {
		return err
	}

	scenario, err := domain.ParseScenario(simScenario)
	if err != nil {
		return err
	}
	if simMonths > cfg.MaxDurationMonths {
		return fmt.Errorf("months %d exceeds maximum %d", simMonths, cfg.MaxDurationMonths)
	}

	allocService := allocation.NewService(allocation.Bounds{
		MinRiskFreeRate: cfg.MinRiskFreeRate,
		MaxRiskFreeRate: cfg.MaxRiskFreeRate,
	}, log)
	simService := simulation.NewService(allocService, log)

	req := simulation.Request{
		InitialInvestment: simInitial,
		MonthlyDeposit:    simDeposit,
		Assets:            assets,
		RiskFree:          riskFree,
		TargetVolatility:  simTargetVol,
		DurationMonths:    simMonths,
		Scenario:          scenario,
		Correlation:       simCorrelation,
	}

	var gen random.Generator
	if cmd.Flags().Changed("seed") {
		gen = random.NewSeededNormalSource(simSeed)
	}

	states, err := simService.Simulate(req, gen)
	if err != nil {
		return err
	}

	if simChartPath != "" {
		png, err := charts.RenderProjection(
			fmt.Sprintf("Projection • %d months • %s", simMonths, scenario), states)
		if err != nil {
			return err
		}
		if err := os.WriteFile(simChartPath, png, 0o644); err != nil {
			return fmt.Errorf("failed to write chart: %w", err)
		}
	}

	out := simulation.Run{
		Request: req,
		Summary: simulation.Summarize(states),
	}
	if simFullHistory {
		out.History = states
	}

	return printJSON(out)
}
