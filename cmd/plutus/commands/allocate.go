package commands

import (
	"github.com/spf13/cobra"

	"github.com/aristath/plutus/internal/config"
	"github.com/aristath/plutus/internal/domain"
	"github.com/aristath/plutus/internal/modules/allocation"
	"github.com/aristath/plutus/pkg/logger"
)

// allocateCmd represents the allocate command
var allocateCmd = &cobra.Command{
	Use:   "allocate",
	Short: "Compute a Sharpe-weighted allocation for a lump sum",
	Long: `Allocates an amount across risky assets and the risk-free account so
the portfolio volatility matches the target. Asset weights follow
Sharpe ratios; assets with non-positive excess return get nothing.

Example:
  plutus allocate --amount 10000 --target-vol 0.10 \
    --asset "World Equity:0.07:0.15" --asset "Bonds:0.03:0.05" \
    --risk-free "Savings:0.02"`,
	RunE: runAllocate,
}

var (
	// Allocate flags
	allocateAmount      float64
	allocateTargetVol   float64
	allocateCorrelation float64
)

func init() {
	rootCmd.AddCommand(allocateCmd)

	allocateCmd.Flags().Float64Var(&allocateAmount, "amount", 0, "total amount to allocate")
	allocateCmd.Flags().Float64Var(&allocateTargetVol, "target-vol", 0, "target annual volatility (decimal)")
	allocateCmd.Flags().Float64Var(&allocateCorrelation, "correlation", domain.DefaultCorrelation, "pairwise asset correlation")
	allocateCmd.MarkFlagRequired("amount")
	allocateCmd.MarkFlagRequired("target-vol")
}

func runAllocate(cmd *cobra.Command, args []string) error {
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

	svc := allocation.NewService(allocation.Bounds{
		MinRiskFreeRate: cfg.MinRiskFreeRate,
		MaxRiskFreeRate: cfg.MaxRiskFreeRate,
	}, log)

	result, err := svc.Calculate(allocateAmount, assets, riskFree, allocateTargetVol, allocateCorrelation)
	if err != nil {
		return err
	}

	return printJSON(result)
}
