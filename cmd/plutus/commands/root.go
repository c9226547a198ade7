package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aristath/plutus/internal/domain"
)

var (
	// Global flags
	assetSpecs  []string
	riskFreeTag string
	verbose     bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "plutus",
	Short: "Plutus - portfolio allocation and Monte Carlo projection",
	Long: `Plutus CLI

Computes Sharpe-weighted allocations across risky assets and a risk-free
account, and projects portfolio growth month by month under configurable
market scenarios.

Assets are given as NAME:RETURN:VOLATILITY with annual decimal rates,
the risk-free account as NAME:RATE.

Examples:
  plutus allocate --amount 10000 --target-vol 0.10 \
    --asset "World Equity:0.07:0.15" --asset "Bonds:0.03:0.05" \
    --risk-free "Savings:0.02"

  plutus simulate --initial 10000 --deposit 500 --months 240 \
    --target-vol 0.12 --scenario worst --seed 42 \
    --asset "World Equity:0.07:0.15" --risk-free "Savings:0.02"`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringArrayVar(&assetSpecs, "asset", nil, "risky asset as NAME:RETURN:VOLATILITY (repeatable)")
	rootCmd.PersistentFlags().StringVar(&riskFreeTag, "risk-free", "Cash:0.0", "risk-free account as NAME:RATE")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func parseAssets() ([]domain.Asset, error) {
	assets := make([]domain.Asset, 0, len(assetSpecs))
	for _, spec := range assetSpecs {
		parts := strings.Split(spec, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid asset %q, expected NAME:RETURN:VOLATILITY", spec)
		}
		ret, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid return in asset %q: %w", spec, err)
		}
		vol, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid volatility in asset %q: %w", spec, err)
		}
		assets = append(assets, domain.Asset{Name: parts[0], ExpectedReturn: ret, Volatility: vol})
	}
	return assets, nil
}

func parseRiskFree() (domain.RiskFreeAccount, error) {
	parts := strings.Split(riskFreeTag, ":")
	if len(parts) != 2 {
		return domain.RiskFreeAccount{}, fmt.Errorf("invalid risk-free account %q, expected NAME:RATE", riskFreeTag)
	}
	rate, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return domain.RiskFreeAccount{}, fmt.Errorf("invalid rate in risk-free account %q: %w", riskFreeTag, err)
	}
	return domain.RiskFreeAccount{Name: parts[0], InterestRate: rate}, nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
