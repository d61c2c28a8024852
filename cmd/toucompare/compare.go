package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jgoulah/toucompare/internal/calculator"
	"github.com/jgoulah/toucompare/internal/config"
	"github.com/jgoulah/toucompare/internal/ingest"
	"github.com/jgoulah/toucompare/internal/tou"
)

var (
	compareRate     string
	compareLocation string
	compareOffRate  string
	compareMidRate  string
	comparePeakRate string
)

var compareCmd = &cobra.Command{
	Use:   "compare [usage.csv]",
	Short: "Compare your current flat rate against a TOU schedule",
	Long: `Reads a usage CSV export and reports what the same usage would have cost
under time-of-use rates.

TOU rates come from either --tou-location (built-in rates for that service
area) or all three of --off-peak-rate, --mid-peak-rate, and --peak-rate.
Specify the rates manually if SCL has changed them since this tool was built.`,
	Args: cobra.ExactArgs(1),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVarP(&compareRate, "rate", "r", "", "Current flat rate in dollars per kWh (from your bill)")
	compareCmd.Flags().StringVarP(&compareLocation, "tou-location", "l", "",
		"Service area for built-in TOU rates ("+strings.Join(tou.LocationNames(), ", ")+")")
	compareCmd.Flags().StringVarP(&compareOffRate, "off-peak-rate", "o", "", "Off-peak TOU rate in dollars per kWh")
	compareCmd.Flags().StringVarP(&compareMidRate, "mid-peak-rate", "m", "", "Mid-peak TOU rate in dollars per kWh")
	compareCmd.Flags().StringVarP(&comparePeakRate, "peak-rate", "p", "", "Peak TOU rate in dollars per kWh")
	compareCmd.MarkFlagsMutuallyExclusive("tou-location", "off-peak-rate")
	compareCmd.MarkFlagsMutuallyExclusive("tou-location", "mid-peak-rate")
	compareCmd.MarkFlagsMutuallyExclusive("tou-location", "peak-rate")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	currentRate, err := resolveCurrentRate(cfg)
	if err != nil {
		return err
	}
	touRates, err := resolveTouRates(cfg)
	if err != nil {
		return err
	}

	entries, err := ingest.ReadUsageFile(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Found %s usage entries\n", humanize.Comma(int64(len(entries))))
	fmt.Printf("Total kWh used: %s\n", calculator.TotalNetKWh(entries).StringFixed(2))

	currentCost := calculator.FlatCost(currentRate, entries)
	fmt.Printf("Current cost: $%s\n", currentCost.StringFixed(2))

	touCost, err := calculator.TOUCost(touRates, entries)
	if err != nil {
		return err
	}
	fmt.Printf("TOU cost: $%s\n", touCost.StringFixed(2))

	switch touCost.Cmp(currentCost) {
	case -1:
		fmt.Printf("You would save $%s by switching to TOU rates!\n", currentCost.Sub(touCost).StringFixed(2))
	case 1:
		fmt.Printf("You would pay $%s more by switching to TOU rates!\n", touCost.Sub(currentCost).StringFixed(2))
	default:
		fmt.Println("You would pay the same amount with TOU rates. Try another bill?")
	}

	return nil
}

// resolveCurrentRate returns the flat rate from the --rate flag, falling
// back to the config file
func resolveCurrentRate(cfg *config.Config) (decimal.Decimal, error) {
	rateStr := compareRate
	if rateStr == "" {
		rateStr = cfg.CurrentRate
	}
	if rateStr == "" {
		return decimal.Zero, fmt.Errorf("current rate is required: pass --rate or set current_rate in the config file")
	}
	rate, err := decimal.NewFromString(rateStr)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid current rate %q: %w", rateStr, err)
	}
	return rate, nil
}

// resolveTouRates picks the TOU schedule: flags first, then config defaults
func resolveTouRates(cfg *config.Config) (tou.Rates, error) {
	anyExplicit := compareOffRate != "" || compareMidRate != "" || comparePeakRate != ""
	switch {
	case compareLocation != "":
		return tou.RatesForLocation(compareLocation)
	case anyExplicit:
		return tou.RatesFromStrings(compareOffRate, compareMidRate, comparePeakRate)
	case cfg.TouLocation != "":
		return tou.RatesForLocation(cfg.TouLocation)
	case cfg.TouRates != nil:
		return tou.RatesFromStrings(cfg.TouRates.Off, cfg.TouRates.Mid, cfg.TouRates.Peak)
	}
	return tou.Rates{}, fmt.Errorf("TOU rates are required: pass --tou-location, or all of --off-peak-rate, --mid-peak-rate, and --peak-rate")
}
