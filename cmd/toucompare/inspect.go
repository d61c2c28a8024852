package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jgoulah/toucompare/internal/ingest"
	"github.com/jgoulah/toucompare/internal/tou"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [usage.csv]",
	Short: "Inspect a usage export without computing costs",
	Long: `Parses the usage CSV and summarizes its contents: entry count, imported
and exported energy, and net kWh per TOU period. Useful for checking an export
before running a comparison.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	entries, err := ingest.ReadUsageFile(args[0])
	if err != nil {
		return err
	}

	totalImported := decimal.Zero
	totalExported := decimal.Zero
	perPeriod := map[tou.TimeOfUse]decimal.Decimal{}
	for i, entry := range entries {
		totalImported = totalImported.Add(entry.Imported)
		totalExported = totalExported.Add(entry.Exported)

		period, err := tou.Classify(entry.StartTime.Hour())
		if err != nil {
			return fmt.Errorf("entry %d: %w", i+1, err)
		}
		perPeriod[period] = perPeriod[period].Add(entry.NetKWh())
	}

	fmt.Printf("Entries:   %s\n", humanize.Comma(int64(len(entries))))
	fmt.Printf("Imported:  %s kWh\n", totalImported.StringFixed(2))
	fmt.Printf("Exported:  %s kWh\n", totalExported.StringFixed(2))
	fmt.Printf("Net:       %s kWh\n", totalImported.Sub(totalExported).StringFixed(2))

	fmt.Println("\nNet kWh by TOU period:")
	fmt.Println("----------------------------")
	for _, period := range []tou.TimeOfUse{tou.Off, tou.Mid, tou.Peak} {
		fmt.Printf("%-10s  %14s\n", period, perPeriod[period].StringFixed(2))
	}

	return nil
}
