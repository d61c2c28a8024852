package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jgoulah/toucompare/internal/tou"
)

var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "List built-in TOU rates by service area",
	Long: `Displays the built-in SCL time-of-use rates for each service area, in
dollars per kWh. "other" covers Burien, SeaTac, Shoreline, and unincorporated
King County.`,
	RunE: runLocations,
}

func init() {
	rootCmd.AddCommand(locationsCmd)
}

func runLocations(cmd *cobra.Command, args []string) error {
	fmt.Printf("%-18s %10s %10s %10s\n", "Location", "Off-peak", "Mid-peak", "Peak")
	fmt.Println("----------------------------------------------------")
	for _, name := range tou.LocationNames() {
		rates, err := tou.RatesForLocation(name)
		if err != nil {
			return err
		}
		fmt.Printf("%-18s %10s %10s %10s\n", name,
			rates.Off.StringFixed(4), rates.Mid.StringFixed(4), rates.Peak.StringFixed(4))
	}
	return nil
}
