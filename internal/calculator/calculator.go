package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jgoulah/toucompare/internal/tou"
	"github.com/jgoulah/toucompare/pkg/models"
)

// FlatCost totals the cost of all entries at a single flat rate in dollars
// per kWh, ignoring time of day.
func FlatCost(rate decimal.Decimal, entries []models.UsageEntry) decimal.Decimal {
	total := decimal.Zero
	for _, entry := range entries {
		total = total.Add(rate.Mul(entry.NetKWh()))
	}
	return total
}

// TOUCost totals the cost of all entries under a TOU schedule. Every interval
// must start and end within the same TOU period; an interval crossing a
// period boundary is an error.
func TOUCost(rates tou.Rates, entries []models.UsageEntry) (decimal.Decimal, error) {
	total := decimal.Zero
	for i, entry := range entries {
		start, err := tou.Classify(entry.StartTime.Hour())
		if err != nil {
			return decimal.Zero, fmt.Errorf("entry %d start time: %w", i+1, err)
		}
		end, err := tou.Classify(entry.EndTime.Hour())
		if err != nil {
			return decimal.Zero, fmt.Errorf("entry %d end time: %w", i+1, err)
		}
		if start != end {
			return decimal.Zero, fmt.Errorf(
				"entry %d (%s - %s) crosses a TOU boundary (%s to %s): intervals must fall within a single TOU period",
				i+1, entry.StartTime.Format("15:04:05"), entry.EndTime.Format("15:04:05"), start, end)
		}
		total = total.Add(rates.Rate(start).Mul(entry.NetKWh()))
	}
	return total, nil
}

// TotalNetKWh sums net energy across all entries
func TotalNetKWh(entries []models.UsageEntry) decimal.Decimal {
	total := decimal.Zero
	for _, entry := range entries {
		total = total.Add(entry.NetKWh())
	}
	return total
}
