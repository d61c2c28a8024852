package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// UsageEntry represents a single metered interval from a usage export
type UsageEntry struct {
	StartTime time.Time       // Wall-clock time of day only (no date)
	EndTime   time.Time       // Wall-clock time of day only (no date)
	Imported  decimal.Decimal // Energy drawn from the grid, in kWh
	Exported  decimal.Decimal // Energy fed back to the grid (e.g. solar), in kWh
}

// NetKWh returns imported minus exported energy for the interval.
// It is negative when more energy was exported than imported.
func (e UsageEntry) NetKWh() decimal.Decimal {
	return e.Imported.Sub(e.Exported)
}
