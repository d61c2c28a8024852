package calculator

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgoulah/toucompare/internal/tou"
	"github.com/jgoulah/toucompare/pkg/models"
)

// entry builds a usage entry with the given start/end times and net import
func entry(t *testing.T, start, end, imported, exported string) models.UsageEntry {
	t.Helper()
	startTime, err := time.Parse("15:04:05", start)
	require.NoError(t, err)
	endTime, err := time.Parse("15:04:05", end)
	require.NoError(t, err)
	return models.UsageEntry{
		StartTime: startTime,
		EndTime:   endTime,
		Imported:  decimal.RequireFromString(imported),
		Exported:  decimal.RequireFromString(exported),
	}
}

func testRates(t *testing.T) tou.Rates {
	t.Helper()
	rates, err := tou.RatesFromStrings("0.05", "0.10", "0.20")
	require.NoError(t, err)
	return rates
}

func TestFlatCost(t *testing.T) {
	entries := []models.UsageEntry{
		entry(t, "02:00:00", "02:30:00", "1.500", "0.000"),
		entry(t, "10:00:00", "10:30:00", "2.000", "0.500"),
		entry(t, "18:00:00", "18:30:00", "0.000", "1.000"), // solar export, negative net
	}
	cost := FlatCost(decimal.RequireFromString("0.10"), entries)
	// (1.5 + 1.5 - 1.0) * 0.10
	assert.Equal(t, "0.20", cost.StringFixed(2))
}

func TestFlatCost_Linearity(t *testing.T) {
	entries := []models.UsageEntry{
		entry(t, "02:00:00", "02:30:00", "1.234", "0.000"),
		entry(t, "10:00:00", "10:30:00", "5.678", "0.910"),
	}
	rate := decimal.RequireFromString("0.1353")
	k := decimal.RequireFromString("3")
	scaled := FlatCost(rate.Mul(k), entries)
	assert.True(t, scaled.Equal(FlatCost(rate, entries).Mul(k)),
		"scaling the rate by k must scale the cost by k")
}

func TestTOUCost_SumsPerPeriod(t *testing.T) {
	entries := []models.UsageEntry{
		entry(t, "02:00:00", "02:30:00", "3.000", "0.000"), // off
		entry(t, "04:30:00", "05:00:00", "1.000", "0.000"), // off
		entry(t, "10:00:00", "10:30:00", "2.000", "0.000"), // mid
		entry(t, "18:00:00", "18:30:00", "0.500", "0.000"), // peak
	}
	cost, err := TOUCost(testRates(t), entries)
	require.NoError(t, err)
	// 4*0.05 + 2*0.10 + 0.5*0.20
	assert.Equal(t, "0.50", cost.StringFixed(2))
}

func TestTOUCost_BreakEvenAgainstFlatRate(t *testing.T) {
	// 100 net kWh split 40/40/20 across off/mid/peak at rates
	// 0.05/0.10/0.20 costs exactly the same as a 0.10 flat rate.
	entries := []models.UsageEntry{
		entry(t, "01:00:00", "01:30:00", "40.000", "0.000"),
		entry(t, "12:00:00", "12:30:00", "40.000", "0.000"),
		entry(t, "18:00:00", "18:30:00", "20.000", "0.000"),
	}

	flat := FlatCost(decimal.RequireFromString("0.10"), entries)
	assert.Equal(t, "10.00", flat.StringFixed(2))

	touCost, err := TOUCost(testRates(t), entries)
	require.NoError(t, err)
	assert.Equal(t, "10.00", touCost.StringFixed(2))
	assert.True(t, touCost.Equal(flat))
}

func TestTOUCost_StraddlingIntervalFails(t *testing.T) {
	entries := []models.UsageEntry{
		entry(t, "10:00:00", "10:30:00", "1.000", "0.000"),
		entry(t, "16:30:00", "17:00:00", "1.000", "0.000"), // mid into peak
	}
	_, err := TOUCost(testRates(t), entries)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry 2")
	assert.Contains(t, err.Error(), "mid-peak")
	assert.Contains(t, err.Error(), "peak")
}

func TestTOUCost_SamePeriodBoundaries(t *testing.T) {
	// Both endpoints in the off-peak period classify fine even across hours
	entries := []models.UsageEntry{
		entry(t, "02:00:00", "03:00:00", "1.000", "0.000"),
	}
	cost, err := TOUCost(testRates(t), entries)
	require.NoError(t, err)
	assert.Equal(t, "0.05", cost.StringFixed(2))
}

func TestTotalNetKWh(t *testing.T) {
	entries := []models.UsageEntry{
		entry(t, "02:00:00", "02:30:00", "1.500", "0.000"),
		entry(t, "10:00:00", "10:30:00", "0.100", "1.600"),
	}
	assert.Equal(t, "0.00", TotalNetKWh(entries).StringFixed(2))

	assert.True(t, TotalNetKWh(nil).IsZero())
}
