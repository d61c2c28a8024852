package tou

import "fmt"

// TimeOfUse identifies one of the three TOU billing periods
type TimeOfUse int

const (
	Off TimeOfUse = iota
	Mid
	Peak
)

func (t TimeOfUse) String() string {
	switch t {
	case Off:
		return "off-peak"
	case Mid:
		return "mid-peak"
	case Peak:
		return "peak"
	}
	return fmt.Sprintf("TimeOfUse(%d)", int(t))
}

// Classify maps an hour of day to its TOU period. The schedule is fixed and
// does not vary by date, weekday, or season.
func Classify(hour int) (TimeOfUse, error) {
	switch {
	case hour >= 0 && hour <= 5:
		return Off, nil
	case hour >= 6 && hour <= 16:
		return Mid, nil
	case hour >= 17 && hour <= 20:
		return Peak, nil
	case hour >= 21 && hour <= 23:
		return Mid, nil
	default:
		return 0, fmt.Errorf("invalid hour %d: expected 0-23", hour)
	}
}
