package models

import "fmt"

// ShiftWindow is a half-open hour range [Lower, Upper).
type ShiftWindow struct {
	Name  string
	Label string
	Lower int
	Upper int
}

// Contains reports whether hour falls in [Lower, Upper).
func (w ShiftWindow) Contains(hour int) bool {
	return hour >= w.Lower && hour < w.Upper
}

// CorrectedLabel names the window by its real bounds.
func (w ShiftWindow) CorrectedLabel() string {
	return fmt.Sprintf("Crimes between %02d:00 and %02d:00", w.Lower, w.Upper%24)
}

// ShiftWindows partition the day. Labels are kept exactly as the reports
// have always printed them, mislabels included.
var ShiftWindows = []ShiftWindow{
	{Name: "Night", Label: "Crimes between 0 and 6AM", Lower: 0, Upper: 6},
	{Name: "Morning", Label: "Crimes between 6 and 12AM", Lower: 6, Upper: 12},
	{Name: "Daylight", Label: "Crimes between 12AM and 18PM", Lower: 12, Upper: 18},
	{Name: "Evening", Label: "Crimes between 18PM and 0AM", Lower: 18, Upper: 24},
}

// ShiftForHour returns the window containing hour. ok is false only for
// hours outside 0..23.
func ShiftForHour(hour int) (ShiftWindow, bool) {
	for _, w := range ShiftWindows {
		if w.Contains(hour) {
			return w, true
		}
	}
	return ShiftWindow{}, false
}
