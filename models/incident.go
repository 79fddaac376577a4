package models

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall clock time without a date.
type TimeOfDay struct {
	Hour   int `yaml:"hour"`
	Minute int `yaml:"minute"`
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Incident is one retained row of the police incident reports CSV.
type Incident struct {
	Date        time.Time
	Time        TimeOfDay
	Description string
	DayOfWeek   string
}

func (i *Incident) ToString() string {
	return fmt.Sprintf("Incident(date=%s, time=%s, day=%s, description=%s)",
		i.Date.Format(time.DateOnly), i.Time, i.DayOfWeek, i.Description)
}

// IncidentTable holds incidents in input file order. It is never mutated
// once loaded; Filter returns a new table.
type IncidentTable []Incident

// Filter returns the incidents matching keep, preserving order.
func (t IncidentTable) Filter(keep func(Incident) bool) IncidentTable {
	out := make(IncidentTable, 0, len(t))
	for _, inc := range t {
		if keep(inc) {
			out = append(out, inc)
		}
	}
	return out
}

// Before returns the incidents dated strictly before cutoff.
func (t IncidentTable) Before(cutoff time.Time) IncidentTable {
	return t.Filter(func(inc Incident) bool {
		return inc.Date.Before(cutoff)
	})
}
