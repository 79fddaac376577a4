package models

// GroupCount is the number of incidents sharing Key.
type GroupCount[K any] struct {
	Key   K   `yaml:"key"`
	Count int `yaml:"count"`
}

// YearDay is the (year, day of week) grouping key of the time period reports.
type YearDay struct {
	Year      int    `yaml:"year"`
	DayOfWeek string `yaml:"day_of_week"`
}

// ShiftCounts are the per (year, day of week) counts of one shift window.
type ShiftCounts struct {
	Window ShiftWindow
	Counts []GroupCount[YearDay]
}

// ShiftTotal is the total incident count of one shift window.
type ShiftTotal struct {
	Window ShiftWindow
	Count  int
}

// Point3D is one vertex of the 3D crimes per time line.
type Point3D struct {
	Year  int
	Hour  int
	Count int
}

// Total sums the counts of a grouped count table.
func Total[K any](counts []GroupCount[K]) int {
	n := 0
	for _, c := range counts {
		n += c.Count
	}
	return n
}
