package services

import (
	"cmp"
	"slices"

	"crime-stats/models"
)

// countBy groups incidents by key and returns the counts ordered by compare.
func countBy[K comparable](
	incidents models.IncidentTable,
	key func(models.Incident) K,
	compare func(a, b K) int,
) []models.GroupCount[K] {
	counts := make(map[K]int)
	for _, inc := range incidents {
		counts[key(inc)]++
	}

	out := make([]models.GroupCount[K], 0, len(counts))
	for k, n := range counts {
		out = append(out, models.GroupCount[K]{Key: k, Count: n})
	}
	slices.SortFunc(out, func(a, b models.GroupCount[K]) int {
		return compare(a.Key, b.Key)
	})
	return out
}

func compareYearDay(a, b models.YearDay) int {
	if c := cmp.Compare(a.Year, b.Year); c != 0 {
		return c
	}
	return cmp.Compare(a.DayOfWeek, b.DayOfWeek)
}
