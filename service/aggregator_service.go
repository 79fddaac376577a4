package services

import (
	"cmp"

	"crime-stats/models"
)

// AggregatorService computes the single dimension incident counts.
type AggregatorService struct{}

func NewAggregatorService() *AggregatorService {
	return &AggregatorService{}
}

// CrimesPerYear counts incidents per calendar year, ascending.
func (as *AggregatorService) CrimesPerYear(incidents models.IncidentTable) []models.GroupCount[int] {
	return countBy(incidents, func(inc models.Incident) int {
		return inc.Date.Year()
	}, cmp.Compare[int])
}

// CrimesPerMonth counts incidents per month number (1-12), all years merged.
func (as *AggregatorService) CrimesPerMonth(incidents models.IncidentTable) []models.GroupCount[int] {
	return countBy(incidents, func(inc models.Incident) int {
		return int(inc.Date.Month())
	}, cmp.Compare[int])
}

// CrimesPerDayOfWeek counts incidents per day name as found in the source.
// Names sort alphabetically, not in calendar order.
func (as *AggregatorService) CrimesPerDayOfWeek(incidents models.IncidentTable) []models.GroupCount[string] {
	return countBy(incidents, func(inc models.Incident) string {
		return inc.DayOfWeek
	}, cmp.Compare[string])
}
