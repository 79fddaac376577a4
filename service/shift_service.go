package services

import (
	"slices"
	"time"

	"crime-stats/config"
	"crime-stats/models"

	"github.com/m-mizutani/goerr/v2"
)

// ShiftService partitions incidents into the shift windows of the day.
type ShiftService struct {
	windows []models.ShiftWindow
}

// NewShiftService builds a partitioner over windows, which must cover
// hours 0..23 without overlap.
func NewShiftService(windows []models.ShiftWindow) *ShiftService {
	return &ShiftService{windows: windows}
}

// Windows returns the shift windows in partition order.
func (ss *ShiftService) Windows() []models.ShiftWindow {
	return ss.windows
}

// ClassifyHour returns the unique window holding hour.
func (ss *ShiftService) ClassifyHour(hour int) (models.ShiftWindow, error) {
	for _, w := range ss.windows {
		if w.Contains(hour) {
			return w, nil
		}
	}
	return models.ShiftWindow{}, goerr.New("hour outside every shift window",
		goerr.V("hour", hour), goerr.T(models.ErrTagParse))
}

func (ss *ShiftService) inWindow(w models.ShiftWindow) func(models.Incident) bool {
	return func(inc models.Incident) bool {
		return w.Contains(inc.Time.Hour)
	}
}

// CrimesByTimePeriods counts, for each window, the incidents of that window
// per (year, day of week).
func (ss *ShiftService) CrimesByTimePeriods(incidents models.IncidentTable) []models.ShiftCounts {
	out := make([]models.ShiftCounts, 0, len(ss.windows))
	for _, w := range ss.windows {
		counts := countBy(incidents.Filter(ss.inWindow(w)), func(inc models.Incident) models.YearDay {
			return models.YearDay{Year: inc.Date.Year(), DayOfWeek: inc.DayOfWeek}
		}, compareYearDay)
		out = append(out, models.ShiftCounts{Window: w, Counts: counts})
	}
	return out
}

// ShiftTotals counts all incidents of each window. A window without any
// incident has no count to plot and fails the run.
func (ss *ShiftService) ShiftTotals(incidents models.IncidentTable) ([]models.ShiftTotal, error) {
	out := make([]models.ShiftTotal, 0, len(ss.windows))
	for _, w := range ss.windows {
		n := len(incidents.Filter(ss.inWindow(w)))
		if n == 0 {
			return nil, goerr.New("no incidents in shift window",
				goerr.V("window", w.Name), goerr.T(models.ErrTagEmptyWindow))
		}
		out = append(out, models.ShiftTotal{Window: w, Count: n})
	}
	return out, nil
}

// ShiftTotalsBefore is ShiftTotals over the incidents dated before cutoff.
func (ss *ShiftService) ShiftTotalsBefore(incidents models.IncidentTable, cutoff time.Time) ([]models.ShiftTotal, error) {
	totals, err := ss.ShiftTotals(incidents.Before(cutoff))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to count shifts before cutoff",
			goerr.V("cutoff", cutoff.Format(time.DateOnly)))
	}
	return totals, nil
}

// CrimesPerTime3D pairs the fixed year labels with the window upper bounds
// and the pre-cutoff window totals. The year axis is not derived from the
// data: the totals are not split by year.
func (ss *ShiftService) CrimesPerTime3D(incidents models.IncidentTable) ([]models.Point3D, error) {
	totals, err := ss.ShiftTotalsBefore(incidents, config.THREE_D_CUTOFF_DATE)
	if err != nil {
		return nil, err
	}
	years := config.THREE_D_YEAR_LABELS
	if len(years) != len(totals) {
		return nil, goerr.New("year labels do not match shift windows",
			goerr.V("years", len(years)), goerr.V("windows", len(totals)),
			goerr.T(models.ErrTagConfig))
	}

	points := make([]models.Point3D, len(totals))
	for i, t := range totals {
		points[i] = models.Point3D{Year: years[i], Hour: t.Window.Upper, Count: t.Count}
	}
	return points, nil
}

// CrimesPerYearAndTime3D counts the pre-cutoff incidents per real
// (year, window) pair, one point per pair with incidents.
func (ss *ShiftService) CrimesPerYearAndTime3D(incidents models.IncidentTable) []models.Point3D {
	before := incidents.Before(config.THREE_D_CUTOFF_DATE)

	var years []int
	byYear := make(map[int]models.IncidentTable)
	for _, inc := range before {
		y := inc.Date.Year()
		if _, ok := byYear[y]; !ok {
			years = append(years, y)
		}
		byYear[y] = append(byYear[y], inc)
	}
	slices.Sort(years)

	var points []models.Point3D
	for _, y := range years {
		for _, w := range ss.windows {
			n := len(byYear[y].Filter(ss.inWindow(w)))
			if n == 0 {
				continue
			}
			points = append(points, models.Point3D{Year: y, Hour: w.Upper, Count: n})
		}
	}
	return points
}
