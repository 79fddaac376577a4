package services

import (
	"testing"
	"time"

	"crime-stats/config"
	"crime-stats/models"

	"github.com/m-mizutani/goerr/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullDayTable() models.IncidentTable {
	return models.IncidentTable{
		incident(2018, time.January, 1, 0, 0, "Monday"),
		incident(2019, time.February, 2, 6, 0, "Saturday"),
		incident(2019, time.February, 3, 11, 59, "Sunday"),
		incident(2020, time.March, 3, 12, 0, "Tuesday"),
		incident(2021, time.April, 4, 18, 0, "Sunday"),
		incident(2021, time.April, 5, 23, 59, "Monday"),
		incident(2022, time.January, 1, 5, 0, "Saturday"),
	}
}

func TestShiftService_ClassifyHour(t *testing.T) {
	ss := NewShiftService(models.ShiftWindows)

	tests := []struct {
		hour int
		want string
	}{
		{0, "Night"},
		{6, "Morning"},
		{12, "Daylight"},
		{18, "Evening"},
		{23, "Evening"},
	}
	for _, test := range tests {
		w, err := ss.ClassifyHour(test.hour)
		require.NoError(t, err)
		assert.Equal(t, test.want, w.Name, "hour %d", test.hour)
	}

	_, err := ss.ClassifyHour(24)
	require.Error(t, err)
	assert.True(t, goerr.HasTag(err, models.ErrTagParse))
}

func TestShiftService_CrimesByTimePeriods_ThreeRowScenario(t *testing.T) {
	ss := NewShiftService(models.ShiftWindows)

	shifts := ss.CrimesByTimePeriods(threeRowTable())

	require.Len(t, shifts, 4)
	assert.Equal(t, "Night", shifts[0].Window.Name)
	assert.Equal(t, []models.GroupCount[models.YearDay]{
		{Key: models.YearDay{Year: 2019, DayOfWeek: "Wednesday"}, Count: 1},
	}, shifts[0].Counts)
	assert.Equal(t, []models.GroupCount[models.YearDay]{
		{Key: models.YearDay{Year: 2019, DayOfWeek: "Wednesday"}, Count: 1},
	}, shifts[1].Counts)
	assert.Empty(t, shifts[2].Counts)
	assert.Equal(t, []models.GroupCount[models.YearDay]{
		{Key: models.YearDay{Year: 2020, DayOfWeek: "Friday"}, Count: 1},
	}, shifts[3].Counts)
}

func TestShiftService_CrimesByTimePeriods_PartitionIsComplete(t *testing.T) {
	ss := NewShiftService(models.ShiftWindows)
	table := fullDayTable()

	total := 0
	for _, s := range ss.CrimesByTimePeriods(table) {
		total += models.Total(s.Counts)
	}

	assert.Equal(t, len(table), total)
}

func TestShiftService_CrimesByTimePeriods_Ordering(t *testing.T) {
	ss := NewShiftService(models.ShiftWindows)
	table := models.IncidentTable{
		incident(2020, time.May, 1, 1, 0, "Friday"),
		incident(2019, time.May, 2, 2, 0, "Thursday"),
		incident(2019, time.May, 3, 3, 0, "Friday"),
		incident(2019, time.May, 10, 4, 0, "Friday"),
	}

	night := ss.CrimesByTimePeriods(table)[0].Counts

	assert.Equal(t, []models.GroupCount[models.YearDay]{
		{Key: models.YearDay{Year: 2019, DayOfWeek: "Friday"}, Count: 2},
		{Key: models.YearDay{Year: 2019, DayOfWeek: "Thursday"}, Count: 1},
		{Key: models.YearDay{Year: 2020, DayOfWeek: "Friday"}, Count: 1},
	}, night)
}

func TestShiftService_ShiftTotals(t *testing.T) {
	ss := NewShiftService(models.ShiftWindows)
	table := fullDayTable()

	totals, err := ss.ShiftTotals(table)

	require.NoError(t, err)
	require.Len(t, totals, 4)
	assert.Equal(t, 2, totals[0].Count)
	assert.Equal(t, 2, totals[1].Count)
	assert.Equal(t, 1, totals[2].Count)
	assert.Equal(t, 2, totals[3].Count)

	sum := 0
	for _, tot := range totals {
		sum += tot.Count
	}
	assert.Equal(t, len(table), sum)
}

func TestShiftService_ShiftTotals_EmptyWindow(t *testing.T) {
	ss := NewShiftService(models.ShiftWindows)

	_, err := ss.ShiftTotals(threeRowTable())

	require.Error(t, err)
	assert.True(t, goerr.HasTag(err, models.ErrTagEmptyWindow))
}

func TestShiftService_ShiftTotalsBefore_ExcludesCutoff(t *testing.T) {
	ss := NewShiftService(models.ShiftWindows)

	totals, err := ss.ShiftTotalsBefore(fullDayTable(), config.THREE_D_CUTOFF_DATE)

	require.NoError(t, err)
	// the 2022-01-01 05:00 incident is dropped
	assert.Equal(t, 1, totals[0].Count)
}

func TestShiftService_CrimesPerTime3D_FixedYearAxis(t *testing.T) {
	ss := NewShiftService(models.ShiftWindows)

	points, err := ss.CrimesPerTime3D(fullDayTable())

	require.NoError(t, err)
	assert.Equal(t, []models.Point3D{
		{Year: 2018, Hour: 6, Count: 1},
		{Year: 2019, Hour: 12, Count: 2},
		{Year: 2020, Hour: 18, Count: 1},
		{Year: 2021, Hour: 24, Count: 2},
	}, points)
}

func TestShiftService_CrimesPerTime3D_EmptyWindowBeforeCutoff(t *testing.T) {
	ss := NewShiftService(models.ShiftWindows)
	table := models.IncidentTable{
		incident(2019, time.May, 1, 1, 0, "Wednesday"),
		incident(2022, time.May, 1, 7, 0, "Sunday"),
		incident(2022, time.May, 1, 13, 0, "Sunday"),
		incident(2022, time.May, 1, 19, 0, "Sunday"),
	}

	_, err := ss.CrimesPerTime3D(table)

	require.Error(t, err)
	assert.True(t, goerr.HasTag(err, models.ErrTagEmptyWindow))
}

func TestShiftService_CrimesPerYearAndTime3D(t *testing.T) {
	ss := NewShiftService(models.ShiftWindows)

	points := ss.CrimesPerYearAndTime3D(fullDayTable())

	assert.Equal(t, []models.Point3D{
		{Year: 2018, Hour: 6, Count: 1},
		{Year: 2019, Hour: 12, Count: 2},
		{Year: 2020, Hour: 18, Count: 1},
		{Year: 2021, Hour: 24, Count: 2},
	}, points)
}

func TestShiftService_CrimesPerYearAndTime3D_SplitsYears(t *testing.T) {
	ss := NewShiftService(models.ShiftWindows)
	table := models.IncidentTable{
		incident(2020, time.May, 1, 1, 0, "Friday"),
		incident(2019, time.May, 1, 1, 0, "Wednesday"),
		incident(2019, time.May, 1, 20, 0, "Wednesday"),
	}

	points := ss.CrimesPerYearAndTime3D(table)

	assert.Equal(t, []models.Point3D{
		{Year: 2019, Hour: 6, Count: 1},
		{Year: 2019, Hour: 24, Count: 1},
		{Year: 2020, Hour: 6, Count: 1},
	}, points)
}
