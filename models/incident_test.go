package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIncidentTable_Before(t *testing.T) {
	table := IncidentTable{
		{Date: time.Date(2021, time.December, 31, 0, 0, 0, 0, time.UTC), DayOfWeek: "Friday"},
		{Date: time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC), DayOfWeek: "Saturday"},
		{Date: time.Date(2018, time.January, 1, 0, 0, 0, 0, time.UTC), DayOfWeek: "Monday"},
	}

	before := table.Before(time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC))

	assert.Len(t, before, 2)
	assert.Equal(t, "Friday", before[0].DayOfWeek)
	assert.Equal(t, "Monday", before[1].DayOfWeek)
	assert.Len(t, table, 3)
}

func TestIncident_ToString(t *testing.T) {
	inc := Incident{
		Date:        time.Date(2019, time.May, 1, 0, 0, 0, 0, time.UTC),
		Time:        TimeOfDay{Hour: 5, Minute: 30},
		Description: "Theft From Vehicle",
		DayOfWeek:   "Wednesday",
	}

	assert.Equal(t, "Incident(date=2019-05-01, time=05:30, day=Wednesday, description=Theft From Vehicle)", inc.ToString())
}
