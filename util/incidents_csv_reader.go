package util

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"crime-stats/config"
	"crime-stats/models"

	"github.com/m-mizutani/goerr/v2"
)

// incidentDateLayouts are tried in order. The dataset ships YYYY/MM/DD.
var incidentDateLayouts = []string{
	"2006/01/02",
	"2006-01-02",
	"01/02/2006",
	"2006/01/02 03:04:05 PM",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

var requiredColumns = []string{
	config.COLUMN_REPORT_TYPE_CODE,
	config.COLUMN_INCIDENT_DATE,
	config.COLUMN_INCIDENT_TIME,
	config.COLUMN_INCIDENT_DESCRIPTION,
	config.COLUMN_INCIDENT_DAY_OF_WEEK,
}

// LoadIncidentsFromCSV loads the vehicle supplement incidents from a CSV file on disk.
func LoadIncidentsFromCSV(filePath string) (models.IncidentTable, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open incidents file",
			goerr.V("path", filePath), goerr.T(models.ErrTagIO))
	}
	defer f.Close()

	return ReadIncidents(f, filePath)
}

// ReadIncidents parses incident reports from r. Only rows whose report type
// code is exactly "VS" are kept; any malformed time or date aborts the whole load.
func ReadIncidents(r io.Reader, source string) (models.IncidentTable, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, goerr.New("incidents file has no header row",
				goerr.V("source", source), goerr.T(models.ErrTagSchema))
		}
		return nil, wrapReadError(err, "failed to read header", source)
	}

	idx, err := columnIndexes(header)
	if err != nil {
		return nil, goerr.Wrap(err, "unexpected incidents schema", goerr.V("source", source))
	}

	var table models.IncidentTable
	for {
		rec, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, wrapReadError(err, "failed to read incidents row", source)
		}

		if rec[idx[config.COLUMN_REPORT_TYPE_CODE]] != config.VEHICLE_SUPPLEMENT_REPORT_TYPE_CODE {
			continue
		}

		line, _ := reader.FieldPos(0)
		inc, err := parseIncident(rec, idx)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to parse incident",
				goerr.V("source", source), goerr.V("line", line))
		}
		table = append(table, inc)
	}

	return table, nil
}

// wrapReadError tells malformed CSV apart from a failing underlying reader.
func wrapReadError(err error, msg, source string) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return goerr.Wrap(err, msg, goerr.V("source", source), goerr.T(models.ErrTagParse))
	}
	return goerr.Wrap(err, msg, goerr.V("source", source), goerr.T(models.ErrTagIO))
}

// columnIndexes maps every required column to its position in header.
func columnIndexes(header []string) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		if _, dup := positions[name]; !dup {
			positions[name] = i
		}
	}

	idx := make(map[string]int, len(requiredColumns))
	for _, col := range requiredColumns {
		i, ok := positions[col]
		if !ok {
			return nil, goerr.New("missing expected column",
				goerr.V("column", col), goerr.T(models.ErrTagSchema))
		}
		idx[col] = i
	}
	return idx, nil
}

func parseIncident(rec []string, idx map[string]int) (models.Incident, error) {
	date, err := ParseIncidentDate(rec[idx[config.COLUMN_INCIDENT_DATE]])
	if err != nil {
		return models.Incident{}, err
	}
	tod, err := ParseIncidentTime(rec[idx[config.COLUMN_INCIDENT_TIME]])
	if err != nil {
		return models.Incident{}, err
	}

	return models.Incident{
		Date:        date,
		Time:        tod,
		Description: rec[idx[config.COLUMN_INCIDENT_DESCRIPTION]],
		DayOfWeek:   rec[idx[config.COLUMN_INCIDENT_DAY_OF_WEEK]],
	}, nil
}

// ParseIncidentDate parses the incident date column into a UTC calendar date.
func ParseIncidentDate(value string) (time.Time, error) {
	s := strings.TrimSpace(value)
	for _, layout := range incidentDateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, goerr.New("invalid incident date",
		goerr.V("value", value), goerr.T(models.ErrTagParse))
}

// ParseIncidentTime parses a strict HH:MM time of day.
func ParseIncidentTime(value string) (models.TimeOfDay, error) {
	if len(value) != len(config.INCIDENT_TIME_LAYOUT) || value[2] != ':' {
		return models.TimeOfDay{}, goerr.New("incident time is not HH:MM",
			goerr.V("value", value), goerr.T(models.ErrTagParse))
	}
	t, err := time.Parse(config.INCIDENT_TIME_LAYOUT, value)
	if err != nil {
		return models.TimeOfDay{}, goerr.Wrap(err, "incident time is not HH:MM",
			goerr.V("value", value), goerr.T(models.ErrTagParse))
	}
	return models.TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}
