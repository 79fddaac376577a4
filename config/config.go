package config

import (
	"os"
	"path/filepath"
	"time"
)

// Incident reports source
const INCIDENTS_CSV_RESOURCE = "Police_Department_Incident_Reports__2018_to_Present.csv"

// Report type retained by the loader, everything else is dropped
const VEHICLE_SUPPLEMENT_REPORT_TYPE_CODE = "VS"

// CSV column names
const COLUMN_REPORT_TYPE_CODE = "Report Type Code"
const COLUMN_INCIDENT_DATE = "Incident Date"
const COLUMN_INCIDENT_TIME = "Incident Time"
const COLUMN_INCIDENT_DESCRIPTION = "Incident Description"
const COLUMN_INCIDENT_DAY_OF_WEEK = "Incident Day of Week"

// Time of day is always HH:MM, 24h
const INCIDENT_TIME_LAYOUT = "15:04"

// 3D chart config
// The year axis is fixed, it is not derived from the loaded data.
var THREE_D_YEAR_LABELS = []int{2018, 2019, 2020, 2021}
var THREE_D_CUTOFF_DATE = time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)

// Chart viewer config
const CHART_VIEWER_ADDRESS = "127.0.0.1:8080"
const CHART_VIEWER_SHUTDOWN_TIMEOUT = 5 * time.Second
const CRIMES_PER_TIME_CHART = "crimes_per_time"
const CRIMES_PER_TIME_3D_CHART = "crimes_per_time_3d"

// Remote source download timeout
const HTTP_DOWNLOAD_TIMEOUT_SECONDS = 120

// Env var prefix for every CLI flag
const ENV_PREFIX = "CRIME_STATS_"

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

// GetResourcePath resolves a data file against the project root.
func GetResourcePath(resourceFile string) string {
	if filepath.IsAbs(resourceFile) {
		return resourceFile
	}
	return filepath.Join(BaseDir(), resourceFile)
}

// DefaultIncidentsPath is the CSV loaded when no source is given.
func DefaultIncidentsPath() string {
	return GetResourcePath(INCIDENTS_CSV_RESOURCE)
}
