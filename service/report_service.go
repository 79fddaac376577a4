package services

import (
	"context"
	"log/slog"
	"time"

	"crime-stats/config"
	"crime-stats/models"
	"crime-stats/util"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// ReportService runs the whole batch: load, print every report, render the charts.
type ReportService struct {
	incidentService   *IncidentService
	aggregatorService *AggregatorService
	shiftService      *ShiftService
	printer           *util.ReportPrinter
	options           ReportOptions
}

// ReportOptions tune the chart output of a run.
type ReportOptions struct {
	// SplitYears plots real (year, window) counts instead of the fixed year axis.
	SplitYears bool
	// ChartDir, when set, also receives the chart pages as HTML files.
	ChartDir string
}

// NewReportService constructs a new ReportService with its dependencies.
func NewReportService(
	incidentService *IncidentService,
	aggregatorService *AggregatorService,
	shiftService *ShiftService,
	printer *util.ReportPrinter,
	options ReportOptions,
) *ReportService {
	return &ReportService{
		incidentService:   incidentService,
		aggregatorService: aggregatorService,
		shiftService:      shiftService,
		printer:           printer,
		options:           options,
	}
}

// Run orchestrates the pipeline steps and returns the rendered chart pages.
func (rs *ReportService) Run(ctx context.Context, source string) ([]util.ChartPage, error) {
	logger := ctxlog.From(ctx)

	// 1) Load the filtered incident table
	incidents, err := rs.incidentService.LoadIncidents(ctx, source)
	if err != nil {
		return nil, err
	}
	logger.Info("Loaded incidents", slog.String("source", source), slog.Int("count", len(incidents)))

	// 2) Print the count reports
	if err := rs.PrintReports(incidents); err != nil {
		return nil, err
	}

	// 3) Render the charts
	pages, err := rs.DrawCharts(incidents)
	if err != nil {
		return nil, err
	}
	logger.Info("Rendered charts", slog.Int("count", len(pages)))

	// 4) Optionally keep the pages on disk
	if rs.options.ChartDir != "" {
		paths, err := util.WriteChartPages(rs.options.ChartDir, pages)
		if err != nil {
			return nil, err
		}
		logger.Info("Wrote chart files", slog.Any("paths", paths))
	}

	return pages, nil
}

// PrintReports prints per year, per month, per day of week and per time period counts.
func (rs *ReportService) PrintReports(incidents models.IncidentTable) error {
	if err := rs.printer.PrintYearCounts(rs.aggregatorService.CrimesPerYear(incidents)); err != nil {
		return err
	}
	if err := rs.printer.PrintMonthCounts(rs.aggregatorService.CrimesPerMonth(incidents)); err != nil {
		return err
	}
	if err := rs.printer.PrintDayOfWeekCounts(rs.aggregatorService.CrimesPerDayOfWeek(incidents)); err != nil {
		return err
	}
	if err := rs.printer.PrintTimePeriods(rs.shiftService.CrimesByTimePeriods(incidents)); err != nil {
		return err
	}
	return rs.printer.Close()
}

// DrawCharts renders the 2D crimes per time chart and the 3D crimes per year and time chart.
func (rs *ReportService) DrawCharts(incidents models.IncidentTable) ([]util.ChartPage, error) {
	totals, err := rs.shiftService.ShiftTotals(incidents)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to draw crimes per time chart")
	}
	perTime, err := util.PlotCrimesPerTime(totals)
	if err != nil {
		return nil, err
	}

	cutoff := config.THREE_D_CUTOFF_DATE.Format(time.DateOnly)
	var points []models.Point3D
	var subtitle string
	if rs.options.SplitYears {
		points = rs.shiftService.CrimesPerYearAndTime3D(incidents)
		subtitle = "incidents before " + cutoff + ", split by year"
	} else {
		points, err = rs.shiftService.CrimesPerTime3D(incidents)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to draw 3D crimes per time chart")
		}
		subtitle = "incidents before " + cutoff + ", year axis is fixed and not split"
	}
	perTime3D, err := util.PlotCrimesPerTime3D(points, subtitle)
	if err != nil {
		return nil, err
	}

	return []util.ChartPage{perTime, perTime3D}, nil
}
