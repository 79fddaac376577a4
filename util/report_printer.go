package util

import (
	"fmt"
	"io"
	"strconv"

	"crime-stats/models"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

// Output formats of the printed reports.
const (
	FormatTable = "table"
	FormatYAML  = "yaml"
)

// ReportPrinter writes the count reports to an output stream, one block per report.
type ReportPrinter struct {
	w               io.Writer
	format          string
	correctedLabels bool
	yamlEncoder     *yaml.Encoder
}

type yamlReport struct {
	Report string `yaml:"report"`
	Rows   any    `yaml:"rows"`
}

// NewReportPrinter builds a printer for format ("table" or "yaml").
// correctedLabels replaces the historical time period headings with the real window bounds.
func NewReportPrinter(w io.Writer, format string, correctedLabels bool) (*ReportPrinter, error) {
	p := &ReportPrinter{w: w, format: format, correctedLabels: correctedLabels}
	switch format {
	case FormatTable:
	case FormatYAML:
		p.yamlEncoder = yaml.NewEncoder(w)
		p.yamlEncoder.SetIndent(2)
	default:
		return nil, goerr.New("unknown report format",
			goerr.V("format", format), goerr.T(models.ErrTagConfig))
	}
	return p, nil
}

// PrintYearCounts prints the per-year report.
func (p *ReportPrinter) PrintYearCounts(counts []models.GroupCount[int]) error {
	return printCounts(p, "Crimes per year", "Incident Date", counts, strconv.Itoa)
}

// PrintMonthCounts prints the per-month report.
func (p *ReportPrinter) PrintMonthCounts(counts []models.GroupCount[int]) error {
	return printCounts(p, "Crimes per month", "Incident Date", counts, strconv.Itoa)
}

// PrintDayOfWeekCounts prints the per-day-of-week report.
func (p *ReportPrinter) PrintDayOfWeekCounts(counts []models.GroupCount[string]) error {
	return printCounts(p, "Crimes per day of week", "Incident Day of Week", counts, func(s string) string { return s })
}

// PrintTimePeriods prints one (year, day of week) table per shift window.
func (p *ReportPrinter) PrintTimePeriods(shifts []models.ShiftCounts) error {
	for _, s := range shifts {
		title := s.Window.Label
		if p.correctedLabels {
			title = s.Window.CorrectedLabel()
		}

		if p.format == FormatYAML {
			if err := p.encode(title, s.Counts); err != nil {
				return err
			}
			continue
		}

		rows := make([][]string, 0, len(s.Counts))
		for _, c := range s.Counts {
			rows = append(rows, []string{strconv.Itoa(c.Key.Year), c.Key.DayOfWeek, strconv.Itoa(c.Count)})
		}
		if err := p.writeTable(title, []string{"Incident Date", "Day of Week", "Crimes Count"}, rows); err != nil {
			return err
		}
	}
	return nil
}

// Close flushes the YAML stream. It is a no-op for tables.
func (p *ReportPrinter) Close() error {
	if p.yamlEncoder == nil {
		return nil
	}
	if err := p.yamlEncoder.Close(); err != nil {
		return goerr.Wrap(err, "failed to flush yaml report", goerr.T(models.ErrTagIO))
	}
	return nil
}

// printCounts prints a single dimension report.
func printCounts[K any](p *ReportPrinter, title, keyHeader string, counts []models.GroupCount[K], keyString func(K) string) error {
	if p.format == FormatYAML {
		return p.encode(title, counts)
	}

	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{keyString(c.Key), strconv.Itoa(c.Count)})
	}
	return p.writeTable(title, []string{keyHeader, "Count"}, rows)
}

func (p *ReportPrinter) encode(title string, rows any) error {
	if err := p.yamlEncoder.Encode(yamlReport{Report: title, Rows: rows}); err != nil {
		return goerr.Wrap(err, "failed to encode yaml report",
			goerr.V("report", title), goerr.T(models.ErrTagIO))
	}
	return nil
}

func (p *ReportPrinter) writeTable(title string, headers []string, rows [][]string) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)

	if _, err := fmt.Fprintf(p.w, "%s:\n%s\n\n", title, t.Render()); err != nil {
		return goerr.Wrap(err, "failed to print report",
			goerr.V("report", title), goerr.T(models.ErrTagIO))
	}
	return nil
}
