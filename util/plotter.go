package util

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"crime-stats/config"
	"crime-stats/models"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/m-mizutani/goerr/v2"
)

// ChartPage is a chart rendered as a standalone HTML page.
type ChartPage struct {
	Name  string
	Title string
	HTML  []byte
}

// PlotCrimesPerTime renders the 2D line of incidents per shift window,
// x being the window upper bound hour.
func PlotCrimesPerTime(totals []models.ShiftTotal) (ChartPage, error) {
	hours := make([]string, len(totals))
	points := make([]opts.LineData, len(totals))
	for i, t := range totals {
		hours[i] = strconv.Itoa(t.Window.Upper)
		points[i] = opts.LineData{Name: t.Window.Name, Value: t.Count}
	}

	title := "Crimes per time of day"
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "900px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Hour"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Crimes"}),
	)
	line.SetXAxis(hours).AddSeries("Crimes", points)

	return renderPage(config.CRIMES_PER_TIME_CHART, title, line)
}

// PlotCrimesPerTime3D renders the 3D line (year, hour, count).
func PlotCrimesPerTime3D(points []models.Point3D, subtitle string) (ChartPage, error) {
	data := make([]opts.Chart3DData, len(points))
	for i, p := range points {
		data[i] = opts.Chart3DData{Value: []interface{}{p.Year, p.Hour, p.Count}}
	}

	title := "Crimes per year and time of day"
	line3d := charts.NewLine3D()
	line3d.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "900px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: "Year", Type: "value"}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: "Hour", Type: "value"}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: "Crimes", Type: "value"}),
	)
	line3d.AddSeries("Crimes", data)

	return renderPage(config.CRIMES_PER_TIME_3D_CHART, title, line3d)
}

type renderer interface {
	Render(w io.Writer) error
}

func renderPage(name, title string, chart renderer) (ChartPage, error) {
	var buf bytes.Buffer
	if err := chart.Render(&buf); err != nil {
		return ChartPage{}, goerr.Wrap(err, "failed to render chart", goerr.V("chart", name))
	}
	return ChartPage{Name: name, Title: title, HTML: buf.Bytes()}, nil
}

// WriteChartPages writes every page to dir as <name>.html and returns the file paths.
func WriteChartPages(dir string, pages []ChartPage) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, goerr.Wrap(err, "failed to create chart directory",
			goerr.V("dir", dir), goerr.T(models.ErrTagIO))
	}

	paths := make([]string, 0, len(pages))
	for _, page := range pages {
		path := filepath.Join(dir, page.Name+".html")
		if err := os.WriteFile(path, page.HTML, 0o644); err != nil {
			return nil, goerr.Wrap(err, "failed to write chart file",
				goerr.V("path", path), goerr.T(models.ErrTagIO))
		}
		paths = append(paths, path)
	}
	return paths, nil
}
