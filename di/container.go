package di

import (
	"io"
	"time"

	"crime-stats/api"
	"crime-stats/config"
	"crime-stats/models"
	"crime-stats/server"
	"crime-stats/server/handlers"
	services "crime-stats/service"
	"crime-stats/util"

	"github.com/gorilla/mux"
)

// Container holds all application dependencies.
type Container struct {
	HTTPClient            *api.HTTPClient
	IncidentService       *services.IncidentService
	AggregatorService     *services.AggregatorService
	ShiftService          *services.ShiftService
	ReportPrinter         *util.ReportPrinter
	ReportService         *services.ReportService
	ChartHandler          *handlers.ChartHandler
	MuxRouter             *mux.Router
	Router                *server.Router
	ChartViewerHttpServer *server.ChartViewerHttpServer
}

// NewContainer initializes and wires up all dependencies. Reports are printed to stdout.
func NewContainer(cfg config.Report, stdout io.Writer) (*Container, error) {
	// Initialize the download client for remote sources
	httpClient := api.NewHTTPClient(config.HTTP_DOWNLOAD_TIMEOUT_SECONDS * time.Second)

	// Initialize the pipeline services
	incidentService := services.NewIncidentService(httpClient)
	aggregatorService := services.NewAggregatorService()
	shiftService := services.NewShiftService(models.ShiftWindows)

	// Initialize the report printer
	reportPrinter, err := util.NewReportPrinter(stdout, cfg.Format, cfg.CorrectedLabels)
	if err != nil {
		return nil, err
	}

	reportService := services.NewReportService(
		incidentService,
		aggregatorService,
		shiftService,
		reportPrinter,
		services.ReportOptions{SplitYears: cfg.SplitYears, ChartDir: cfg.ChartDir},
	)

	// Initialize the chart viewer
	chartHandler := handlers.NewChartHandler()
	muxRouter := mux.NewRouter()
	router := server.NewRouter(chartHandler, muxRouter)
	chartViewerHttpServer := server.NewChartViewerHttpServer(router, muxRouter, cfg.Addr, config.CHART_VIEWER_SHUTDOWN_TIMEOUT)

	return &Container{
		HTTPClient:            httpClient,
		IncidentService:       incidentService,
		AggregatorService:     aggregatorService,
		ShiftService:          shiftService,
		ReportPrinter:         reportPrinter,
		ReportService:         reportService,
		ChartHandler:          chartHandler,
		MuxRouter:             muxRouter,
		Router:                router,
		ChartViewerHttpServer: chartViewerHttpServer,
	}, nil
}
