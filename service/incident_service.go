package services

import (
	"context"
	"log/slog"
	"strings"

	"crime-stats/api"
	"crime-stats/models"
	"crime-stats/util"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// IncidentService loads the incident table from a local file or a URL.
type IncidentService struct {
	httpClient *api.HTTPClient
}

// NewIncidentService constructs a new IncidentService.
func NewIncidentService(httpClient *api.HTTPClient) *IncidentService {
	return &IncidentService{httpClient: httpClient}
}

func isRemoteSource(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// LoadIncidents reads the whole source into memory and keeps the "VS" rows.
func (is *IncidentService) LoadIncidents(ctx context.Context, source string) (models.IncidentTable, error) {
	logger := ctxlog.From(ctx)

	if !isRemoteSource(source) {
		logger.Debug("Loading incidents from file", slog.String("path", source))
		return util.LoadIncidentsFromCSV(source)
	}

	logger.Info("Downloading incidents", slog.String("url", source))
	body, err := is.httpClient.Download(ctx, source)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	incidents, err := util.ReadIncidents(body, source)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load downloaded incidents")
	}
	return incidents, nil
}
