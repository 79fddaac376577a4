package handlers

import (
	"encoding/json"
	"fmt"
	"html"
	"log/slog"
	"net/http"

	"crime-stats/util"

	"github.com/gorilla/mux"
)

const CHART_NAME_PATH_ARG = "name"

type ChartHandler struct {
	pages  []util.ChartPage
	byName map[string]util.ChartPage
}

func NewChartHandler() *ChartHandler {
	return &ChartHandler{byName: map[string]util.ChartPage{}}
}

// SetCharts replaces the served pages. Call it before the server starts.
func (h *ChartHandler) SetCharts(pages []util.ChartPage) {
	h.pages = pages
	h.byName = make(map[string]util.ChartPage, len(pages))
	for _, p := range pages {
		h.byName[p.Name] = p
	}
}

// Index handles GET / with a link to every chart
func (h *ChartHandler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "<html><head><title>Crime stats</title></head><body><ul>\n")
	for _, p := range h.pages {
		fmt.Fprintf(w, "<li><a href=\"/charts/%s\">%s</a></li>\n",
			html.EscapeString(p.Name), html.EscapeString(p.Title))
	}
	fmt.Fprint(w, "</ul></body></html>\n")
}

// GetChart handles GET /charts/{name}
func (h *ChartHandler) GetChart(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)[CHART_NAME_PATH_ARG]
	page, ok := h.byName[name]
	if !ok {
		http.Error(w, "Unknown chart "+name, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(page.HTML); err != nil {
		slog.Default().Warn("Error writing chart", slog.String("chart", name), slog.Any("error", err))
	}
}

// Ping handles GET /ping
func (h *ChartHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "pong"})
}
