package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"crime-stats/util"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(h *ChartHandler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", h.Index)
	r.HandleFunc("/charts/{name}", h.GetChart)
	r.HandleFunc("/ping", h.Ping)
	return r
}

func TestChartHandler_GetChart(t *testing.T) {
	h := NewChartHandler()
	h.SetCharts([]util.ChartPage{
		{Name: "crimes_per_time", Title: "Crimes per time of day", HTML: []byte("<html>2d</html>")},
		{Name: "crimes_per_time_3d", Title: "Crimes per year and time of day", HTML: []byte("<html>3d</html>")},
	})
	router := newTestRouter(h)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/charts/crimes_per_time_3d", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "<html>3d</html>", rr.Body.String())
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
}

func TestChartHandler_GetChart_Unknown(t *testing.T) {
	router := newTestRouter(NewChartHandler())

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/charts/nope", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestChartHandler_Index(t *testing.T) {
	h := NewChartHandler()
	h.SetCharts([]util.ChartPage{
		{Name: "crimes_per_time", Title: "Crimes per time of day"},
		{Name: "crimes_per_time_3d", Title: "Crimes per year and time of day"},
	})
	router := newTestRouter(h)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `<a href="/charts/crimes_per_time">Crimes per time of day</a>`)
	assert.Contains(t, rr.Body.String(), `<a href="/charts/crimes_per_time_3d">Crimes per year and time of day</a>`)
}

func TestChartHandler_Ping(t *testing.T) {
	router := newTestRouter(NewChartHandler())

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/ping", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"pong"}`, rr.Body.String())
}
