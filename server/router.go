package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// ChartHandler serves the rendered chart pages.
type ChartHandler interface {
	Index(w http.ResponseWriter, r *http.Request)
	GetChart(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	chartHandler ChartHandler
	router       *mux.Router
}

// NewRouter creates a router with the chart viewer routes.
func NewRouter(
	chartHandler ChartHandler,
	router *mux.Router) *Router {
	return &Router{
		chartHandler: chartHandler,
		router:       router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/", r.chartHandler.Index).Methods("GET")

	// {name} is one of the chart names, e.g. crimes_per_time
	r.router.HandleFunc("/charts/{name}", r.chartHandler.GetChart).Methods("GET")

	r.router.HandleFunc("/ping", r.chartHandler.Ping).Methods("GET")
}
