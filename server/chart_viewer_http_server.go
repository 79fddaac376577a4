package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"crime-stats/models"

	"github.com/gorilla/mux"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// ChartViewerHttpServer shows the chart pages in a browser until it is stopped.
type ChartViewerHttpServer struct {
	router          *Router
	muxRouter       *mux.Router
	addr            string
	shutdownTimeout time.Duration
}

func NewChartViewerHttpServer(router *Router, muxRouter *mux.Router, addr string, shutdownTimeout time.Duration) *ChartViewerHttpServer {
	return &ChartViewerHttpServer{
		router:          router,
		muxRouter:       muxRouter,
		addr:            addr,
		shutdownTimeout: shutdownTimeout,
	}
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *ChartViewerHttpServer) Start(ctx context.Context) error {
	logger := ctxlog.From(ctx)
	s.router.RegisterRoutes()

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return goerr.Wrap(err, "failed to listen for chart viewer",
			goerr.V("addr", s.addr), goerr.T(models.ErrTagIO))
	}

	srv := &http.Server{
		Handler:           s.muxRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Serve in a goroutine so we can wait for cancellation
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Charts available", slog.String("url", "http://"+ln.Addr().String()+"/"))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return goerr.Wrap(err, "chart viewer stopped", goerr.T(models.ErrTagIO))
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down the chart viewer")

	// Create a deadline for the shutdown
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return goerr.Wrap(err, "chart viewer forced to shutdown")
	}

	logger.Info("Chart viewer exiting")
	return nil
}
