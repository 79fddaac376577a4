package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"crime-stats/server/handlers"
	"crime-stats/util"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	ln.Close()
	return addr
}

func TestChartViewerHttpServer_ServesUntilCancelled(t *testing.T) {
	chartHandler := handlers.NewChartHandler()
	chartHandler.SetCharts([]util.ChartPage{
		{Name: "crimes_per_time", Title: "Crimes per time of day", HTML: []byte("<html>2d</html>")},
	})
	muxRouter := mux.NewRouter()
	addr := freeAddr(t)
	srv := NewChartViewerHttpServer(NewRouter(chartHandler, muxRouter), muxRouter, addr, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()

	var res *http.Response
	require.Eventually(t, func() bool {
		var err error
		res, err = http.Get("http://" + addr + "/charts/crimes_per_time")
		return err == nil
	}, 2*time.Second, 20*time.Millisecond)
	body, err := io.ReadAll(res.Body)
	res.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "<html>2d</html>", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop after cancellation")
	}
}

func TestChartViewerHttpServer_AddressInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	muxRouter := mux.NewRouter()
	srv := NewChartViewerHttpServer(NewRouter(handlers.NewChartHandler(), muxRouter), muxRouter, ln.Addr().String(), time.Second)

	err = srv.Start(context.Background())
	assert.Error(t, err)
}
