package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"crime-stats/config"
	"crime-stats/di"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	if err := newCommand(os.Stdout).Run(ctx, args); err != nil {
		return goerr.Wrap(err, "CLI execution failed")
	}
	return nil
}

func newCommand(stdout io.Writer) *cli.Command {
	var (
		loggerCfg config.Logger
		reportCfg config.Report
	)

	flags := append(loggerCfg.Flags(), reportCfg.Flags()...)

	return &cli.Command{
		Name:            "crime-stats",
		Usage:           "Count vehicle supplement police incidents per year, month, day of week and shift",
		Version:         "0.1.0",
		Flags:           flags,
		Writer:          stdout,
		HideHelpCommand: true,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, err := loggerCfg.Configure()
			if err != nil {
				return ctx, err
			}
			logger = logger.With(slog.String("run_id", uuid.NewString()))

			slog.SetDefault(logger)
			return ctxlog.With(ctx, logger), nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return runReports(ctx, reportCfg, stdout)
		},
	}
}

func runReports(ctx context.Context, cfg config.Report, stdout io.Writer) error {
	logger := ctxlog.From(ctx)
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger.Info("Starting crime stats", slog.Any("report", cfg))

	container, err := di.NewContainer(cfg, stdout)
	if err != nil {
		return err
	}

	pages, err := container.ReportService.Run(ctx, cfg.SourcePath())
	if err != nil {
		return err
	}

	if !cfg.Serve {
		return nil
	}

	container.ChartHandler.SetCharts(pages)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return container.ChartViewerHttpServer.Start(ctx)
}
