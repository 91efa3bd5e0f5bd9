package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/epistat/casetrend/pkg/cli/config"
	controller "github.com/epistat/casetrend/pkg/controller/http"
	"github.com/epistat/casetrend/pkg/domain/types"
	"github.com/epistat/casetrend/pkg/usecase"
	"github.com/epistat/casetrend/pkg/utils/apperr"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg   config.Server
		snapshotCfg config.Snapshot
	)

	flags := joinFlags(
		serverCfg.Flags(),
		snapshotCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Aggregate a snapshot and serve chart series over HTTP",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			daily, weekly, err := snapshotCfg.Configure()
			if err != nil {
				return err
			}

			cutoff, err := serverCfg.CutoffTime()
			if err != nil {
				return err
			}

			snapshotID := types.NewSnapshotID()
			selector := usecase.NewSeriesSelector(daily, weekly, cutoff)

			// Sanity check the precomputed series before exposing them
			for _, mode := range types.Modes() {
				series := selector.SeriesByMode(mode)
				if err := series.Validate(); err != nil {
					return goerr.Wrap(err, "aggregation produced an invalid series",
						goerr.V("mode", mode))
				}
			}

			logger.Info("Snapshot aggregated",
				slog.String("snapshotID", snapshotID.String()),
				slog.String("path", snapshotCfg.Path),
				slog.Int("dailyRecords", len(daily)),
				slog.Int("weeklyRecords", len(weekly)),
				slog.Time("cutoff", cutoff),
			)

			server := controller.NewServer(ctx, serverCfg.Addr, selector)

			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					apperr.Handle(ctx, goerr.Wrap(err, "HTTP server error"))
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
