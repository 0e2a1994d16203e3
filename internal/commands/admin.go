package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/latoulicious/weather-dominator/internal/server"
	"github.com/latoulicious/weather-dominator/pkg/common"
	"github.com/latoulicious/weather-dominator/tools"
	"github.com/spf13/cobra"
)

func newStatsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show row counts for every table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.open()
			if err != nil {
				return err
			}
			stats, err := app.Manager.Stats(cmd.Context())
			if err != nil {
				return err
			}
			return app.render(cmd, app.Cards.Stats(stats))
		},
	}
}

func newDoctorCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check database connectivity, schema and transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.open()
			if err != nil {
				return err
			}
			return tools.DBCheck(cmd.Context(), app.DB, cmd.OutOrStdout())
		},
	}
}

func newPruneCommand(opts *rootOptions) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete weather logs, searches and system logs older than the retention period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.open()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("days") {
				days = app.Config.Database.CleanupDays
			}

			retention := common.NewRetentionManager(app.Manager, app.Config.Retention.Schedule, days, app.Loggers.CreateLogger("retention"))
			result, err := retention.RunOnce(cmd.Context())
			if err != nil {
				return err
			}
			return app.render(cmd, app.Cards.Pruned(days, result))
		},
	}

	cmd.Flags().IntVarP(&days, "days", "d", 0, "Retention in days (default: database.cleanup_days)")
	return cmd
}

func newServeCommand(opts *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON API and the retention scheduler",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.open()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = app.Config.Server.Addr
			}
			logger := app.commandLogger("serve")

			var retention *common.RetentionManager
			if app.Config.Retention.Enabled && app.Config.Database.CleanupDays > 0 {
				retention = common.NewRetentionManager(app.Manager, app.Config.Retention.Schedule, app.Config.Database.CleanupDays, app.Loggers.CreateLogger("retention"))
				if err := retention.Start(); err != nil {
					return err
				}
			}

			srv := server.New(addr, app.Weather, app.Store, app.Manager, app.Loggers.CreateLogger("server"))
			if err := srv.Start(); err != nil {
				if retention != nil {
					retention.Stop(context.Background())
				}
				return err
			}

			logger.Info("Weather Dominator is running. Press CTRL-C to exit.", map[string]interface{}{
				"addr": srv.Addr().String(),
			})

			// Wait here until CTRL-C or other term signal is received.
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
			defer stop()

			var serveErr error
			select {
			case <-ctx.Done():
			case serveErr = <-srv.Err():
			}

			logger.Info("Shutting down gracefully...", map[string]interface{}{
				"uptime": formatUptime(time.Since(startTime)),
			})

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if retention != nil {
				retention.Stop(shutdownCtx)
			}
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("API server shutdown error", err, nil)
			}

			logger.Info("Application shutdown complete", nil)
			if serveErr != nil {
				return fmt.Errorf("API server stopped: %w", serveErr)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default: server.addr)")
	return cmd
}
