package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/weathermux/weathermux/internal/config"
	"github.com/weathermux/weathermux/internal/server"
	"go.uber.org/zap"
)

var (
	configPath string
	serverCmd  = &cobra.Command{
		Use:   "server",
		Short: "Start the forecast aggregation server",
		Long:  `Start the HTTP server that queries every configured weather provider concurrently and serves the combined results.`,
		RunE:  runServer,
	}
)

func init() {
	serverCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to configuration file (default: ./config.yaml)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg := config.GetConfig()

	log.Info("Starting forecast aggregation server",
		zap.String("config_path", configPath),
		zap.Bool("telemetry_enabled", cfg.Telemetry.Enabled),
		zap.Int("server_port", cfg.Server.Port))

	srv := server.NewServer(log.Logger, tele)

	errChan := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		log.Error("Server error", zap.Error(err))
		return err
	case <-cmd.Context().Done():
		log.Info("Shutting down server")

		if err := srv.Shutdown(); err != nil {
			log.Error("Error during server shutdown", zap.Error(err))
			return err
		}

		if tele != nil {
			if err := tele.Shutdown(context.Background()); err != nil {
				log.Warn("Error during telemetry shutdown", zap.Error(err))
			}
		}

		log.Info("Server shutdown complete")
		return nil
	}
}
