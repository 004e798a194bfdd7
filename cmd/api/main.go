package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yigit/gpacalc/internal/config"
	"github.com/yigit/gpacalc/internal/pkg/logger"
	"github.com/yigit/gpacalc/internal/server"
)

// @title GPA Calculator API
// @version 1.0
// @description Calculates the credit-weighted GPA of a course list
// @BasePath /

var configPath string

var rootCmd = &cobra.Command{
	Use:          "api",
	Short:        "Serve the GPA calculation API",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		srv, err := server.NewServer(configPath)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to initialize server")
			return err
		}

		// Run blocks until a shutdown signal arrives
		if err := srv.Run(); err != nil {
			logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
			return err
		}

		logger.Info().Msg("Application finished gracefully.")
		return nil
	},
}

func main() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to the configuration file")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
