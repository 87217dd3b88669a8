package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mahmoud/cv-studio/internal/config"
	"github.com/mahmoud/cv-studio/internal/server"
	"github.com/mahmoud/cv-studio/internal/telemetry"
)

var (
	servePort       int
	serveConfigFile string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for editing, scoring, previewing and exporting the CV document.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config and PORT)")
	serveCmd.Flags().StringVarP(&serveConfigFile, "config", "c", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(serveConfigFile)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	srv, err := server.New(server.Config{
		Port:         cfg.Port,
		DatabaseURL:  cfg.DatabaseURL,
		DefaultTheme: cfg.DefaultTheme,
		Telemetry: telemetry.Config{
			URL:     cfg.TelemetryURL,
			Token:   cfg.TelemetryToken,
			Dataset: cfg.TelemetryDataset,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
