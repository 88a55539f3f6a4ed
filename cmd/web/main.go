package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/de-tools/data-lens/pkg/server"
	"github.com/de-tools/data-lens/pkg/services/config"
	"github.com/de-tools/data-lens/pkg/services/quality"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the local report viewer server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "server.yaml",
		"Path to the server config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.LoadServerConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load server config: %w", err)
	}
	logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfgPath)

	addr := cfg.Addr
	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")
	if host != "" && port != "" {
		addr = net.JoinHostPort(host, port)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr:            addr,
		ShutdownTimeout: time.Duration(cfg.ShutdownSeconds) * time.Second,
		Dependencies: server.Dependencies{
			Analyzer:      quality.NewClient(cfg.ReportURL, nil),
			ReportBaseURL: cfg.ReportURL,
		},
	})

	return api.Start()
}
