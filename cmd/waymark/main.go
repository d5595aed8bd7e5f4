package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	clientcmd "github.com/rzbill/waymark/internal/cmd/client"
	serverrun "github.com/rzbill/waymark/internal/cmd/server"
	cfgpkg "github.com/rzbill/waymark/internal/config"
	logpkg "github.com/rzbill/waymark/pkg/log"
	"github.com/spf13/cobra"
)

func main() {
	// initialize logger for CLI
	// Respect WAYMARK_LOG_LEVEL for both CLI and server start output
	level := os.Getenv("WAYMARK_LOG_LEVEL")
	parsed, err := logpkg.ParseLevel(level)
	if err != nil || level == "" {
		parsed = logpkg.InfoLevel
	}
	logger := logpkg.NewLogger(
		logpkg.WithLevel(parsed),
		logpkg.WithFormatter(&logpkg.TextFormatter{}),
		logpkg.WithOutput(logpkg.NewConsoleOutput()),
	)

	// Redirect standard library logs (used by net/http) to our logger
	logpkg.RedirectStdLog(logger)

	rootCmd := &cobra.Command{
		Use:   "waymark",
		Short: "Waymark runtime CLI",
		Long:  "Waymark is a single-binary broadcast and route-telemetry runtime. This CLI manages the server and basic operations.",
	}

	// server start
	serverCmd := &cobra.Command{Use: "server", Short: "Server commands"}
	serverStartCmd := &cobra.Command{
		Use:     "start",
		Short:   "Start waymark server (gRPC and HTTP)",
		Aliases: []string{"run"},
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			grpcAddr, _ := cmd.Flags().GetString("grpc")
			httpAddr, _ := cmd.Flags().GetString("http")
			features, _ := cmd.Flags().GetString("features")
			watch, _ := cmd.Flags().GetBool("watch-features")
			logLevel, _ := cmd.Flags().GetString("log-level")
			logFormat, _ := cmd.Flags().GetString("log-format")

			var (
				cfg cfgpkg.Config
				err error
			)
			if configPath != "" {
				cfg, err = cfgpkg.Load(configPath)
			} else {
				cfg, err = cfgpkg.LoadDefault()
			}
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			cfgpkg.FromEnv(&cfg)

			// Flags win over file and env.
			if features != "" {
				cfg.FeaturesFile = features
			}
			if cmd.Flags().Changed("watch-features") {
				cfg.WatchFeatures = watch
			}
			if logLevel != "" {
				cfg.Log.Level = logLevel
				_ = os.Setenv("WAYMARK_LOG_LEVEL", logLevel)
			}
			if logFormat != "" {
				cfg.Log.Format = logFormat
				_ = os.Setenv("WAYMARK_LOG_FORMAT", logFormat)
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			if err := serverrun.Run(ctx, serverrun.Options{
				GRPCAddr: grpcAddr,
				HTTPAddr: httpAddr,
				Config:   cfg,
			}); err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			// brief delay to allow logs flush
			time.Sleep(100 * time.Millisecond)
			return nil
		},
	}
	serverStartCmd.Flags().String("config", "", "Config file path (JSON; if not specified, uses OS-specific config directory)")
	serverStartCmd.Flags().String("grpc", "", "gRPC listen address (default from config, :50051)")
	serverStartCmd.Flags().String("http", "", "HTTP listen address (default from config, :8080)")
	serverStartCmd.Flags().String("features", os.Getenv("WAYMARK_FEATURES_FILE"), "Route features file (GeoJSON-style; default embedded dataset)")
	serverStartCmd.Flags().Bool("watch-features", false, "Reload the features file when it changes on disk")
	serverStartCmd.Flags().String("log-level", os.Getenv("WAYMARK_LOG_LEVEL"), "Log level: debug|info|warn|error")
	serverStartCmd.Flags().String("log-format", os.Getenv("WAYMARK_LOG_FORMAT"), "Log format: text|json (default text)")
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)

	// topic commands
	topicCmd := clientcmd.NewTopicCommand(apiURL)
	rootCmd.AddCommand(topicCmd)

	// route commands
	routeCmd := clientcmd.NewRouteCommand()
	rootCmd.AddCommand(routeCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func apiURL() string {
	if v := os.Getenv("WAYMARK_HTTP"); v != "" {
		return v
	}
	return "http://127.0.0.1:8080"
}
