package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/deckmock/deckmockd/pkg/config"
	"github.com/deckmock/deckmockd/pkg/control"
	"github.com/deckmock/deckmockd/pkg/logging"
	"github.com/deckmock/deckmockd/pkg/server"
)

// shutdownTimeout is the maximum time to wait for graceful shutdown.
const shutdownTimeout = 10 * time.Second

// serveFlags holds the flag values shared by the root and serve commands.
type serveFlags struct {
	port        int
	controlPort int
	configFile  string
	htmlFile    string
	logLevel    string
	logFormat   string
}

var serveFlagVals serveFlags

var serveCmd = &cobra.Command{
	Use:   "serve [port]",
	Short: "Start the mock deck server (default command)",
	Example: `  # Start with defaults on port 8080
  deckmockd serve

  # Start on port 3000 (positional, as the original dev script took it)
  deckmockd serve 3000

  # Start with a config file and the control API enabled
  deckmockd serve --config deckmockd.yaml --control-port 8081`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd, args)
	},
}

func initServeCmd() {
	rootCmd.AddCommand(serveCmd)
	registerServeFlags(serveCmd)
	registerServeFlags(rootCmd)
}

func registerServeFlags(cmd *cobra.Command) {
	f := &serveFlagVals
	cmd.Flags().IntVarP(&f.port, "port", "p", config.DefaultPort, "HTTP server port")
	cmd.Flags().IntVar(&f.controlPort, "control-port", 0, "Control API port (0 = disabled)")
	cmd.Flags().StringVarP(&f.configFile, "config", "c", "", "Path to YAML configuration file")
	cmd.Flags().StringVar(&f.htmlFile, "html", config.DefaultHTMLFile, "Path to the deck editor page")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&f.logFormat, "log-format", "text", "Log format (text, json)")
}

// buildConfig merges flag values over an optional config file over defaults.
// Only flags the user actually set override the file.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	f := &serveFlagVals

	cfg := config.Default()
	if f.configFile != "" {
		loaded, err := config.Load(f.configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Port = f.port
	}
	if flags.Changed("control-port") {
		cfg.ControlPort = f.controlPort
	}
	if flags.Changed("html") {
		cfg.HTMLFile = f.htmlFile
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = f.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = f.logFormat
	}

	// Positional port wins over everything, matching the original script's
	// `[port]` argument.
	if len(args) == 1 {
		port, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("invalid port %q", args[0])
		}
		cfg.Port = port
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.Logging.Level),
		Format: logging.ParseFormat(cfg.Logging.Format),
	})

	srv := server.New(cfg, server.WithLogger(log))
	if err := srv.Start(); err != nil {
		return err
	}

	var ctl *control.Server
	if cfg.ControlPort > 0 {
		ctl = control.NewServer(srv, cfg.ControlPort)
		ctl.SetLogger(log)
		if err := ctl.Start(); err != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = srv.Stop(shutdownCtx)
			return err
		}
	}

	fmt.Printf("Deck editor dev server → http://localhost:%d/\n", cfg.Port)
	fmt.Printf("Serving: %s\n", cfg.HTMLFile)
	if ctl != nil {
		fmt.Printf("Control API → http://localhost:%d/\n", cfg.ControlPort)
	}
	fmt.Println("Press Ctrl+C to stop.")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	fmt.Println("\nShutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if ctl != nil {
		if err := ctl.Stop(shutdownCtx); err != nil {
			log.Warn("control API shutdown error", "error", err)
		}
	}
	if err := srv.Stop(shutdownCtx); err != nil {
		return err
	}

	fmt.Println("Server stopped")
	return nil
}
