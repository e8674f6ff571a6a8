// Package main is the entry point for the welcome service HTTP server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/sebasr/welcome-service/internal/config"
	"github.com/sebasr/welcome-service/internal/greeting"
	"github.com/sebasr/welcome-service/internal/logging"
	"github.com/sebasr/welcome-service/internal/server"
)

// Populated at build-time via -ldflags flag.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand(run).Run(ctx, os.Args); err != nil {
		log.Fatal().Err(err).Msg("welcome-server failed")
	}
}

func newCommand(action func(context.Context, *cli.Command) error) *cli.Command {
	return &cli.Command{
		Name:    "welcome-server",
		Usage:   "Serve greetings over HTTP",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "port",
				Usage: "port to listen on (overrides PORT)",
			},
			&cli.StringFlag{
				Name:  "prefix",
				Usage: "path prefix the greeting routes are mounted under (overrides GREETING_PREFIX)",
			},
			&cli.BoolFlag{
				Name:  "escape-names",
				Usage: "HTML escape names before echoing them (overrides GREETING_ESCAPE_NAMES)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level: debug, info, warn, error (overrides LOG_LEVEL)",
			},
		},
		Action: action,
	}
}

func run(ctx context.Context, c *cli.Command) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}
	log.Logger = logger

	greeter := greeting.NewRouter(greeting.WithEscaping(cfg.Greeting.EscapeNames))
	router := server.New(&server.Dependencies{
		Config:  cfg,
		Greeter: greeter,
		Logger:  logger,
		Version: version,
	})

	logger.Info().
		Str("addr", cfg.Server.Addr()).
		Str("prefix", cfg.Greeting.Prefix).
		Bool("escape_names", greeter.Escaping()).
		Int64("rate_limit", cfg.RateLimit.Limit).
		Msg("starting server")

	if err := server.Run(ctx, router, cfg.Server.Addr(), cfg.Server.ShutdownTimeout); err != nil {
		return err
	}

	logger.Info().Msg("server stopped")
	return nil
}

// loadConfig reads the environment, applies flag overrides and only then
// validates, so a flag can replace an invalid environment value.
func loadConfig(c *cli.Command) (*config.Config, error) {
	cfg := config.FromEnv()
	applyFlags(cfg, c)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// applyFlags overrides environment configuration with explicitly set flags
func applyFlags(cfg *config.Config, c *cli.Command) {
	if c.IsSet("port") {
		cfg.Server.Port = c.String("port")
	}
	if c.IsSet("prefix") {
		cfg.Greeting.Prefix = c.String("prefix")
	}
	if c.IsSet("escape-names") {
		cfg.Greeting.EscapeNames = c.Bool("escape-names")
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = strings.ToLower(c.String("log-level"))
	}
}
