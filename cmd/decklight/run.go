package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"decklight/internal/config"
	"decklight/internal/deck"
	"decklight/internal/gha"
	"decklight/internal/scheduler"
)

// configEnvVar names an alternative way to point at a config file; the
// host's invocation line is not something users can edit per-install.
const configEnvVar = "DECKLIGHT_CONFIG"

// runCmd is the host-facing entry point.
//
// Flag parsing is disabled on the cobra side: the host passes
// single-dash long flags (-port, -pluginUUID, -registerEvent, -info),
// which pflag would misread as bundled shorthands. A stdlib FlagSet
// parses them instead.
var runCmd = &cobra.Command{
	Use:   "run -port <port> -pluginUUID <id> -registerEvent <event> -info <blob>",
	Short: "Connect to the panel host and start monitoring",
	Long: `Connect to the panel host and start monitoring.

This command is normally invoked by the host, which supplies the
websocket port, the plugin identity, the registration event name, and
an opaque info blob. Missing port, identity, or registration event is a
fatal startup error: without them no session can ever be established.

An optional -config flag (or the ` + configEnvVar + ` environment
variable) points at a decklight YAML config file for process-wide
settings such as the API base URL and log file.`,
	DisableFlagParsing: true,
	RunE:               runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// startupParams holds the host-supplied connection parameters.
type startupParams struct {
	Port          int
	PluginUUID    string
	RegisterEvent string
	Info          string
	ConfigPath    string
}

// parseStartupArgs parses the host's single-dash invocation flags.
func parseStartupArgs(args []string) (startupParams, error) {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var p startupParams
	fs.IntVar(&p.Port, "port", 0, "host websocket port")
	fs.StringVar(&p.PluginUUID, "pluginUUID", "", "plugin identity assigned by the host")
	fs.StringVar(&p.RegisterEvent, "registerEvent", "", "registration event name")
	fs.StringVar(&p.Info, "info", "", "opaque host info blob")
	fs.StringVar(&p.ConfigPath, "config", "", "path to a decklight config file")

	if err := fs.Parse(args); err != nil {
		return startupParams{}, err
	}

	if p.Port == 0 {
		return startupParams{}, errors.New("missing required -port")
	}
	if p.PluginUUID == "" {
		return startupParams{}, errors.New("missing required -pluginUUID")
	}
	if p.RegisterEvent == "" {
		return startupParams{}, errors.New("missing required -registerEvent")
	}
	return p, nil
}

// loadConfig resolves the process configuration: explicit flag, then
// environment variable, then built-in defaults.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		path = os.Getenv(configEnvVar)
	}
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// newLogger creates a JSON logger writing to the configured file. The
// host swallows the plugin's stdout, so a file is the only useful sink.
func newLogger(cfg config.Config) (*slog.Logger, func(), error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, err
	}

	path := cfg.LogFile
	if path == "" {
		path = filepath.Join(os.TempDir(), "decklight.log")
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level}))
	return logger, func() { _ = file.Close() }, nil
}

func runRun(cmd *cobra.Command, args []string) error {
	params, err := parseStartupArgs(args)
	if err != nil {
		return fmt.Errorf("invalid startup parameters: %w", err)
	}

	cfg, err := loadConfig(params.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info("starting",
		"version", version,
		"port", params.Port,
		"plugin_uuid", params.PluginUUID,
		"api_base_url", cfg.APIBaseURL,
	)

	conn, err := deck.Connect(params.Port, params.PluginUUID, params.RegisterEvent, logger)
	if err != nil {
		logger.Error("host connection failed", "error", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	client := gha.NewClient(cfg.APIBaseURL, cfg.RequestTimeout.Duration())
	defer client.Close()

	sched := scheduler.New(client, conn, logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go sched.Run(ctx)

	dispatch(ctx, conn, sched, logger)
	logger.Info("shutdown complete")
	return nil
}

// dispatch translates host events into scheduler calls until the
// context is cancelled or the host connection drops. Gesture timing
// uses arrival time; the host sends no timestamps of its own.
func dispatch(ctx context.Context, conn *deck.Conn, sched *scheduler.Scheduler, logger *slog.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-conn.Events():
			if !ok {
				// the plugin cannot outlive its host
				logger.Info("host connection closed")
				return
			}
			switch ev.Event {
			case deck.EventWillAppear:
				sched.Appear(ev.Context, ev.Payload.Settings)
			case deck.EventWillDisappear:
				sched.Disappear(ev.Context)
			case deck.EventDidReceiveSettings:
				sched.UpdateSettings(ev.Context, ev.Payload.Settings)
			case deck.EventKeyDown:
				sched.PressBegin(ev.Context, time.Now())
			case deck.EventKeyUp:
				sched.PressEnd(ev.Context, time.Now())
			default:
				// the host sends plenty of events we don't act on
			}
		}
	}
}
