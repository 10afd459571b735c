package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"arbiter/internal/app"
	"arbiter/internal/config"
)

func main() {
	cliApp := &cli.App{
		Name:  "arbiter",
		Usage: "bulk game scheduling console",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML config file", EnvVars: []string{"ARBITER_CONFIG"}},
			&cli.StringFlag{Name: "listen", Usage: "listen address", EnvVars: []string{"ARBITER_LISTEN_ADDR"}},
			&cli.StringFlag{Name: "data-dir", Usage: "data directory", EnvVars: []string{"ARBITER_DATA_DIR"}},
			&cli.StringFlag{Name: "db", Usage: "sqlite database path", EnvVars: []string{"ARBITER_DB_PATH"}},
			&cli.StringFlag{Name: "remote-url", Usage: "chess server base URL", EnvVars: []string{"ARBITER_REMOTE_URL"}},
			&cli.StringFlag{Name: "timezone", Usage: "zone form datetimes are typed in", EnvVars: []string{"ARBITER_TIMEZONE"}},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error", EnvVars: []string{"ARBITER_LOG_LEVEL"}},
			&cli.IntFlag{Name: "login-rate", Usage: "login attempts per minute and client", EnvVars: []string{"ARBITER_LOGIN_RATE"}},
			&cli.DurationFlag{Name: "request-timeout", Usage: "timeout for calls to the chess server", EnvVars: []string{"ARBITER_REQUEST_TIMEOUT"}},
			&cli.DurationFlag{Name: "session-max-idle", Usage: "drop sessions idle for longer than this", EnvVars: []string{"ARBITER_SESSION_MAX_IDLE"}},
			&cli.BoolFlag{Name: "trust-proxy", Usage: "take client addresses from X-Forwarded-For/X-Real-IP", EnvVars: []string{"ARBITER_TRUST_PROXY"}},
		},
		Action: run,
	}
	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	application, err := app.New(cfg, log)
	if err != nil {
		return err
	}
	defer application.Close()

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           application.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Info("arbiter listening",
		zap.String("addr", cfg.ListenAddr),
		zap.String("remote", cfg.RemoteURL),
		zap.String("db", cfg.DBPath))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// loadConfig layers command line flags over the config file and environment.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return config.Config{}, err
	}
	if c.IsSet("listen") {
		cfg.ListenAddr = c.String("listen")
	}
	if c.IsSet("data-dir") {
		cfg.DataDir = c.String("data-dir")
	}
	if c.IsSet("db") {
		cfg.DBPath = c.String("db")
	}
	if c.IsSet("remote-url") {
		cfg.RemoteURL = c.String("remote-url")
	}
	if c.IsSet("timezone") {
		cfg.Timezone = c.String("timezone")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("login-rate") {
		cfg.LoginRate = c.Int("login-rate")
	}
	if c.IsSet("request-timeout") {
		cfg.RequestTimeout = c.Duration("request-timeout")
	}
	if c.IsSet("session-max-idle") {
		cfg.SessionMaxIdle = c.Duration("session-max-idle")
	}
	if c.IsSet("trust-proxy") {
		cfg.TrustProxy = c.Bool("trust-proxy")
	}
	return cfg, cfg.Validate()
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}
