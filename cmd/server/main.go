package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/iudanet/gophnotes/internal/server/handlers"
	"github.com/iudanet/gophnotes/internal/server/middleware"
	"github.com/iudanet/gophnotes/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const healthPath = "/api/v1/health"

// config параметры запуска сервера
type config struct {
	addr        string
	dbPath      string
	logLevel    string
	logFormat   string
	rateWindow  time.Duration
	rate        int
	trustProxy  bool
	showVersion bool
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// Show version and exit if requested
	if cfg.showVersion {
		printVersion(os.Stdout)
		os.Exit(0)
	}

	logger, err := newLogger(os.Stderr, cfg.logLevel, cfg.logFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("Server failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func parseFlags(args []string, output io.Writer) (*config, error) {
	cfg := &config{}

	fs := flag.NewFlagSet("gophnotes-server", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.addr, "addr", ":8080", "HTTP listen address")
	fs.StringVar(&cfg.dbPath, "db", "gophnotes.db", "Path to SQLite database")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.logFormat, "log-format", "text", "Log format (text, json)")
	fs.IntVar(&cfg.rate, "rate", 600, "Requests per client per rate window, 0 disables limiting")
	fs.DurationVar(&cfg.rateWindow, "rate-window", time.Minute, "Rate limit window")
	fs.BoolVar(&cfg.trustProxy, "trust-proxy", false, "Take client address from X-Forwarded-For")
	fs.BoolVar(&cfg.showVersion, "version", false, "Show version information")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.rate < 0 {
		return nil, fmt.Errorf("rate must not be negative, got %d", cfg.rate)
	}
	if cfg.rate > 0 && cfg.rateWindow <= 0 {
		return nil, fmt.Errorf("rate-window must be positive, got %s", cfg.rateWindow)
	}

	return cfg, nil
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q (use text or json)", format)
	}
}

// newRouter собирает маршруты и цепочку middleware
// Порядок: recovery -> logging -> rate limit -> handlers
func newRouter(logger *slog.Logger, db *sqlite.Storage, limiter *middleware.RateLimiter, version string) http.Handler {
	mux := http.NewServeMux()
	handlers.NewNotesHandler(logger, db).Register(mux)
	mux.HandleFunc("GET "+healthPath, handlers.NewHealthHandler(logger, db, version).Health)

	var h http.Handler = mux
	if limiter != nil {
		h = middleware.RateLimit(limiter, logger)(h)
	}
	h = middleware.Logging(logger, healthPath)(h)
	h = middleware.Recovery(logger)(h)
	return h
}

func run(ctx context.Context, cfg *config, logger *slog.Logger) error {
	db, err := sqlite.New(ctx, cfg.dbPath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close storage", "error", err)
		}
	}()

	var limiter *middleware.RateLimiter
	if cfg.rate > 0 {
		var opts []middleware.RateLimiterOption
		if cfg.trustProxy {
			opts = append(opts, middleware.WithTrustProxy())
		}
		limiter = middleware.NewRateLimiter(cfg.rate, cfg.rateWindow, opts...)
		go limiter.Run(ctx)
	}

	srv := &http.Server{
		Addr:              cfg.addr,
		Handler:           newRouter(logger, db, limiter, Version),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "addr", cfg.addr, "db", cfg.dbPath, "version", Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "GophNotes Server\n")
	fmt.Fprintf(w, "Version:    %s\n", Version)
	fmt.Fprintf(w, "Build Date: %s\n", BuildDate)
	fmt.Fprintf(w, "Git Commit: %s\n", GitCommit)
}
