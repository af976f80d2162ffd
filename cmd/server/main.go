package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/azizulsheikh/studio/internal/audit"
	"github.com/azizulsheikh/studio/internal/auth"
	"github.com/azizulsheikh/studio/internal/config"
	"github.com/azizulsheikh/studio/internal/fund"
	"github.com/azizulsheikh/studio/internal/metrics"
	"github.com/azizulsheikh/studio/internal/oracle"
	"github.com/azizulsheikh/studio/internal/prioritize"
	"github.com/azizulsheikh/studio/internal/server"
	"github.com/azizulsheikh/studio/internal/storage/cache"
	"github.com/azizulsheikh/studio/internal/storage/jsonfile"
	"github.com/azizulsheikh/studio/internal/storage/sqlite"
	"github.com/azizulsheikh/studio/pkg/logging"
)

const auditBufferSize = 256

func main() {
	logging.Setup()

	if err := run(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	// Record store
	files, err := jsonfile.New(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	store := cache.New(files)
	store.OnInvalidate = func(c cache.Collection) { m.CacheInvalidated(string(c)) }
	defer store.Close()
	slog.Info("Storage initialized", "data_dir", files.Dir())

	// Audit trail
	events, err := sqlite.New(cfg.AuditDBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize audit log: %w", err)
	}
	defer events.Close()
	worker := audit.NewWorker(events, auditBufferSize, m.AuditDropped)
	worker.Start()
	defer worker.Shutdown()
	slog.Info("Audit log initialized", "database", cfg.AuditDBPath)

	// Fraud prioritization oracle
	var o oracle.Oracle = oracle.Unconfigured
	if cfg.GeminiAPIKey != "" {
		o = oracle.NewGeminiClient(cfg.GeminiAPIKey,
			oracle.WithEndpoint(cfg.OracleEndpoint),
			oracle.WithModel(cfg.OracleModel),
		)
		slog.Info("Prioritization oracle configured", "model", cfg.OracleModel, "timeout", cfg.OracleTimeout)
	} else {
		slog.Warn("GEMINI_API_KEY not set; payments will be returned unprioritized")
	}
	delegate := prioritize.New(o, cfg.OracleTimeout, m)

	f := fund.New(store, delegate, fund.WithAudit(worker), fund.WithMetrics(m))

	// Admin auth
	authenticator, err := newAuthenticator(cfg)
	if err != nil {
		return err
	}
	secret := cfg.JWTSecret
	if secret == "" {
		secret, err = randomSecret()
		if err != nil {
			return err
		}
		slog.Warn("JWT_SECRET not set; using a random secret, sessions end on restart")
	}
	jwtManager := auth.NewJWTManager(secret, cfg.TokenTTL)

	staticDir := ""
	if cfg.StaticPath != "" {
		if staticDir, err = filepath.Abs(cfg.StaticPath); err != nil {
			return fmt.Errorf("failed to resolve static path: %w", err)
		}
	}

	handler := server.New(server.Options{
		Fund:          f,
		Authenticator: authenticator,
		JWT:           jwtManager,
		Events:        events,
		Metrics:       m,
		Gatherer:      registry,
		Currency:      cfg.Currency,
		StaticDir:     staticDir,
	})

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", srv.Addr, "url", fmt.Sprintf("http://localhost%s", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

func newAuthenticator(cfg *config.Config) (auth.Authenticator, error) {
	if cfg.AdminPasswordHash != "" {
		return auth.NewPasswordAuthenticator(cfg.AdminPasswordHash)
	}
	if cfg.UsingDefaultPassword() {
		slog.Warn("ADMIN_PASSWORD_HASH and ADMIN_PASSWORD not set; using the default admin password")
	}
	return auth.NewPasswordAuthenticatorFromPlaintext(cfg.AdminPassword)
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate JWT secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}
