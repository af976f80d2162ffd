// Package server assembles the HTTP surface: the chi router, Connect service
// handlers with their interceptors, health and metrics endpoints, and the
// optional static frontend.
package server

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/azizulsheikh/studio/internal/audit"
	"github.com/azizulsheikh/studio/internal/auth"
	"github.com/azizulsheikh/studio/internal/fund"
	"github.com/azizulsheikh/studio/internal/metrics"
	"github.com/azizulsheikh/studio/internal/middleware"
	"github.com/azizulsheikh/studio/internal/service"
	"github.com/azizulsheikh/studio/pkg/api"
)

// Options holds everything the router needs.
type Options struct {
	Fund          *fund.Service
	Authenticator auth.Authenticator
	JWT           *auth.JWTManager
	Events        audit.Logger

	// Metrics and Gatherer may be nil; /metrics is only served with a Gatherer.
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer

	Currency string

	// StaticDir, when set, is served for every non-API path.
	StaticDir string
}

// New builds the root handler.
func New(opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	if opts.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}

	interceptors := connect.WithInterceptors(
		middleware.MetricsInterceptor(opts.Metrics),
		middleware.LoggingInterceptor(),
		middleware.RequireAuth(opts.JWT, api.PublicProcedures...),
	)

	mount := func(path string, h http.Handler) {
		r.Handle(path+"*", h)
	}
	mount(api.NewMemberServiceHandler(service.NewMemberService(opts.Fund), interceptors))
	mount(api.NewPaymentServiceHandler(service.NewPaymentService(opts.Fund), interceptors))
	mount(api.NewExpenseServiceHandler(service.NewExpenseService(opts.Fund), interceptors))
	mount(api.NewReportServiceHandler(service.NewReportService(opts.Fund, opts.Currency), interceptors))
	mount(api.NewAuthServiceHandler(service.NewAuthService(opts.Authenticator, opts.JWT, slog.Default()), interceptors))
	if opts.Events != nil {
		mount(api.NewAuditServiceHandler(service.NewAuditService(opts.Events), interceptors))
	}

	if opts.StaticDir != "" {
		slog.Info("Serving static files", "path", opts.StaticDir)
		r.Handle("/*", staticHandler(opts.StaticDir))
	}

	return r
}

// staticHandler serves files from dir, falling back to index.html for
// unknown paths so client-side routes resolve.
func staticHandler(dir string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/beeffund.v1.") {
			http.NotFound(w, r)
			return
		}

		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}

		filePath := filepath.Join(dir, filepath.Clean("/"+urlPath))
		if info, err := os.Stat(filePath); err != nil || info.IsDir() {
			http.ServeFile(w, r, filepath.Join(dir, "index.html"))
			return
		}

		http.ServeFile(w, r, filePath)
	})
}
