// Package httpapi serves the admin and trainee JSON API.
package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/santgross/BIOFIT-EXPERT/internal/account"
	"github.com/santgross/BIOFIT-EXPERT/internal/auth"
	"github.com/santgross/BIOFIT-EXPERT/internal/logging"
	"github.com/santgross/BIOFIT-EXPERT/internal/progress"
	"github.com/santgross/BIOFIT-EXPERT/internal/store"
)

const (
	requestTimeout  = 30 * time.Second
	shutdownTimeout = 10 * time.Second
	maxBodyBytes    = 16 * 1024
)

// Deps are the services behind the API.
type Deps struct {
	Accounts *account.Service
	Tokens   *auth.Tokens
	Progress *progress.Service
	Store    *store.Store
	Logger   *slog.Logger
	Version  string
	Now      func() time.Time
}

// NewRouter builds the chi router with the default middleware stack.
func NewRouter(d Deps) *chi.Mux {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	h := &handlers{Deps: d}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(d.Logger))
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  slog.NewLogLogger(d.Logger.Handler(), slog.LevelInfo),
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/healthz", h.health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", h.login)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(d.Tokens))
			r.Get("/me/progress", h.myProgress)

			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.RequireAdmin)
				r.Get("/users", h.listUsers)
				r.Get("/users/export", h.exportUsers)
				r.Get("/stats", h.stats)
			})
		})
	})
	return r
}

// requestLogger puts a logger tagged with chi's request id into the request
// context.
func requestLogger(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := logging.WithRequestID(base, middleware.GetReqID(r.Context()))
			next.ServeHTTP(w, r.WithContext(logging.WithLogger(r.Context(), logger)))
		})
	}
}

// Run serves srv until ctx is cancelled or the process receives SIGINT or
// SIGTERM, then shuts down gracefully.
func Run(ctx context.Context, srv *http.Server, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case <-ctx.Done():
	case sig := <-sigCh:
		logger.Info("shutdown signal received", "signal", sig.String())
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
