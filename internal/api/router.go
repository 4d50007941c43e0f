// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bankist/internal/api/handler"
	"bankist/internal/api/middleware"
)

// RouterOptions carries the cross-cutting pieces the router wires around the handlers.
type RouterOptions struct {
	Timeout     time.Duration
	RateLimiter *middleware.RateLimiter // nil disables rate limiting
	Gatherer    prometheus.Gatherer     // nil serves no /metrics
}

// NewRouter sets up and returns a new HTTP router.
func NewRouter(bankHandler *handler.BankHandler, opts RouterOptions, logger *slog.Logger) http.Handler {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = handler.DefaultTimeout
	}

	r := chi.NewRouter()

	// Global middlewares
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(timeout))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if opts.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}

	// Bank commands
	r.Group(func(r chi.Router) {
		if opts.RateLimiter != nil {
			r.Use(opts.RateLimiter.Handler)
		}
		r.Post("/login", bankHandler.Login)
		r.Post("/logout", bankHandler.Logout)
		r.Post("/transfers", bankHandler.Transfer)
		r.Post("/loans", bankHandler.RequestLoan)
		r.Post("/close", bankHandler.CloseAccount)
		r.Post("/sort", bankHandler.ToggleSort)
		r.Get("/account", bankHandler.GetAccount)
	})

	logger.Debug("routes registered", "timeout", timeout.String(), "rate_limited", opts.RateLimiter != nil)
	return r
}
