package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jsboigeEpita/2025-Epita-Intelligence-Symbolique-sub023/internal/api/handlers"
	mw "github.com/jsboigeEpita/2025-Epita-Intelligence-Symbolique-sub023/internal/api/middleware"
	"github.com/jsboigeEpita/2025-Epita-Intelligence-Symbolique-sub023/internal/buildconfig"
	"github.com/jsboigeEpita/2025-Epita-Intelligence-Symbolique-sub023/internal/metrics"
	"github.com/jsboigeEpita/2025-Epita-Intelligence-Symbolique-sub023/internal/service"
	"go.uber.org/zap"
)

type Options struct {
	RateLimitRPS   float64
	RateLimitBurst int
	// APIToken guards mutating routes; empty leaves them open.
	APIToken string
}

// App holds the router and the service it exposes.
type App struct {
	Router    *chi.Mux
	Beliefs   *service.BeliefService
	Metrics   *metrics.Metrics
	startTime time.Time
}

// NewApp wires the belief service behind the HTTP API. ctx bounds the
// background work started by the middleware.
func NewApp(ctx context.Context, svc *service.BeliefService, m *metrics.Metrics, logger *zap.Logger, opts Options) *App {
	beliefHandler := handlers.NewBeliefHandler(svc)
	justificationHandler := handlers.NewJustificationHandler(svc)

	r := chi.NewRouter()
	app := &App{
		Router:    r,
		Beliefs:   svc,
		Metrics:   m,
		startTime: time.Now(),
	}

	// Global middleware (order matters)
	r.Use(mw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mw.Metrics(m))
	r.Use(mw.Logging(logger))
	r.Use(middleware.Recoverer)
	if opts.RateLimitRPS > 0 {
		r.Use(mw.RateLimit(ctx, opts.RateLimitRPS, opts.RateLimitBurst))
	}

	r.Get("/health", app.healthHandler())
	r.Method(http.MethodGet, "/metrics", m.Handler())

	r.Route("/v1", func(r chi.Router) {
		// Read-only surface used by renderers.
		r.Get("/graph", justificationHandler.Graph)
		r.Get("/beliefs", beliefHandler.List)
		r.Get("/beliefs/{id}", beliefHandler.Get)
		r.Get("/beliefs/{id}/justifications", beliefHandler.Justifications)
		r.Get("/beliefs/{id}/explain", beliefHandler.Explain)

		r.Group(func(r chi.Router) {
			r.Use(mw.BearerToken(opts.APIToken))

			r.Post("/beliefs", beliefHandler.Declare)
			r.Delete("/beliefs/{id}", beliefHandler.Delete)
			r.Put("/beliefs/{id}/validity", beliefHandler.ForceValidity)

			r.Post("/justifications", justificationHandler.Declare)
			r.Delete("/justifications/{id}", justificationHandler.Delete)
			r.Post("/rescan", justificationHandler.Rescan)
		})
	})

	return app
}

func (app *App) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":         "ok",
			"version":        buildconfig.Version(),
			"commit":         buildconfig.Commit(),
			"uptime_seconds": time.Since(app.startTime).Seconds(),
			"beliefs":        len(app.Beliefs.Beliefs()),
		})
	}
}
