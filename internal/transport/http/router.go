// Package http assembles the service's HTTP surface: the public routing
// endpoint, the JWT-guarded admin endpoints, and the operational endpoints.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	registryhandler "payrouter/internal/registry/handler"
	routinghandler "payrouter/internal/routing/handler"

	"payrouter/internal/platform/metrics"
	"payrouter/internal/platform/middleware"
	"payrouter/pkg/platform/httputil"
)

const adminTimeout = 10 * time.Second

// ProviderCounter reports the size of the live provider set for health checks.
type ProviderCounter interface {
	Count() int
}

// Deps collects everything the router needs.
type Deps struct {
	Logger       *slog.Logger
	Metrics      *metrics.Metrics
	JWTValidator middleware.JWTValidator
	Routing      *routinghandler.Handler
	Registry     *registryhandler.Handler
	Providers    ProviderCounter
}

// New builds the chi router with the full middleware chain.
func New(deps Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Latency(deps.Metrics))

	r.Group(func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)
		deps.Routing.Register(r)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequireAdmin(deps.JWTValidator, deps.Logger))
		r.Use(middleware.Timeout(adminTimeout))
		r.Use(middleware.ContentTypeJSON)
		deps.Registry.Register(r)
	})

	r.Get("/health", handleHealth(deps.Providers))
	r.Handle("/metrics", promhttp.Handler())

	return r
}

func handleHealth(providers ProviderCounter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]any{
			"status":    "ok",
			"providers": providers.Count(),
		})
	}
}
