package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"payrouter/internal/domain"
	"payrouter/pkg/platform/httputil"
	"payrouter/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/registry_mocks.go -package=mocks Service

// Service defines the registry operations exposed to operators.
type Service interface {
	List(ctx context.Context) ([]domain.Provider, error)
	SetStatus(ctx context.Context, id string, status domain.ProviderStatus) error
	Reload(ctx context.Context) error
}

// Handler wires the admin endpoints to the provider registry.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a registry handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts the admin endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/providers", h.HandleListProviders)
	r.Post("/providers/{id}/status/{state}", h.HandleSetStatus)
	r.Post("/reload", h.HandleReload)
}

// HandleListProviders handles GET /admin/providers requests.
func (h *Handler) HandleListProviders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	providers, err := h.service.List(ctx)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromProviders(providers))
}

// HandleSetStatus handles POST /admin/providers/{id}/status/{state} requests.
func (h *Handler) HandleSetStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	providerID := chi.URLParam(r, "id")
	status, err := domain.ParseProviderStatus(chi.URLParam(r, "state"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.service.SetStatus(ctx, providerID, status); err != nil {
		h.logger.WarnContext(ctx, "status update rejected",
			"request_id", requestID,
			"provider_id", providerID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, StatusResponse{
		ProviderID: providerID,
		Status:     status.String(),
	})
}

// HandleReload handles POST /admin/reload requests. A rejected document keeps
// the previous provider set live, so the error response reflects the file on
// disk, not the serving state.
func (h *Handler) HandleReload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	if err := h.service.Reload(ctx); err != nil {
		h.logger.ErrorContext(ctx, "registry reload failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	providers, err := h.service.List(ctx)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	ids := make([]string, 0, len(providers))
	for _, p := range providers {
		ids = append(ids, p.ID)
	}
	httputil.WriteJSON(w, http.StatusOK, ReloadResponse{
		OK:        true,
		Providers: ids,
	})
}
