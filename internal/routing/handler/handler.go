package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"payrouter/internal/domain"
	dErrors "payrouter/pkg/domain-errors"
	"payrouter/pkg/platform/httputil"
	"payrouter/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/routing_mocks.go -package=mocks Service

// Service defines the interface for routing operations.
type Service interface {
	Route(ctx context.Context, tx domain.Transaction) (*domain.RouteDecision, error)
}

// Handler wires the routing endpoint to the routing service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a routing handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts the routing endpoint on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/route", h.HandleRoute)
}

// HandleRoute handles POST /route requests. An empty-selection decision is
// valid engine output but maps to 503 at this boundary; only successful
// selections return the decision body.
func (h *Handler) HandleRoute(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[RouteRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	decision, err := h.service.Route(ctx, req.Tx())
	if err != nil {
		h.logger.ErrorContext(ctx, "routing evaluation failed",
			"request_id", requestID,
			"payment_id", req.ID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "route decided",
		"request_id", requestID,
		"payment_id", decision.PaymentID,
		"provider_id", decision.ProviderID,
		"rule_id", decision.RuleID,
		"attempts", len(decision.Attempts),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if !decision.Selected() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnavailable, "no provider available"))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromDecision(decision))
}
