// Package registry owns the in-memory provider set loaded from a JSON file.
// Readers always see a complete generation: reloads validate the whole
// document first and swap atomically, and a failed reload leaves the
// previous set untouched.
package registry

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"payrouter/internal/domain"
	regmetrics "payrouter/internal/registry/metrics"
	dErrors "payrouter/pkg/domain-errors"
)

// Registry holds the live provider set. Insertion order from the file is
// preserved so evaluation order is stable across List calls.
type Registry struct {
	path    string
	logger  *slog.Logger
	metrics *regmetrics.Metrics

	mu        sync.RWMutex
	providers map[string]*domain.Provider
	order     []string
}

type Option func(*Registry)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

func WithMetrics(m *regmetrics.Metrics) Option {
	return func(r *Registry) {
		r.metrics = m
	}
}

// Load reads and validates the providers file at path. The initial load must
// succeed; there is no previous generation to fall back to.
func Load(path string, opts ...Option) (*Registry, error) {
	r := &Registry{
		path:   path,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := r.Reload(context.Background()); err != nil {
		return nil, fmt.Errorf("initial registry load: %w", err)
	}
	return r, nil
}

// Reload re-reads the providers file, validates the whole document, and
// atomically swaps the live set. Any failure leaves the current set in place
// and is reported to the caller.
func (r *Registry) Reload(ctx context.Context) error {
	data, err := os.ReadFile(r.path)
	if err != nil {
		r.metrics.IncrementReload("error")
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to read providers file")
	}

	providers, err := parseConfig(data)
	if err != nil {
		r.metrics.IncrementReload("invalid")
		r.logger.ErrorContext(ctx, "registry reload rejected, previous provider set kept",
			"path", r.path,
			"error", err.Error(),
		)
		return err
	}

	byID := make(map[string]*domain.Provider, len(providers))
	order := make([]string, 0, len(providers))
	for i := range providers {
		p := providers[i]
		byID[p.ID] = &p
		order = append(order, p.ID)
	}

	r.mu.Lock()
	r.providers = byID
	r.order = order
	r.mu.Unlock()

	r.metrics.IncrementReload("ok")
	r.metrics.SetProvidersLoaded(len(order))
	r.logger.InfoContext(ctx, "provider registry loaded",
		"path", r.path,
		"providers", len(order),
	)
	return nil
}

// List returns value copies of all providers in insertion order. Callers can
// hold the snapshot across a mutation without observing it.
func (r *Registry) List(ctx context.Context) ([]domain.Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Provider, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.providers[id])
	}
	return out, nil
}

// Get returns a copy of one provider.
func (r *Registry) Get(ctx context.Context, id string) (*domain.Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[id]
	if !ok {
		return nil, dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("provider %q not found", id))
	}
	cp := *p
	return &cp, nil
}

// SetStatus updates one provider's health status. The only mutation allowed
// outside a reload.
func (r *Registry) SetStatus(ctx context.Context, id string, status domain.ProviderStatus) error {
	if !status.IsValid() {
		return dErrors.New(dErrors.CodeValidation, "status must be 'healthy' or 'down'")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.providers[id]
	if !ok {
		return dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("provider %q not found", id))
	}
	p.Status = status

	r.metrics.IncrementStatusUpdate()
	r.logger.InfoContext(ctx, "provider status updated",
		"provider_id", id,
		"status", status.String(),
	)
	return nil
}

// Count returns the number of loaded providers.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
