// Package ports defines the interfaces the routing service depends on.
// Concrete implementations live in the registry, idempotency, and audit
// packages and are injected at wiring time so tests can swap them.
package ports

import (
	"context"

	"payrouter/internal/audit"
	"payrouter/internal/domain"
)

// ProviderSource exposes read access to the provider registry. The routing
// service never mutates providers; List returns a consistent snapshot in
// stable registry order.
type ProviderSource interface {
	List(ctx context.Context) ([]domain.Provider, error)
	Get(ctx context.Context, id string) (*domain.Provider, error)
}

// DecisionCache maps idempotency keys to previously produced decisions.
// Get returns (nil, nil) on a miss.
type DecisionCache interface {
	Get(ctx context.Context, key string) (*domain.RouteDecision, error)
	Put(ctx context.Context, key string, decision *domain.RouteDecision) error
}

// AuditPublisher emits decision audit events. Implementations must not block
// the routing path.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Sampler produces a uniform pseudo-random sample in [0, 1). Injected so
// tests can force exact selection outcomes.
type Sampler interface {
	Float64() float64
}
