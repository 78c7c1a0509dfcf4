// Package idempotency stores routing decisions keyed by client-supplied
// idempotency keys. A hit replays the stored decision verbatim; the caller
// never re-runs selection. Keys are opaque strings.
package idempotency

import (
	"context"

	"payrouter/internal/domain"
)

// Store is the decision cache contract. Get returns (nil, nil) on a miss.
// Stored decisions are immutable; later writers may overwrite the value for
// a key (last write wins across processes).
type Store interface {
	Get(ctx context.Context, key string) (*domain.RouteDecision, error)
	Put(ctx context.Context, key string, decision *domain.RouteDecision) error
}
