// Package routing implements the acquirer decision engine: compatibility
// filtering, cost-biased weighted selection, attempt-trail assembly, and
// idempotency-keyed memoization. Every evaluation is a pure computation over
// a registry snapshot; "no candidate" is ordinary data, never an error.
package routing

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"payrouter/internal/audit"
	"payrouter/internal/domain"
	"payrouter/internal/routing/metrics"
	"payrouter/internal/routing/ports"
	dErrors "payrouter/pkg/domain-errors"
	"payrouter/pkg/requestcontext"
)

// Cache disposition labels for decision metrics.
const (
	cacheHit    = "hit"
	cacheMiss   = "miss"
	cacheBypass = "bypass"
)

// Service orchestrates one routing evaluation: cache check, filter, weighted
// draw, decision assembly, cache store. Safe for concurrent use.
type Service struct {
	providers ports.ProviderSource
	cache     ports.DecisionCache
	sampler   ports.Sampler
	publisher ports.AuditPublisher
	logger    *slog.Logger
	metrics   *metrics.Metrics
	tracer    trace.Tracer

	// group collapses concurrent first evaluations of the same idempotency
	// key into a single computation.
	group singleflight.Group
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher ports.AuditPublisher) Option {
	return func(s *Service) {
		s.publisher = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithSampler overrides the uniform random source. Tests use this to force
// exact selection outcomes.
func WithSampler(sampler ports.Sampler) Option {
	return func(s *Service) {
		s.sampler = sampler
	}
}

func New(providers ports.ProviderSource, cache ports.DecisionCache, opts ...Option) (*Service, error) {
	if providers == nil {
		return nil, fmt.Errorf("provider source is required")
	}
	if cache == nil {
		return nil, fmt.Errorf("decision cache is required")
	}

	svc := &Service{
		providers: providers,
		cache:     cache,
		sampler:   systemSampler{},
		logger:    slog.Default(),
		tracer:    otel.Tracer("payrouter/routing"),
	}

	for _, opt := range opts {
		opt(svc)
	}

	return svc, nil
}

// Route returns the decision for a transaction, either replayed from the
// idempotency cache or freshly computed. Retried requests with the same
// non-empty key always receive the same decision; a blank key bypasses the
// cache entirely and is never stored.
func (s *Service) Route(ctx context.Context, tx domain.Transaction) (*domain.RouteDecision, error) {
	key := tx.IdempotencyKey

	if key == "" {
		decision, err := s.evaluate(ctx, tx)
		if err != nil {
			return nil, err
		}
		s.finish(ctx, decision, cacheBypass)
		return decision, nil
	}

	if cached, err := s.cache.Get(ctx, key); err != nil {
		s.logger.WarnContext(ctx, "idempotency cache lookup failed, evaluating fresh",
			"idempotency_key", key,
			"error", err.Error(),
		)
	} else if cached != nil {
		s.finish(ctx, cached, cacheHit)
		return cached, nil
	}

	// Concurrent first requests for the same key race to compute; collapse
	// them so the key is evaluated once and every caller shares the result.
	v, err, _ := s.group.Do(key, func() (any, error) {
		if cached, err := s.cache.Get(ctx, key); err == nil && cached != nil {
			return cached, nil
		}
		decision, err := s.evaluate(ctx, tx)
		if err != nil {
			return nil, err
		}
		if err := s.cache.Put(ctx, key, decision); err != nil {
			s.logger.WarnContext(ctx, "failed to store decision in idempotency cache",
				"idempotency_key", key,
				"payment_id", tx.ID,
				"error", err.Error(),
			)
		}
		return decision, nil
	})
	if err != nil {
		return nil, err
	}

	decision := v.(*domain.RouteDecision)
	s.finish(ctx, decision, cacheMiss)
	return decision, nil
}

// evaluate runs the filter/score/record pipeline over the current registry
// snapshot. Every code path terminates in a well-defined decision.
func (s *Service) evaluate(ctx context.Context, tx domain.Transaction) (*domain.RouteDecision, error) {
	ctx, span := s.tracer.Start(ctx, "routing.evaluate",
		trace.WithAttributes(attribute.String("payment.id", tx.ID)))
	defer span.End()

	start := time.Now()
	now := requestcontext.Now(ctx)

	providers, err := s.providers.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list providers")
	}

	eligible, incompatible := Filter(tx, providers, now)
	chosen, evaluated := Select(eligible, s.sampler, now)
	decision := buildDecision(tx, chosen, incompatible, evaluated)

	span.SetAttributes(
		attribute.Int("providers.total", len(providers)),
		attribute.Int("providers.eligible", len(eligible)),
		attribute.String("decision.provider_id", decision.ProviderID),
	)

	s.metrics.ObserveEvaluateLatency(time.Since(start))
	s.metrics.ObserveProvidersEvaluated(len(providers))

	return decision, nil
}

// finish records metrics and emits the audit event for a served decision,
// cached or fresh.
func (s *Service) finish(ctx context.Context, decision *domain.RouteDecision, disposition string) {
	result := "selected"
	if !decision.Selected() {
		result = "no_candidate"
	}
	s.metrics.IncrementDecision(result, disposition)

	eligible, rejected := 0, 0
	for _, a := range decision.Attempts {
		if a.Outcome == domain.OutcomeIncompatible {
			rejected++
		} else {
			eligible++
		}
	}

	if s.publisher == nil {
		return
	}
	event := audit.Event{
		Timestamp:  requestcontext.Now(ctx),
		PaymentID:  decision.PaymentID,
		ProviderID: decision.ProviderID,
		RuleID:     decision.RuleID,
		CacheHit:   disposition == cacheHit,
		Eligible:   eligible,
		Rejected:   rejected,
		RequestID:  requestcontext.RequestID(ctx),
	}
	if err := s.publisher.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to emit decision audit event",
			"payment_id", decision.PaymentID,
			"error", err.Error(),
		)
	}
}
