package audit

import (
	"context"
	"log/slog"
)

// LogSink writes audit events to the structured log. Default sink when no
// Kafka brokers are configured.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Append(ctx context.Context, event Event) error {
	s.logger.InfoContext(ctx, "route decision",
		"payment_id", event.PaymentID,
		"provider_id", event.ProviderID,
		"rule_id", event.RuleID,
		"cache_hit", event.CacheHit,
		"eligible", event.Eligible,
		"rejected", event.Rejected,
		"request_id", event.RequestID,
	)
	return nil
}
