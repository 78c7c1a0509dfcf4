// Package audit captures decision audit events and fans them out to a sink.
// Events are transport-agnostic so sinks (log, Kafka, memory) can be swapped
// without touching the routing path.
package audit

import "time"

// Event records one served routing decision.
type Event struct {
	Timestamp  time.Time `json:"timestamp"`
	PaymentID  string    `json:"payment_id"`
	ProviderID string    `json:"provider_id,omitempty"`
	RuleID     string    `json:"rule_id"`
	CacheHit   bool      `json:"cache_hit"`
	Eligible   int       `json:"eligible"`
	Rejected   int       `json:"rejected"`
	RequestID  string    `json:"request_id,omitempty"`
}
