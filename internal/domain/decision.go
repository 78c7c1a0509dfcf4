package domain

import "time"

// AttemptOutcome tags what happened to a provider during one routing
// evaluation.
type AttemptOutcome string

const (
	// OutcomeIncompatible: the provider failed a compatibility check.
	OutcomeIncompatible AttemptOutcome = "incompatible"
	// OutcomeConsidered: the provider was eligible but not drawn.
	OutcomeConsidered AttemptOutcome = "considered"
	// OutcomeSelected: the provider won the weighted draw.
	OutcomeSelected AttemptOutcome = "selected"
)

// Attempt is one audit entry per provider evaluated for a transaction.
// Attempts are append-only within a single evaluation and ordered by
// evaluation order. LatencyMs is a simulated value; no provider is called.
type Attempt struct {
	ProviderID string         `json:"providerId"`
	Timestamp  time.Time      `json:"ts"`
	Outcome    AttemptOutcome `json:"outcome"`
	Reason     string         `json:"reason,omitempty"`
	LatencyMs  int            `json:"latencyMs"`
}

// RouteDecision is the output of one routing evaluation and the idempotency
// cache value. Immutable once constructed; cached decisions are shared by
// reference with every caller that retrieves them.
type RouteDecision struct {
	PaymentID  string    `json:"paymentId"`
	ProviderID string    `json:"providerId,omitempty"`
	RuleID     string    `json:"ruleId"`
	Attempts   []Attempt `json:"attempts"`
}

// Selected reports whether the decision carries a provider. A decision
// without one is valid data, not an error; the transport layer maps it to a
// service-unavailable response.
func (d *RouteDecision) Selected() bool {
	return d.ProviderID != ""
}
