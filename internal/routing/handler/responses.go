package handler

import (
	"time"

	"payrouter/internal/domain"
)

// RouteResponse is the HTTP response for POST /route. It mirrors the decision
// verbatim: retries with the same idempotency key receive this exact payload.
type RouteResponse struct {
	PaymentID  string            `json:"paymentId"`
	ProviderID string            `json:"providerId,omitempty"`
	RuleID     string            `json:"ruleId"`
	Attempts   []AttemptResponse `json:"attempts"`
}

// AttemptResponse is one audit entry of the decision trail.
type AttemptResponse struct {
	ProviderID string    `json:"providerId"`
	Timestamp  time.Time `json:"ts"`
	Outcome    string    `json:"outcome"`
	Reason     string    `json:"reason,omitempty"`
	LatencyMs  int       `json:"latencyMs"`
}

// FromDecision converts a domain decision to the HTTP response.
func FromDecision(decision *domain.RouteDecision) *RouteResponse {
	attempts := make([]AttemptResponse, 0, len(decision.Attempts))
	for _, a := range decision.Attempts {
		attempts = append(attempts, AttemptResponse{
			ProviderID: a.ProviderID,
			Timestamp:  a.Timestamp,
			Outcome:    string(a.Outcome),
			Reason:     a.Reason,
			LatencyMs:  a.LatencyMs,
		})
	}
	return &RouteResponse{
		PaymentID:  decision.PaymentID,
		ProviderID: decision.ProviderID,
		RuleID:     decision.RuleID,
		Attempts:   attempts,
	}
}
