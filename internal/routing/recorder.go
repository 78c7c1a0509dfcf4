package routing

import "payrouter/internal/domain"

// RuleVersion tags decisions with the algorithm revision that produced them.
const RuleVersion = "v1_weighted_cost"

// buildDecision assembles the immutable decision record: incompatibility
// attempts in filter order, then considered/selected attempts with the
// selected entry last. A nil chosen provider produces a valid decision with
// an empty provider id.
func buildDecision(tx domain.Transaction, chosen *domain.Provider, incompatible, evaluated []domain.Attempt) *domain.RouteDecision {
	attempts := make([]domain.Attempt, 0, len(incompatible)+len(evaluated))
	attempts = append(attempts, incompatible...)
	attempts = append(attempts, evaluated...)

	decision := &domain.RouteDecision{
		PaymentID: tx.ID,
		RuleID:    RuleVersion,
		Attempts:  attempts,
	}
	if chosen != nil {
		decision.ProviderID = chosen.ID
	}
	return decision
}
