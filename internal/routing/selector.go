package routing

import (
	"math/rand/v2"
	"time"

	"payrouter/internal/domain"
	"payrouter/internal/routing/ports"
)

// systemSampler is the production Sampler. math/rand/v2's top-level functions
// are safe for concurrent use.
type systemSampler struct{}

func (systemSampler) Float64() float64 {
	return rand.Float64()
}

// simulatedLatencyMs returns a fake latency in [min, max]. No provider is
// ever called; the value only gives the audit trail realistic shape.
func simulatedLatencyMs(min, max int) int {
	return min + rand.IntN(max-min+1)
}

// scores computes the relative selection weight for each eligible provider:
// baseWeight scaled by cost advantage against the most expensive eligible
// option. A provider at max cost has cost factor exactly 1. costBps is
// validated positive at registry load, so there is no zero-division path.
func scores(eligible []domain.Provider) []float64 {
	maxCost := 0
	for _, p := range eligible {
		if p.CostBps > maxCost {
			maxCost = p.CostBps
		}
	}

	out := make([]float64, len(eligible))
	for i, p := range eligible {
		out[i] = float64(p.BaseWeight) * (float64(maxCost) / float64(p.CostBps))
	}
	return out
}

// Select draws one provider from the eligible set, with probability mass
// proportional to each provider's score. Ties are broken by the draw itself.
//
// Returns the chosen provider (nil when eligible is empty) and the
// considered/selected attempts: one considered Attempt per non-drawn
// provider in evaluation order, then the selected Attempt last.
func Select(eligible []domain.Provider, sampler ports.Sampler, now time.Time) (*domain.Provider, []domain.Attempt) {
	if len(eligible) == 0 {
		return nil, nil
	}

	weights := scores(eligible)
	total := 0.0
	for _, w := range weights {
		total += w
	}

	// Cumulative-weight draw over a single uniform sample. A lone eligible
	// provider is always drawn regardless of score.
	chosen := len(eligible) - 1
	r := sampler.Float64() * total
	cum := 0.0
	for i, w := range weights {
		cum += w
		if r < cum {
			chosen = i
			break
		}
	}

	attempts := make([]domain.Attempt, 0, len(eligible))
	for i, p := range eligible {
		if i == chosen {
			continue
		}
		attempts = append(attempts, domain.Attempt{
			ProviderID: p.ID,
			Timestamp:  now,
			Outcome:    domain.OutcomeConsidered,
			LatencyMs:  simulatedLatencyMs(10, 80),
		})
	}
	attempts = append(attempts, domain.Attempt{
		ProviderID: eligible[chosen].ID,
		Timestamp:  now,
		Outcome:    domain.OutcomeSelected,
		LatencyMs:  simulatedLatencyMs(10, 80),
	})

	selected := eligible[chosen]
	return &selected, attempts
}
