package routing

import (
	"time"

	"payrouter/internal/domain"
)

// Rejection reasons recorded on incompatible attempts. The first failing
// check wins; checks run in a fixed order so the reason is deterministic.
const (
	reasonProviderDown        = "provider_down"
	reasonCurrencyUnsupported = "currency_unsupported"
	reasonRegionUnsupported   = "region_unsupported"
	reasonSchemeUnsupported   = "scheme_unsupported"
	reasonFundingUnsupported  = "funding_unsupported"
)

// Filter narrows the provider set to those eligible for the transaction.
// Providers are evaluated in registry order; each rejected provider yields
// one incompatible Attempt carrying the first check it failed. The registry
// itself is never mutated here.
func Filter(tx domain.Transaction, providers []domain.Provider, now time.Time) (eligible []domain.Provider, attempts []domain.Attempt) {
	region := RegionOf(tx.DestinationCountry)

	for _, p := range providers {
		if reason := rejectionReason(tx, p, region); reason != "" {
			attempts = append(attempts, domain.Attempt{
				ProviderID: p.ID,
				Timestamp:  now,
				Outcome:    domain.OutcomeIncompatible,
				Reason:     reason,
				LatencyMs:  simulatedLatencyMs(8, 35),
			})
			continue
		}
		eligible = append(eligible, p)
	}
	return eligible, attempts
}

// rejectionReason runs the compatibility checks in their fixed order and
// returns the first failure, or "" when the provider is eligible. Scheme and
// funding checks are skipped entirely when the transaction omits them.
func rejectionReason(tx domain.Transaction, p domain.Provider, region string) string {
	if p.Status != domain.StatusHealthy {
		return reasonProviderDown
	}
	if !p.SupportsCurrency(tx.Currency) {
		return reasonCurrencyUnsupported
	}
	if !p.SupportsRegion(region) {
		return reasonRegionUnsupported
	}
	if tx.Scheme != "" && !p.SupportsScheme(tx.Scheme) {
		return reasonSchemeUnsupported
	}
	if tx.FundingType != "" && !p.SupportsFunding(tx.FundingType) {
		return reasonFundingUnsupported
	}
	return ""
}
