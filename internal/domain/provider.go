package domain

import (
	"slices"

	dErrors "payrouter/pkg/domain-errors"
)

// ProviderStatus is the health state of an acquirer. Status is the only
// provider field mutated after load.
type ProviderStatus string

const (
	StatusHealthy ProviderStatus = "healthy"
	StatusDown    ProviderStatus = "down"
)

// ParseProviderStatus validates a status string from config or the admin API.
func ParseProviderStatus(s string) (ProviderStatus, error) {
	st := ProviderStatus(s)
	if !st.IsValid() {
		return "", dErrors.New(dErrors.CodeValidation, "status must be 'healthy' or 'down'")
	}
	return st, nil
}

// IsValid checks if the status is one of the supported enum values.
func (s ProviderStatus) IsValid() bool {
	return s == StatusHealthy || s == StatusDown
}

func (s ProviderStatus) String() string {
	return string(s)
}

// Provider is a downstream acquirer with its declared support constraints.
// Lower CostBps is cheaper; higher BaseWeight is preferred.
type Provider struct {
	ID         string         `json:"id"`
	Regions    []string       `json:"regions"`
	Currencies []string       `json:"currencies"`
	Schemes    []string       `json:"schemes"`
	Funding    []string       `json:"funding"`
	BaseWeight int            `json:"baseWeight"`
	CostBps    int            `json:"costBps"`
	Status     ProviderStatus `json:"status"`
}

// SupportsCurrency reports whether the provider accepts the currency.
func (p Provider) SupportsCurrency(currency string) bool {
	return slices.Contains(p.Currencies, currency)
}

// SupportsRegion reports whether the provider covers the region.
func (p Provider) SupportsRegion(region string) bool {
	return slices.Contains(p.Regions, region)
}

// SupportsScheme reports whether the provider accepts the card scheme.
func (p Provider) SupportsScheme(scheme string) bool {
	return slices.Contains(p.Schemes, scheme)
}

// SupportsFunding reports whether the provider accepts the funding type.
func (p Provider) SupportsFunding(funding string) bool {
	return slices.Contains(p.Funding, funding)
}
