package routing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payrouter/internal/domain"
)

func eligibleProvider(id string) domain.Provider {
	return domain.Provider{
		ID:         id,
		Regions:    []string{"ZA", "EU"},
		Currencies: []string{"ZAR", "EUR"},
		Schemes:    []string{"visa", "mastercard"},
		Funding:    []string{"debit", "credit"},
		BaseWeight: 50,
		CostBps:    100,
		Status:     domain.StatusHealthy,
	}
}

func zarTransaction() domain.Transaction {
	return domain.Transaction{
		ID:                 "pay_1",
		AmountMinor:        10000,
		Currency:           "ZAR",
		OriginCountry:      "ZA",
		DestinationCountry: "ZA",
		Scheme:             "visa",
		FundingType:        "debit",
	}
}

func TestRejectionReason(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Transaction, *domain.Provider)
		want   string
	}{
		{
			name:   "fully compatible",
			mutate: func(tx *domain.Transaction, p *domain.Provider) {},
			want:   "",
		},
		{
			name: "down provider",
			mutate: func(tx *domain.Transaction, p *domain.Provider) {
				p.Status = domain.StatusDown
			},
			want: reasonProviderDown,
		},
		{
			name: "unsupported currency",
			mutate: func(tx *domain.Transaction, p *domain.Provider) {
				tx.Currency = "USD"
			},
			want: reasonCurrencyUnsupported,
		},
		{
			name: "unsupported region",
			mutate: func(tx *domain.Transaction, p *domain.Provider) {
				p.Currencies = append(p.Currencies, "USD")
				tx.Currency = "USD"
				tx.DestinationCountry = "US"
			},
			want: reasonRegionUnsupported,
		},
		{
			name: "unsupported scheme",
			mutate: func(tx *domain.Transaction, p *domain.Provider) {
				tx.Scheme = "amex"
			},
			want: reasonSchemeUnsupported,
		},
		{
			name: "unsupported funding",
			mutate: func(tx *domain.Transaction, p *domain.Provider) {
				tx.FundingType = "prepaid"
			},
			want: reasonFundingUnsupported,
		},
		{
			name: "absent scheme skips the scheme check",
			mutate: func(tx *domain.Transaction, p *domain.Provider) {
				tx.Scheme = ""
				p.Schemes = nil
			},
			want: "",
		},
		{
			name: "absent funding skips the funding check",
			mutate: func(tx *domain.Transaction, p *domain.Provider) {
				tx.FundingType = ""
				p.Funding = nil
			},
			want: "",
		},
		{
			name: "down wins over unsupported currency",
			mutate: func(tx *domain.Transaction, p *domain.Provider) {
				p.Status = domain.StatusDown
				tx.Currency = "USD"
			},
			want: reasonProviderDown,
		},
		{
			name: "currency wins over unsupported scheme",
			mutate: func(tx *domain.Transaction, p *domain.Provider) {
				tx.Currency = "USD"
				tx.Scheme = "amex"
			},
			want: reasonCurrencyUnsupported,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := zarTransaction()
			p := eligibleProvider("acq_test")
			tt.mutate(&tx, &p)

			got := rejectionReason(tx, p, RegionOf(tx.DestinationCountry))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilter_SplitsEligibleFromIncompatible(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	down := eligibleProvider("acq_down")
	down.Status = domain.StatusDown
	usOnly := eligibleProvider("acq_us")
	usOnly.Currencies = []string{"USD"}

	providers := []domain.Provider{eligibleProvider("acq_a"), down, usOnly, eligibleProvider("acq_b")}

	eligible, attempts := Filter(zarTransaction(), providers, now)

	require.Len(t, eligible, 2)
	assert.Equal(t, "acq_a", eligible[0].ID)
	assert.Equal(t, "acq_b", eligible[1].ID)

	require.Len(t, attempts, 2)
	assert.Equal(t, "acq_down", attempts[0].ProviderID)
	assert.Equal(t, reasonProviderDown, attempts[0].Reason)
	assert.Equal(t, "acq_us", attempts[1].ProviderID)
	assert.Equal(t, reasonCurrencyUnsupported, attempts[1].Reason)

	for _, a := range attempts {
		assert.Equal(t, domain.OutcomeIncompatible, a.Outcome)
		assert.Equal(t, now, a.Timestamp)
		assert.GreaterOrEqual(t, a.LatencyMs, 8)
		assert.LessOrEqual(t, a.LatencyMs, 35)
	}
}

func TestFilter_EmptyProviderSet(t *testing.T) {
	eligible, attempts := Filter(zarTransaction(), nil, time.Now())
	assert.Empty(t, eligible)
	assert.Empty(t, attempts)
}
