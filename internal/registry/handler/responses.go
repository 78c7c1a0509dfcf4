package handler

import "payrouter/internal/domain"

// ProviderResponse is one provider entry of the admin listing.
type ProviderResponse struct {
	ID         string   `json:"id"`
	Regions    []string `json:"regions"`
	Currencies []string `json:"currencies"`
	Schemes    []string `json:"schemes"`
	Funding    []string `json:"funding"`
	BaseWeight int      `json:"baseWeight"`
	CostBps    int      `json:"costBps"`
	Status     string   `json:"status"`
}

// ListResponse is the HTTP response for GET /admin/providers.
type ListResponse struct {
	Providers []ProviderResponse `json:"providers"`
	Count     int                `json:"count"`
}

// StatusResponse is the HTTP response for a status update.
type StatusResponse struct {
	ProviderID string `json:"providerId"`
	Status     string `json:"status"`
}

// ReloadResponse is the HTTP response for POST /admin/reload.
type ReloadResponse struct {
	OK        bool     `json:"ok"`
	Providers []string `json:"providers"`
}

// FromProviders converts registry snapshots to the admin listing response.
func FromProviders(providers []domain.Provider) *ListResponse {
	out := make([]ProviderResponse, 0, len(providers))
	for _, p := range providers {
		out = append(out, ProviderResponse{
			ID:         p.ID,
			Regions:    p.Regions,
			Currencies: p.Currencies,
			Schemes:    p.Schemes,
			Funding:    p.Funding,
			BaseWeight: p.BaseWeight,
			CostBps:    p.CostBps,
			Status:     p.Status.String(),
		})
	}
	return &ListResponse{
		Providers: out,
		Count:     len(out),
	}
}
