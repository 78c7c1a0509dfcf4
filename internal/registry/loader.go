package registry

import (
	"encoding/json"
	"fmt"

	"payrouter/internal/domain"
	dErrors "payrouter/pkg/domain-errors"
)

// providersFile is the on-disk registry document shape.
type providersFile struct {
	Providers []providerEntry `json:"providers"`
}

type providerEntry struct {
	ID         string   `json:"id"`
	Regions    []string `json:"regions"`
	Currencies []string `json:"currencies"`
	Schemes    []string `json:"schemes"`
	Funding    []string `json:"funding"`
	BaseWeight int      `json:"baseWeight"`
	CostBps    int      `json:"costBps"`
	Status     string   `json:"status"`
}

// parseConfig validates a registry document into Provider entities. The whole
// document is rejected on the first invalid or duplicate entry so a reload
// can never partially apply.
func parseConfig(data []byte) ([]domain.Provider, error) {
	var file providersFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeValidation, "providers file is not valid JSON")
	}
	if len(file.Providers) == 0 {
		// An empty registry is legal; every transaction just gets an empty
		// decision until providers are loaded.
		return nil, nil
	}

	seen := make(map[string]struct{}, len(file.Providers))
	providers := make([]domain.Provider, 0, len(file.Providers))

	for i, entry := range file.Providers {
		if entry.ID == "" {
			return nil, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("provider %d: id is required", i))
		}
		if _, dup := seen[entry.ID]; dup {
			return nil, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("provider %q: duplicate id", entry.ID))
		}
		seen[entry.ID] = struct{}{}

		if entry.BaseWeight <= 0 {
			return nil, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("provider %q: baseWeight must be positive", entry.ID))
		}
		if entry.CostBps <= 0 {
			return nil, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("provider %q: costBps must be positive", entry.ID))
		}
		if len(entry.Regions) == 0 {
			return nil, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("provider %q: at least one region is required", entry.ID))
		}
		if len(entry.Currencies) == 0 {
			return nil, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("provider %q: at least one currency is required", entry.ID))
		}

		status := domain.StatusHealthy
		if entry.Status != "" {
			parsed, err := domain.ParseProviderStatus(entry.Status)
			if err != nil {
				return nil, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("provider %q: invalid status %q", entry.ID, entry.Status))
			}
			status = parsed
		}

		providers = append(providers, domain.Provider{
			ID:         entry.ID,
			Regions:    entry.Regions,
			Currencies: entry.Currencies,
			Schemes:    entry.Schemes,
			Funding:    entry.Funding,
			BaseWeight: entry.BaseWeight,
			CostBps:    entry.CostBps,
			Status:     status,
		})
	}

	return providers, nil
}
