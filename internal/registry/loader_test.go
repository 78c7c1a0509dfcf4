package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payrouter/internal/domain"
	dErrors "payrouter/pkg/domain-errors"
)

func TestParseConfig_Valid(t *testing.T) {
	data := []byte(`{
		"providers": [
			{
				"id": "acq_a",
				"regions": ["ZA"],
				"currencies": ["ZAR"],
				"schemes": ["visa"],
				"funding": ["debit"],
				"baseWeight": 50,
				"costBps": 100,
				"status": "healthy"
			},
			{
				"id": "acq_b",
				"regions": ["EU"],
				"currencies": ["EUR"],
				"baseWeight": 30,
				"costBps": 80,
				"status": "down"
			}
		]
	}`)

	providers, err := parseConfig(data)
	require.NoError(t, err)
	require.Len(t, providers, 2)

	assert.Equal(t, "acq_a", providers[0].ID)
	assert.Equal(t, domain.StatusHealthy, providers[0].Status)
	assert.Equal(t, "acq_b", providers[1].ID)
	assert.Equal(t, domain.StatusDown, providers[1].Status)
}

func TestParseConfig_MissingStatusDefaultsHealthy(t *testing.T) {
	data := []byte(`{"providers": [{"id": "acq_a", "regions": ["ZA"], "currencies": ["ZAR"], "baseWeight": 1, "costBps": 1}]}`)

	providers, err := parseConfig(data)
	require.NoError(t, err)
	require.Len(t, providers, 1)
	assert.Equal(t, domain.StatusHealthy, providers[0].Status)
}

func TestParseConfig_EmptyRegistryIsLegal(t *testing.T) {
	providers, err := parseConfig([]byte(`{"providers": []}`))
	require.NoError(t, err)
	assert.Empty(t, providers)
}

func TestParseConfig_Rejections(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "not valid json",
			data: `{"providers": [`,
		},
		{
			name: "missing id",
			data: `{"providers": [{"regions": ["ZA"], "currencies": ["ZAR"], "baseWeight": 1, "costBps": 1}]}`,
		},
		{
			name: "duplicate id",
			data: `{"providers": [
				{"id": "dup", "regions": ["ZA"], "currencies": ["ZAR"], "baseWeight": 1, "costBps": 1},
				{"id": "dup", "regions": ["ZA"], "currencies": ["ZAR"], "baseWeight": 1, "costBps": 1}
			]}`,
		},
		{
			name: "zero baseWeight",
			data: `{"providers": [{"id": "a", "regions": ["ZA"], "currencies": ["ZAR"], "baseWeight": 0, "costBps": 1}]}`,
		},
		{
			name: "negative baseWeight",
			data: `{"providers": [{"id": "a", "regions": ["ZA"], "currencies": ["ZAR"], "baseWeight": -5, "costBps": 1}]}`,
		},
		{
			name: "zero costBps",
			data: `{"providers": [{"id": "a", "regions": ["ZA"], "currencies": ["ZAR"], "baseWeight": 1, "costBps": 0}]}`,
		},
		{
			name: "no regions",
			data: `{"providers": [{"id": "a", "regions": [], "currencies": ["ZAR"], "baseWeight": 1, "costBps": 1}]}`,
		},
		{
			name: "no currencies",
			data: `{"providers": [{"id": "a", "regions": ["ZA"], "currencies": [], "baseWeight": 1, "costBps": 1}]}`,
		},
		{
			name: "unknown status",
			data: `{"providers": [{"id": "a", "regions": ["ZA"], "currencies": ["ZAR"], "baseWeight": 1, "costBps": 1, "status": "degraded"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			providers, err := parseConfig([]byte(tt.data))
			require.Error(t, err)
			assert.Nil(t, providers)
			assert.True(t, dErrors.Is(err, dErrors.CodeValidation))
		})
	}
}
