package idempotency

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payrouter/internal/domain"
)

func sampleDecision(paymentID string) *domain.RouteDecision {
	return &domain.RouteDecision{
		PaymentID:  paymentID,
		ProviderID: "acq_a",
		RuleID:     "v1_weighted_cost",
		Attempts: []domain.Attempt{
			{ProviderID: "acq_a", Outcome: domain.OutcomeSelected, LatencyMs: 42},
		},
	}
}

func TestInMemoryStore_GetMiss(t *testing.T) {
	store := NewInMemoryStore()

	decision, err := store.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, decision)
}

func TestInMemoryStore_PutThenGet(t *testing.T) {
	store := NewInMemoryStore()
	stored := sampleDecision("pay_1")

	require.NoError(t, store.Put(context.Background(), "key-1", stored))

	got, err := store.Get(context.Background(), "key-1")
	require.NoError(t, err)
	assert.Equal(t, stored, got)
	assert.Equal(t, 1, store.Len())
}

func TestInMemoryStore_LastWriteWins(t *testing.T) {
	store := NewInMemoryStore()

	require.NoError(t, store.Put(context.Background(), "key-1", sampleDecision("pay_1")))
	require.NoError(t, store.Put(context.Background(), "key-1", sampleDecision("pay_2")))

	got, err := store.Get(context.Background(), "key-1")
	require.NoError(t, err)
	assert.Equal(t, "pay_2", got.PaymentID)
	assert.Equal(t, 1, store.Len())
}

func TestInMemoryStore_ConcurrentAccess(t *testing.T) {
	store := NewInMemoryStore()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", i)
			assert.NoError(t, store.Put(context.Background(), key, sampleDecision(key)))
		}()
		go func() {
			defer wg.Done()
			_, err := store.Get(context.Background(), fmt.Sprintf("key-%d", i))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, store.Len())
}
