package services

import (
	"consulting_site_go/models"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDecisionState(t *testing.T) {
	t.Run("Starts undecided", func(t *testing.T) {
		state := NewDecisionState()
		assert.Equal(t, models.DecisionSnapshot{}, state.Snapshot())
		assert.Equal(t, models.VatUnset, state.VatDecision())
		assert.False(t, state.Submitting())
	})

	t.Run("Setters write through", func(t *testing.T) {
		state := NewDecisionState()
		state.SetVatDecision(models.VatIncluded)
		state.SetFormComplete(true)
		state.SetLegalComplianceAccepted(true)
		state.SetShowPrimarySidebar(true)

		assert.Equal(t, models.VatIncluded, state.VatDecision())
		assert.True(t, state.IsFormComplete())
		assert.True(t, state.LegalComplianceAccepted())
		assert.True(t, state.ShowPrimarySidebar())

		state.SetVatDecision(models.VatUnset)
		assert.Equal(t, models.VatUnset, state.VatDecision())
	})

	t.Run("Subscribers see every write before the setter returns", func(t *testing.T) {
		state := NewDecisionState()
		var seen []models.DecisionSnapshot
		state.Subscribe(func(s models.DecisionSnapshot) { seen = append(seen, s) })

		state.SetVatDecision(models.VatExcluded)
		assert.Len(t, seen, 1)
		assert.Equal(t, models.VatExcluded, seen[0].VatDecision)

		state.SetFormComplete(true)
		assert.Len(t, seen, 2)
		assert.Equal(t, models.VatExcluded, seen[1].VatDecision)
		assert.True(t, seen[1].IsFormComplete)
	})

	t.Run("Subscriber can read state back", func(t *testing.T) {
		state := NewDecisionState()
		var readBack bool
		state.Subscribe(func(models.DecisionSnapshot) { readBack = state.LegalComplianceAccepted() })

		state.SetLegalComplianceAccepted(true)
		assert.True(t, readBack)
	})

	t.Run("Concurrent writers", func(t *testing.T) {
		state := NewDecisionState()
		var mu sync.Mutex
		calls := 0
		state.Subscribe(func(models.DecisionSnapshot) {
			mu.Lock()
			calls++
			mu.Unlock()
		})

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				state.SetFormComplete(i%2 == 0)
			}(i)
		}
		wg.Wait()
		assert.Equal(t, 50, calls)
	})

	t.Run("Submit guard", func(t *testing.T) {
		state := NewDecisionState()
		assert.True(t, state.beginSubmit())
		assert.True(t, state.Submitting())
		assert.False(t, state.beginSubmit())
		state.endSubmit()
		assert.False(t, state.Submitting())
		assert.True(t, state.beginSubmit())
	})
}

func TestDecisionRegistry(t *testing.T) {
	t.Run("Get returns the same state per visitor", func(t *testing.T) {
		registry := NewDecisionRegistry(time.Hour)
		a := registry.Get("visitor-a")
		a.SetVatDecision(models.VatIncluded)

		assert.Same(t, a, registry.Get("visitor-a"))
		assert.NotSame(t, a, registry.Get("visitor-b"))
		assert.Equal(t, models.VatUnset, registry.Get("visitor-b").VatDecision())
		assert.Equal(t, 2, registry.Len())
	})

	t.Run("Reset discards decisions", func(t *testing.T) {
		registry := NewDecisionRegistry(time.Hour)
		old := registry.Get("visitor")
		old.SetLegalComplianceAccepted(true)

		fresh := registry.Reset("visitor")
		assert.NotSame(t, old, fresh)
		assert.False(t, fresh.LegalComplianceAccepted())
		assert.Equal(t, 0, registry.Len())

		next := registry.Get("visitor")
		assert.NotSame(t, old, next)
		assert.False(t, next.LegalComplianceAccepted())
	})

	t.Run("Peek does not track new visitors", func(t *testing.T) {
		registry := NewDecisionRegistry(time.Hour)
		peeked := registry.Peek("crawler")
		assert.Equal(t, models.VatUnset, peeked.VatDecision())
		assert.Equal(t, 0, registry.Len())

		known := registry.Get("visitor")
		known.SetVatDecision(models.VatExcluded)
		assert.Same(t, known, registry.Peek("visitor"))
	})

	t.Run("Full registry drops the least recently used visitor", func(t *testing.T) {
		registry := NewDecisionRegistry(time.Hour)
		registry.maxEntries = 2

		old := registry.Get("old")
		old.touchedAt = time.Now().Add(-time.Hour)
		recent := registry.Get("recent")

		registry.Get("new")
		assert.Equal(t, 2, registry.Len())
		assert.Same(t, recent, registry.Get("recent"))
		assert.NotSame(t, old, registry.Peek("old"), "oldest visitor was evicted")
	})

	t.Run("Sweep evicts idle states", func(t *testing.T) {
		registry := NewDecisionRegistry(time.Minute)
		registry.Get("idle")

		assert.Equal(t, 0, registry.Sweep(time.Now()))
		assert.Equal(t, 1, registry.Sweep(time.Now().Add(2*time.Minute)))
		assert.Equal(t, 0, registry.Len())
	})

	t.Run("Non-positive TTL uses default", func(t *testing.T) {
		registry := NewDecisionRegistry(0)
		assert.Equal(t, DefaultDecisionTTL, registry.ttl)
	})

	t.Run("Sweeper stops", func(t *testing.T) {
		registry := NewDecisionRegistry(time.Nanosecond)
		registry.Get("visitor")

		stop := make(chan struct{})
		registry.StartSweeper(time.Millisecond, stop)
		assert.Eventually(t, func() bool { return registry.Len() == 0 }, time.Second, 5*time.Millisecond)
		close(stop)
	})
}
