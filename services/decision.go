package services

import (
	"consulting_site_go/models"
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// DecisionState holds one visitor's in-session decisions.
// Setters do no validation; callers validate before writing.
// Every write is delivered synchronously to all subscribers before the setter returns.
type DecisionState struct {
	mu          sync.RWMutex
	state       models.DecisionSnapshot
	subscribers []func(models.DecisionSnapshot)
	touchedAt   time.Time

	// submitting is held while a contact submission is in flight
	submitting atomic.Bool
}

// NewDecisionState returns a state with every field undecided
func NewDecisionState() *DecisionState {
	return &DecisionState{touchedAt: time.Now()}
}

// Subscribe registers fn to receive a snapshot after every write.
func (d *DecisionState) Subscribe(fn func(models.DecisionSnapshot)) {
	d.mu.Lock()
	d.subscribers = append(d.subscribers, fn)
	d.mu.Unlock()
}

// Snapshot returns a copy of the current state
func (d *DecisionState) Snapshot() models.DecisionSnapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state
}

func (d *DecisionState) VatDecision() models.VatDecision {
	return d.Snapshot().VatDecision
}

func (d *DecisionState) SetVatDecision(decision models.VatDecision) {
	d.update(func(s *models.DecisionSnapshot) { s.VatDecision = decision })
}

func (d *DecisionState) IsFormComplete() bool {
	return d.Snapshot().IsFormComplete
}

func (d *DecisionState) SetFormComplete(complete bool) {
	d.update(func(s *models.DecisionSnapshot) { s.IsFormComplete = complete })
}

func (d *DecisionState) LegalComplianceAccepted() bool {
	return d.Snapshot().LegalComplianceAccepted
}

func (d *DecisionState) SetLegalComplianceAccepted(accepted bool) {
	d.update(func(s *models.DecisionSnapshot) { s.LegalComplianceAccepted = accepted })
}

func (d *DecisionState) ShowPrimarySidebar() bool {
	return d.Snapshot().ShowPrimarySidebar
}

func (d *DecisionState) SetShowPrimarySidebar(show bool) {
	d.update(func(s *models.DecisionSnapshot) { s.ShowPrimarySidebar = show })
}

// update applies fn under the write lock, then notifies subscribers outside it
// so a subscriber may read the state back.
func (d *DecisionState) update(fn func(*models.DecisionSnapshot)) {
	d.mu.Lock()
	fn(&d.state)
	d.touchedAt = time.Now()
	snapshot := d.state
	subscribers := append([]func(models.DecisionSnapshot){}, d.subscribers...)
	d.mu.Unlock()

	for _, sub := range subscribers {
		sub(snapshot)
	}
}

// Submitting reports whether a contact submission is in flight
func (d *DecisionState) Submitting() bool {
	return d.submitting.Load()
}

func (d *DecisionState) beginSubmit() bool {
	return d.submitting.CompareAndSwap(false, true)
}

func (d *DecisionState) endSubmit() {
	d.submitting.Store(false)
}

func (d *DecisionState) touch() {
	d.mu.Lock()
	d.touchedAt = time.Now()
	d.mu.Unlock()
}

func (d *DecisionState) lastTouched() time.Time {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.touchedAt
}

// DefaultDecisionTTL is how long an idle visitor's state is kept.
const DefaultDecisionTTL = 2 * time.Hour

// MaxDecisionStates caps how many visitors are tracked at once
const MaxDecisionStates = 10000

// DecisionRegistry maps visitor session ids to their decision state.
// Only visitors that interact get an entry; page views read through Peek.
type DecisionRegistry struct {
	mu         sync.Mutex
	states     map[string]*DecisionState
	ttl        time.Duration
	maxEntries int
}

// NewDecisionRegistry creates an empty registry. A non-positive ttl uses DefaultDecisionTTL.
func NewDecisionRegistry(ttl time.Duration) *DecisionRegistry {
	if ttl <= 0 {
		ttl = DefaultDecisionTTL
	}
	return &DecisionRegistry{
		states:     make(map[string]*DecisionState),
		ttl:        ttl,
		maxEntries: MaxDecisionStates,
	}
}

// Get returns the visitor's state, creating and tracking a fresh one if none exists.
// When the registry is full the least recently used visitor is dropped.
func (r *DecisionRegistry) Get(sessionID string) *DecisionState {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.states[sessionID]
	if !ok {
		if len(r.states) >= r.maxEntries {
			r.evictOldest()
		}
		state = NewDecisionState()
		r.states[sessionID] = state
		return state
	}
	state.touch()
	return state
}

// Peek returns the visitor's state without tracking a new one.
// Unknown visitors get an undecided state that is not stored.
func (r *DecisionRegistry) Peek(sessionID string) *DecisionState {
	r.mu.Lock()
	defer r.mu.Unlock()

	if state, ok := r.states[sessionID]; ok {
		state.touch()
		return state
	}
	return NewDecisionState()
}

// Reset discards the visitor's state and returns an undecided one.
// Called on every full page load; the next interaction starts tracking again.
func (r *DecisionRegistry) Reset(sessionID string) *DecisionState {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.states, sessionID)
	return NewDecisionState()
}

// evictOldest drops the least recently touched state. Callers hold r.mu.
func (r *DecisionRegistry) evictOldest() {
	var oldestID string
	var oldest time.Time
	for id, state := range r.states {
		if touched := state.lastTouched(); oldestID == "" || touched.Before(oldest) {
			oldestID, oldest = id, touched
		}
	}
	if oldestID != "" {
		delete(r.states, oldestID)
	}
}

// Len returns the number of tracked visitors
func (r *DecisionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.states)
}

// Sweep removes states idle for longer than the TTL and returns how many were removed
func (r *DecisionRegistry) Sweep(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, state := range r.states {
		if now.Sub(state.lastTouched()) > r.ttl {
			delete(r.states, id)
			removed++
		}
	}
	return removed
}

// StartSweeper runs Sweep every interval until stop is closed
func (r *DecisionRegistry) StartSweeper(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case now := <-ticker.C:
				if n := r.Sweep(now); n > 0 {
					log.Printf("[INFO] Evicted %d idle visitor decision states", n)
				}
			case <-stop:
				return
			}
		}
	}()
}
