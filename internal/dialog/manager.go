package dialog

import (
	"sync"
)

// Slot distinguishes the two subscription lifetimes the core manages: the
// conversation list lives as long as the participant is signed in, the
// message stream as long as a conversation is open.
type Slot int

const (
	SlotConversations Slot = iota
	SlotMessages

	slotCount
)

// State of one subscription slot.
type State int

const (
	StateClosed State = iota
	StateOpening
	StateActive
	StateErrored
)

type slotState struct {
	state State
	gen   uint64
	close func()
}

// Manager owns the lifecycle of the two live subscriptions. Invariants: at
// most one active subscription per slot, opening implies tearing down the
// predecessor first, closing is idempotent and deliveries from superseded
// generations are never admitted.
type Manager struct {
	mu    sync.Mutex
	slots [slotCount]slotState
}

func NewManager() *Manager {
	return &Manager{}
}

// Open transitions the slot through Closed -> Opening -> Active. The open
// callback dials the remote store and returns the feed's close function.
// The returned generation tags every delivery of this subscription for
// Admit. If a concurrent Open takes the slot first, ErrSuperseded is
// returned and the loser's feed is closed.
func (m *Manager) Open(slot Slot, open func() (func(), error)) (uint64, error) {
	m.mu.Lock()
	s := &m.slots[slot]
	m.closeLocked(s)
	s.gen++
	gen := s.gen
	s.state = StateOpening
	m.mu.Unlock()

	closeFn, err := open()

	m.mu.Lock()
	defer m.mu.Unlock()

	if s.gen != gen {
		if closeFn != nil {
			closeFn()
		}
		return 0, ErrSuperseded
	}

	if err != nil {
		s.state = StateClosed
		return 0, err
	}

	s.state = StateActive
	s.close = closeFn
	return gen, nil
}

// Close tears the slot down. Safe on an already closed slot and safe to
// call concurrently with an in-flight delivery: the generation bump makes
// Admit reject anything still in transit.
func (m *Manager) Close(slot Slot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := &m.slots[slot]
	m.closeLocked(s)
	s.gen++
}

func (m *Manager) closeLocked(s *slotState) {
	if s.close != nil {
		s.close()
		s.close = nil
	}
	s.state = StateClosed
}

// Fail parks the slot in StateErrored. Only the generation that observed
// the failure may report it; stale reporters are ignored. There is no
// automatic retry: only a fresh Open leaves the errored state.
func (m *Manager) Fail(slot Slot, gen uint64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := &m.slots[slot]
	if s.gen != gen || s.state != StateActive {
		return false
	}
	s.state = StateErrored
	return true
}

// Admit reports whether a delivery tagged with gen may still be applied.
func (m *Manager) Admit(slot Slot, gen uint64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := &m.slots[slot]
	if s.gen != gen {
		return false
	}
	return s.state == StateActive || s.state == StateOpening
}

// State returns the slot's current state.
func (m *Manager) State(slot Slot) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slots[slot].state
}
