package service

import (
	"sort"
	"sync"

	"github.com/MKhiriev/guild-sentry/models"
)

// MonitorState is the single shared state of a monitoring run. All access
// goes through its accessor methods; the mutex makes the ban latch and the
// message/exit-set updates safe against concurrent reads from every poller.
//
// The active flag is a monotonic latch: it starts true and transitions to
// false at most once per run, either through Trip (first ban detector wins)
// or Deactivate (external cancellation). It never returns to true.
type MonitorState struct {
	mu       sync.RWMutex
	active   bool
	initial  map[string]models.MembershipStatus
	messages map[string]string
	exited   map[string]struct{}
}

// NewMonitorState returns a MonitorState with the active flag latched open.
func NewMonitorState() *MonitorState {
	return &MonitorState{
		active:   true,
		initial:  make(map[string]models.MembershipStatus),
		messages: make(map[string]string),
		exited:   make(map[string]struct{}),
	}
}

// Active reports whether monitoring should keep running. Pollers check it at
// loop-top and treat it as authoritative.
func (s *MonitorState) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// Trip flips the active latch and reports whether this call won it. Exactly
// one caller per run observes true; a poller reaching its ban branch after
// another already tripped must skip its own fan-out.
func (s *MonitorState) Trip() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return false
	}
	s.active = false
	return true
}

// Deactivate flips the active latch without contending for the ban event.
// Used on external cancellation.
func (s *MonitorState) Deactivate() {
	s.mu.Lock()
	s.active = false
	s.mu.Unlock()
}

// SetInitial records the status captured for label before polling begins.
// The initial map is a read-only snapshot once pollers are running: callers
// must not invoke SetInitial after the monitoring phase starts.
func (s *MonitorState) SetInitial(label string, status models.MembershipStatus) {
	s.mu.Lock()
	s.initial[label] = status
	s.mu.Unlock()
}

// Initial returns the status captured for label before polling began.
func (s *MonitorState) Initial(label string) (models.MembershipStatus, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	status, ok := s.initial[label]
	return status, ok
}

// SetMessage records the last human-readable annotation for label.
func (s *MonitorState) SetMessage(label, message string) {
	s.mu.Lock()
	s.messages[label] = message
	s.mu.Unlock()
}

// Message returns the last annotation for label, or "".
func (s *MonitorState) Message(label string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.messages[label]
}

// MarkExited records that label's leave was confirmed (success or the
// idempotent already-absent result). Entries are never removed.
func (s *MonitorState) MarkExited(label string) {
	s.mu.Lock()
	s.exited[label] = struct{}{}
	s.mu.Unlock()
}

// HasExited reports whether label's leave was confirmed during fan-out.
func (s *MonitorState) HasExited(label string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.exited[label]
	return ok
}

// ExitedLabels returns the confirmed-exit set in stable order.
func (s *MonitorState) ExitedLabels() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	labels := make([]string, 0, len(s.exited))
	for label := range s.exited {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
