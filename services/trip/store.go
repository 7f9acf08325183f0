package trip

import (
	"sync"

	"tripforge/models"
)

// Store holds the mutable state of one planning session: the accumulating
// trip draft, the active itinerary, and the chat transcript. It performs no
// validation; callers are expected to validate before mutating. Observers are
// notified after every mutation.
type Store struct {
	mu        sync.RWMutex
	draft     models.TripDraft
	itinerary *models.Itinerary
	messages  []models.ChatMessage
	observers []func()
}

// NewStore returns an empty session store.
func NewStore() *Store {
	return &Store{}
}

// Draft returns a deep copy of the current trip draft.
func (s *Store) Draft() models.TripDraft {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.draft.Clone()
}

// Itinerary returns the active itinerary, or nil before generation.
func (s *Store) Itinerary() *models.Itinerary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.itinerary
}

// Messages returns a copy of the transcript in append order.
func (s *Store) Messages() []models.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ChatMessage(nil), s.messages...)
}

// MergeDraft shallow-merges the patch into the draft. Set fields overwrite,
// nil fields are left untouched.
func (s *Store) MergeDraft(patch models.TripDraftPatch) {
	s.mu.Lock()
	patch.Apply(&s.draft)
	s.mu.Unlock()
	s.notify()
}

// AppendMessage adds one entry to the transcript.
func (s *Store) AppendMessage(role models.ChatRole, content string) {
	s.mu.Lock()
	s.messages = append(s.messages, models.ChatMessage{Role: role, Content: content})
	s.mu.Unlock()
	s.notify()
}

// SetItinerary replaces the active itinerary wholesale.
func (s *Store) SetItinerary(it *models.Itinerary) {
	s.mu.Lock()
	s.itinerary = it
	s.mu.Unlock()
	s.notify()
}

// ClearChat drops the transcript, keeping draft and itinerary.
func (s *Store) ClearChat() {
	s.mu.Lock()
	s.messages = nil
	s.mu.Unlock()
	s.notify()
}

// Subscribe registers a callback invoked after every mutation.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
}

func (s *Store) notify() {
	s.mu.RLock()
	obs := append([]func(){}, s.observers...)
	s.mu.RUnlock()
	for _, fn := range obs {
		fn()
	}
}
