package state

import (
	"sync"

	"weatherbot/internal/domain"
)

// Store keeps the conversation state of every chat
type Store interface {
	Get(chatID int64) domain.ConversationState
	Set(chatID int64, state domain.ConversationState)
	Clear(chatID int64)
}

// MemoryStore is an in-memory Store. State is lost on restart.
type MemoryStore struct {
	states map[int64]domain.ConversationState
	mu     sync.RWMutex
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: make(map[int64]domain.ConversationState)}
}

// Get returns the chat's state, Idle when none is stored
func (s *MemoryStore) Get(chatID int64) domain.ConversationState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, exists := s.states[chatID]
	if !exists {
		return domain.Idle{}
	}
	return state
}

// Set replaces the chat's state. Setting Idle clears it.
func (s *MemoryStore) Set(chatID int64, state domain.ConversationState) {
	if state == nil || state.Step() == domain.StepIdle {
		s.Clear(chatID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[chatID] = state
}

// Clear resets the chat to Idle
func (s *MemoryStore) Clear(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, chatID)
}

// Len returns the number of chats with a flow in progress
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.states)
}
