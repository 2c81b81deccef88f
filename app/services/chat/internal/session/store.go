// Package session keeps the in-memory conversation registry. Conversations
// live for the process lifetime; there is no persistence and no eviction.
package session

import (
	"sync"

	"lourini/app/services/chat/internal/bot/dialog"
)

type Store struct {
	mu    sync.RWMutex
	convs map[string]*dialog.Conversation
}

func NewStore() *Store {
	return &Store{
		convs: make(map[string]*dialog.Conversation),
	}
}

func (s *Store) Put(id string, conv *dialog.Conversation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.convs[id] = conv
}

func (s *Store) Get(id string) (*dialog.Conversation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	conv, ok := s.convs[id]
	return conv, ok
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.convs)
}
