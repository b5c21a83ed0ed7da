package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"signup/internal/user/models"
)

// InMemoryUserStore keeps records in an insertion-ordered slice. The mutex is
// required: handlers append from independently scheduled goroutines, and an
// unguarded slice append loses writes under preemptive scheduling.
type InMemoryUserStore struct {
	mu    sync.RWMutex
	users []models.UserRecord
}

func New() *InMemoryUserStore {
	return &InMemoryUserStore{}
}

// Append assigns the record an ID if it has none and adds it to the end of
// the collection.
func (s *InMemoryUserStore) Append(_ context.Context, record models.UserRecord) (string, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, record)
	return record.ID, nil
}

// List returns a copy of all stored records in insertion order.
func (s *InMemoryUserStore) List(_ context.Context) ([]models.UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.UserRecord{}, s.users...), nil
}
