package event

import (
	"sort"
	"sync"
	"time"
)

// MemoryStore keeps events in a plain slice behind a mutex. It backs the
// zero-config variant of the API and the handler tests.
type MemoryStore struct {
	mu     sync.Mutex
	nextID uint
	events []Event
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

func (s *MemoryStore) List() ([]Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Event, len(s.events))
	copy(out, s.events)
	// Newest first, matching the Postgres store's ordering.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryStore) GetByID(id uint) (*Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].ID == id {
			e := s.events[i]
			return &e, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) ListByCreator(email string) ([]Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Event
	for i := range s.events {
		if s.events[i].CreatedBy == email {
			out = append(out, s.events[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryStore) Create(e *Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = s.nextID
	s.nextID++
	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now
	s.events = append(s.events, *e)
	return nil
}

func (s *MemoryStore) Replace(e *Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].ID == e.ID {
			e.UpdatedAt = time.Now()
			s.events[i] = *e
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) Delete(id uint) (*Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].ID == id {
			removed := s.events[i]
			s.events = append(s.events[:i], s.events[i+1:]...)
			return &removed, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) Ping() error {
	return nil
}
