package results

import (
	"errors"
	"sort"
	"sync"
)

var ErrNotFound = errors.New("result not found")

type Store interface {
	SaveResult(r TestResult) error
	GetResult(id string) (TestResult, error)
	// ListResults returns a session's results, newest first.
	ListResults(userSession string) ([]TestResult, error)
	DeleteResults(userSession string) error
}

type memoryStore struct {
	mu      sync.RWMutex
	results map[string]TestResult
}

func NewInMemoryStore() Store {
	return &memoryStore{results: map[string]TestResult{}}
}

func (m *memoryStore) SaveResult(r TestResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[r.ID] = r
	return nil
}

func (m *memoryStore) GetResult(id string) (TestResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.results[id]
	if !ok {
		return TestResult{}, ErrNotFound
	}
	return r, nil
}

func (m *memoryStore) ListResults(userSession string) ([]TestResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []TestResult
	for _, r := range m.results {
		if r.UserSession == userSession {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CompletedAt != out[j].CompletedAt {
			return out[i].CompletedAt > out[j].CompletedAt
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *memoryStore) DeleteResults(userSession string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, r := range m.results {
		if r.UserSession == userSession {
			delete(m.results, id)
		}
	}
	return nil
}
