package catalog

import "sync"

// Service owns the current catalog snapshot. The snapshot itself is
// immutable; Reload swaps in a fresh one from the repository, so readers
// always see a consistent catalog without locking per lookup.
type Service struct {
	repo Repository

	mu    sync.RWMutex
	store *Store
}

func NewService(repo Repository) (*Service, error) {
	store, err := repo.Load()
	if err != nil {
		return nil, err
	}
	return &Service{repo: repo, store: store}, nil
}

// Store returns the current snapshot. Callers keep using the returned
// pointer for a whole request; a concurrent reload does not affect it.
func (s *Service) Store() *Store {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store
}

// Reload re-reads the catalog from the repository and swaps the snapshot.
// On failure the previous snapshot stays in place.
func (s *Service) Reload() (*Store, error) {
	store, err := s.repo.Load()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.store = store
	s.mu.Unlock()
	return store, nil
}
