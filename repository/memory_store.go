package repository

import "loan-ledger/domain"

// MemoryStore is an in-memory implementation of Store, used in tests and
// anywhere file persistence is not wanted.
type MemoryStore struct {
	data  domain.Dataset
	saves int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: domain.NewDataset()}
}

// Load returns the current dataset.
func (s *MemoryStore) Load() (domain.Dataset, error) {
	return s.data, nil
}

// Save replaces the current dataset.
func (s *MemoryStore) Save(data domain.Dataset) error {
	s.data = data
	s.saves++
	return nil
}

// SaveCount reports how many times Save has been called.
func (s *MemoryStore) SaveCount() int {
	return s.saves
}
