package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"loan-ledger/domain"
)

// JSONStore keeps the dataset in a single pretty-printed JSON file.
// Writes go to a temp file first and are swapped in with rename, so an
// interrupted save never leaves a half-written file behind.
type JSONStore struct {
	path string
}

// NewJSONStore creates a store backed by the file at path. The file is
// created on the first Save.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Load reads the dataset from disk. A missing file yields an empty dataset
// with the loan counter at 1; an unreadable or corrupt file is an error.
func (s *JSONStore) Load() (domain.Dataset, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.NewDataset(), nil
	}
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	var data domain.Dataset
	if err := json.NewDecoder(f).Decode(&data); err != nil {
		return domain.Dataset{}, fmt.Errorf("decode data file: %w", err)
	}
	if data.Loans == nil {
		data.Loans = make(map[string]*domain.Loan)
	}
	if data.Customers == nil {
		data.Customers = make(map[string]*domain.Customer)
	}
	return data, nil
}

// Save writes the full dataset, replacing any previous state.
func (s *JSONStore) Save(data domain.Dataset) error {
	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create temp data file: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		return fmt.Errorf("encode dataset: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp data file: %w", err)
	}
	return os.Rename(tmp, s.path)
}
