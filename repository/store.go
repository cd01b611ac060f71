package repository

import "loan-ledger/domain"

// Store persists the full dataset. Every operation loads the whole state
// and writes it back in one piece; there is no partial update.
type Store interface {
	Load() (domain.Dataset, error)
	Save(domain.Dataset) error
}
