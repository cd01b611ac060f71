package repository

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"loan-ledger/domain"
)

func TestJSONStoreLoad_MissingFile(t *testing.T) {

	store := NewJSONStore(filepath.Join(t.TempDir(), "data.json"))

	data, err := store.Load()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.NextLoanID != 1 {
		t.Errorf("expected next loan ID 1, got %d", data.NextLoanID)
	}
	if len(data.Loans) != 0 || len(data.Customers) != 0 {
		t.Errorf("expected empty dataset, got %+v", data)
	}
	if data.Loans == nil || data.Customers == nil {
		t.Error("maps should be initialized")
	}
}

func TestJSONStoreRoundTrip(t *testing.T) {

	path := filepath.Join(t.TempDir(), "data.json")
	store := NewJSONStore(path)

	orig := domain.NewDataset()
	orig.Loans["1"] = &domain.Loan{
		CustomerID:    "c1",
		Principal:     1200,
		Years:         1,
		Rate:          0.1,
		TotalInterest: 120,
		TotalAmount:   1320,
		EMIAmount:     110,
		Payments: []domain.Payment{
			{Amount: 110, Date: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)},
		},
	}
	orig.Customers["c1"] = &domain.Customer{LoanIDs: []string{"1"}}
	orig.NextLoanID = 2

	if err := store.Save(orig); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	loan, ok := loaded.Loans["1"]
	if !ok {
		t.Fatal("loan missing after round trip")
	}
	if loan.TotalAmount != 1320 || loan.CustomerID != "c1" {
		t.Errorf("loan fields mismatch: %+v", loan)
	}
	if len(loan.Payments) != 1 || loan.Payments[0].Amount != 110 {
		t.Errorf("payments mismatch: %+v", loan.Payments)
	}
	if loaded.NextLoanID != 2 {
		t.Errorf("expected next loan ID 2, got %d", loaded.NextLoanID)
	}
	if got := loaded.Customers["c1"].LoanIDs; len(got) != 1 || got[0] != "1" {
		t.Errorf("customer loan IDs mismatch: %v", got)
	}

	// The file on disk is human-readable (indented).
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read data file: %v", err)
	}
	if !strings.Contains(string(raw), "  \"loans\"") {
		t.Error("expected pretty-printed JSON on disk")
	}
}

func TestJSONStoreSave_Overwrites(t *testing.T) {

	path := filepath.Join(t.TempDir(), "data.json")
	store := NewJSONStore(path)

	first := domain.NewDataset()
	first.NextLoanID = 5
	if err := store.Save(first); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	second := domain.NewDataset()
	second.NextLoanID = 9
	if err := store.Save(second); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.NextLoanID != 9 {
		t.Errorf("expected next loan ID 9, got %d", loaded.NextLoanID)
	}
}

func TestJSONStoreLoad_CorruptFile(t *testing.T) {

	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	store := NewJSONStore(path)

	if _, err := store.Load(); err == nil {
		t.Fatal("expected error for corrupt data file")
	}
}
