package service

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"loan-ledger/domain"
	"loan-ledger/metrics"
	"loan-ledger/repository"
)

// LoanService implements the loan lifecycle: origination, payment
// recording, and the ledger/overview read views. Every operation loads the
// full dataset from the store and, for writes, saves it back in full; the
// mutex keeps one process from interleaving its own load/save cycles.
type LoanService struct {
	mu    sync.Mutex
	store repository.Store
	cache repository.CacheRepository
}

// NewLoanService creates a LoanService on top of the given store and cache.
func NewLoanService(store repository.Store,
	cache repository.CacheRepository,
) *LoanService {
	return &LoanService{store: store, cache: cache}
}

func ledgerCacheKey(loanID string) string {
	return "ledger:" + loanID
}

// Lend originates a loan with simple (non-compounding) interest over the
// full term. Terms are rounded to 2 decimals at storage time and fixed for
// the life of the loan.
func (s *LoanService) Lend(req domain.LendRequest) (domain.LendResult, error) {

	if req.CustomerID == "" {
		return domain.LendResult{}, fmt.Errorf("%w: customer_id is required", ErrValidation)
	}
	if req.Amount <= 0 {
		return domain.LendResult{}, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if req.Amount > MaxLoanAmount {
		return domain.LendResult{}, fmt.Errorf("%w: amount exceeds the maximum of %.2f", ErrValidation, MaxLoanAmount)
	}
	if req.Years <= 0 {
		return domain.LendResult{}, fmt.Errorf("%w: years must be positive", ErrValidation)
	}
	if req.Years > MaxLoanYears {
		return domain.LendResult{}, fmt.Errorf("%w: years exceeds the maximum of %d", ErrValidation, MaxLoanYears)
	}
	if req.Rate <= 0 {
		return domain.LendResult{}, fmt.Errorf("%w: rate must be positive", ErrValidation)
	}
	if req.Rate > MaxRatePercent {
		return domain.LendResult{}, fmt.Errorf("%w: rate exceeds the maximum of %.2f%%", ErrValidation, MaxRatePercent)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.store.Load()
	if err != nil {
		return domain.LendResult{}, fmt.Errorf("load dataset: %w", err)
	}

	rate := req.Rate / 100
	interest := req.Amount * float64(req.Years) * rate
	total := req.Amount + interest
	emi := total / float64(req.Years*MonthsPerYear)

	loanID := strconv.Itoa(data.NextLoanID)
	loan := &domain.Loan{
		CustomerID:    req.CustomerID,
		Principal:     req.Amount,
		Years:         req.Years,
		Rate:          rate,
		TotalInterest: roundTo2Decimals(interest),
		TotalAmount:   roundTo2Decimals(total),
		EMIAmount:     roundTo2Decimals(emi),
		Payments:      []domain.Payment{},
	}

	data.Loans[loanID] = loan
	data.NextLoanID++

	customer, ok := data.Customers[req.CustomerID]
	if !ok {
		customer = &domain.Customer{}
		data.Customers[req.CustomerID] = customer
	}
	customer.LoanIDs = append(customer.LoanIDs, loanID)

	if err := s.store.Save(data); err != nil {
		return domain.LendResult{}, fmt.Errorf("save dataset: %w", err)
	}

	metrics.LoansOriginated.Inc()

	return domain.LendResult{
		LoanID:           loanID,
		TotalAmountToPay: loan.TotalAmount,
		MonthlyEMI:       loan.EMIAmount,
	}, nil
}

// Pay records a payment against a loan. A payment larger than the
// outstanding balance is capped at exactly that balance; a payment against
// a settled loan records nothing and reports FullyPaid.
func (s *LoanService) Pay(loanID string, amount float64) (domain.PaymentResult, error) {

	if loanID == "" || amount <= 0 {
		return domain.PaymentResult{}, fmt.Errorf("%w: loan ID and a positive amount are required", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.store.Load()
	if err != nil {
		return domain.PaymentResult{}, fmt.Errorf("load dataset: %w", err)
	}

	loan, ok := data.Loans[loanID]
	if !ok {
		return domain.PaymentResult{}, ErrLoanNotFound
	}

	status := Snapshot(loan)
	if status.BalanceAmount <= 0 {
		return domain.PaymentResult{LoanID: loanID, FullyPaid: true}, nil
	}

	// Cap at the outstanding balance; the excess is discarded.
	if amount > status.BalanceAmount {
		amount = status.BalanceAmount
	}
	applied := roundTo2Decimals(amount)

	loan.Payments = append(loan.Payments, domain.Payment{
		Amount: applied,
		Date:   time.Now().UTC(),
	})

	if err := s.store.Save(data); err != nil {
		return domain.PaymentResult{}, fmt.Errorf("save dataset: %w", err)
	}

	// Drop the cached ledger so the next read recomputes (not critical if it fails).
	if err := s.cache.Delete(ledgerCacheKey(loanID)); err != nil {
		log.Printf("Warning: failed to invalidate cached ledger for loan %s: %v", loanID, err)
	}

	metrics.PaymentsRecorded.Inc()

	return domain.PaymentResult{LoanID: loanID, AmountApplied: applied}, nil
}

// Ledger returns the current position and full payment history of a loan.
func (s *LoanService) Ledger(loanID string) (domain.LedgerView, error) {

	key := ledgerCacheKey(loanID)
	if cached, ok := s.cache.Get(key); ok {
		var view domain.LedgerView
		if err := json.Unmarshal([]byte(cached), &view); err == nil {
			return view, nil
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.store.Load()
	if err != nil {
		return domain.LedgerView{}, fmt.Errorf("load dataset: %w", err)
	}

	loan, ok := data.Loans[loanID]
	if !ok {
		return domain.LedgerView{}, ErrLoanNotFound
	}

	status := Snapshot(loan)
	view := domain.LedgerView{
		LoanID:        loanID,
		CustomerID:    loan.CustomerID,
		BalanceAmount: status.BalanceAmount,
		MonthlyEMI:    status.EMIAmount,
		EMIsLeft:      status.EMIsLeft,
		Transactions:  loan.Payments,
	}

	if raw, err := json.Marshal(view); err == nil {
		if err := s.cache.Set(key, string(raw)); err != nil {
			log.Printf("Warning: failed to cache ledger for loan %s: %v", loanID, err)
		}
	}

	return view, nil
}

// Overview summarizes every loan owned by a customer, in origination order.
func (s *LoanService) Overview(customerID string) (domain.CustomerOverview, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.store.Load()
	if err != nil {
		return domain.CustomerOverview{}, fmt.Errorf("load dataset: %w", err)
	}

	customer, ok := data.Customers[customerID]
	if !ok {
		return domain.CustomerOverview{}, ErrCustomerNotFound
	}

	loans := make([]domain.LoanSummary, 0, len(customer.LoanIDs))
	for _, id := range customer.LoanIDs {
		loan, ok := data.Loans[id]
		if !ok {
			continue
		}
		status := Snapshot(loan)
		loans = append(loans, domain.LoanSummary{
			LoanID:             id,
			PrincipalAmount:    status.Principal,
			TotalAmount:        status.TotalAmount,
			EMIAmount:          status.EMIAmount,
			TotalInterest:      status.TotalInterest,
			AmountPaidTillDate: status.AmountPaid,
			EMIsLeft:           status.EMIsLeft,
		})
	}

	return domain.CustomerOverview{CustomerID: customerID, Loans: loans}, nil
}
