package domain

import "time"

// Loan is a loan record as persisted. The interest terms are fixed at
// origination and never recomputed; only Payments grows afterwards.
type Loan struct {
	CustomerID    string    `json:"customer_id"`
	Principal     float64   `json:"principal"`
	Years         int       `json:"years"`
	Rate          float64   `json:"rate"`
	TotalInterest float64   `json:"total_interest"`
	TotalAmount   float64   `json:"total_amount"`
	EMIAmount     float64   `json:"emi_amount"`
	Payments      []Payment `json:"payments"`
}

// Payment is an entry in a loan's payment history. Entries are append-only
// and immutable once recorded.
type Payment struct {
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
}

// Customer tracks the loans owned by one customer, in origination order.
type Customer struct {
	LoanIDs []string `json:"loan_ids"`
}

// Dataset is the full persisted state. Loan IDs are stringified integers
// assigned from NextLoanID, which starts at 1 and is never reused.
type Dataset struct {
	Loans      map[string]*Loan     `json:"loans"`
	Customers  map[string]*Customer `json:"customers"`
	NextLoanID int                  `json:"next_loan_id"`
}

// NewDataset returns an empty dataset ready for its first loan.
func NewDataset() Dataset {
	return Dataset{
		Loans:      make(map[string]*Loan),
		Customers:  make(map[string]*Customer),
		NextLoanID: 1,
	}
}
