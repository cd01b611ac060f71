package domain

// LendRequest carries the origination parameters. Rate is an annual
// percentage (10 means 10%).
type LendRequest struct {
	CustomerID string  `json:"customer_id"`
	Amount     float64 `json:"amount"`
	Years      int     `json:"years"`
	Rate       float64 `json:"rate"`
}

// LendResult reports the terms of a newly originated loan.
type LendResult struct {
	LoanID           string
	TotalAmountToPay float64
	MonthlyEMI       float64
}

// PaymentResult reports what a pay operation actually did. When FullyPaid
// is set the loan was already settled and nothing was recorded.
type PaymentResult struct {
	LoanID        string
	AmountApplied float64
	FullyPaid     bool
}

// LoanStatus is the derived financial position of a loan, computed from its
// payment history on every read.
type LoanStatus struct {
	Principal     float64
	TotalAmount   float64
	EMIAmount     float64
	TotalInterest float64
	AmountPaid    float64
	BalanceAmount float64
	EMIsLeft      int
}

// LedgerView is the per-loan ledger returned to clients.
type LedgerView struct {
	LoanID        string    `json:"loan_id"`
	CustomerID    string    `json:"customer_id"`
	BalanceAmount float64   `json:"balance_amount"`
	MonthlyEMI    float64   `json:"monthly_emi"`
	EMIsLeft      int       `json:"emis_left"`
	Transactions  []Payment `json:"transactions"`
}

// LoanSummary is one row of a customer's overview.
type LoanSummary struct {
	LoanID             string  `json:"loan_id"`
	PrincipalAmount    float64 `json:"principal_amount"`
	TotalAmount        float64 `json:"total_amount"`
	EMIAmount          float64 `json:"emi_amount"`
	TotalInterest      float64 `json:"total_interest"`
	AmountPaidTillDate float64 `json:"amount_paid_till_date"`
	EMIsLeft           int     `json:"emis_left"`
}

// CustomerOverview lists every loan owned by a customer, in the order they
// were originated.
type CustomerOverview struct {
	CustomerID string        `json:"customer_id"`
	Loans      []LoanSummary `json:"loans"`
}
