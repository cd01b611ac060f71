package service

import (
	"math"

	"loan-ledger/domain"
)

// roundTo2Decimals rounds a float64 to 2 decimal places.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// Snapshot derives a loan's financial position from its payment history.
// It is a pure function: amounts are summed at full precision and rounded
// only in the returned fields, and the EMI count is the ceiling of the
// outstanding balance over the fixed installment, never negative.
func Snapshot(loan *domain.Loan) domain.LoanStatus {
	var amountPaid float64
	for _, p := range loan.Payments {
		amountPaid += p.Amount
	}
	balance := loan.TotalAmount - amountPaid

	emisLeft := 0
	if loan.EMIAmount > 0 {
		emisLeft = int(math.Ceil(balance / loan.EMIAmount))
	}
	if emisLeft < 0 {
		emisLeft = 0
	}

	return domain.LoanStatus{
		Principal:     loan.Principal,
		TotalAmount:   loan.TotalAmount,
		EMIAmount:     loan.EMIAmount,
		TotalInterest: loan.TotalInterest,
		AmountPaid:    roundTo2Decimals(amountPaid),
		BalanceAmount: roundTo2Decimals(balance),
		EMIsLeft:      emisLeft,
	}
}
