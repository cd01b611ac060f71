package service

import (
	"testing"

	"loan-ledger/domain"
)

func TestSnapshot_NoPayments(t *testing.T) {

	loan := &domain.Loan{
		Principal:     1200,
		TotalInterest: 120,
		TotalAmount:   1320,
		EMIAmount:     110,
	}

	status := Snapshot(loan)

	if status.AmountPaid != 0 {
		t.Errorf("expected amount paid 0, got %.2f", status.AmountPaid)
	}
	if status.BalanceAmount != 1320 {
		t.Errorf("expected balance 1320, got %.2f", status.BalanceAmount)
	}
	if status.EMIsLeft != 12 {
		t.Errorf("expected 12 EMIs left, got %d", status.EMIsLeft)
	}
}

func TestSnapshot_PartialPaymentRoundsUpEMIs(t *testing.T) {

	loan := &domain.Loan{
		TotalAmount: 1320,
		EMIAmount:   110,
		Payments: []domain.Payment{
			{Amount: 110},
			{Amount: 55},
		},
	}

	status := Snapshot(loan)

	if status.AmountPaid != 165 {
		t.Errorf("expected amount paid 165, got %.2f", status.AmountPaid)
	}
	if status.BalanceAmount != 1155 {
		t.Errorf("expected balance 1155, got %.2f", status.BalanceAmount)
	}
	// 1155 / 110 = 10.5, a partial installment still counts
	if status.EMIsLeft != 11 {
		t.Errorf("expected 11 EMIs left, got %d", status.EMIsLeft)
	}
}

func TestSnapshot_EMIsLeftNeverNegative(t *testing.T) {

	loan := &domain.Loan{
		TotalAmount: 100,
		EMIAmount:   30,
		Payments:    []domain.Payment{{Amount: 130}},
	}

	status := Snapshot(loan)

	if status.EMIsLeft != 0 {
		t.Errorf("expected 0 EMIs left on overpaid loan, got %d", status.EMIsLeft)
	}
}

func TestSnapshot_ZeroEMIAmount(t *testing.T) {

	loan := &domain.Loan{TotalAmount: 100}

	status := Snapshot(loan)

	if status.EMIsLeft != 0 {
		t.Errorf("expected 0 EMIs left when EMI is 0, got %d", status.EMIsLeft)
	}
}
