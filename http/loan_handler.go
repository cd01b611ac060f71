package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"loan-ledger/domain"
	"loan-ledger/service"
)

// Client-facing messages, kept stable as part of the API contract.
const (
	msgLoanApproved     = "Loan approved successfully."
	msgPaymentRecorded  = "Payment recorded successfully."
	msgAlreadyPaid      = "This loan is already fully paid."
	msgInvalidLend      = "Invalid or missing parameters."
	msgInvalidPayment   = "Loan ID and a positive amount are required."
	msgLoanNotFound     = "Loan not found."
	msgCustomerNotFound = "Customer not found."
)

type lendResponse struct {
	LoanID           string  `json:"loan_id"`
	Message          string  `json:"message"`
	TotalAmountToPay float64 `json:"total_amount_to_pay"`
	MonthlyEMI       float64 `json:"monthly_emi"`
}

type paymentRequest struct {
	LoanID string  `json:"loan_id"`
	Amount float64 `json:"amount"`
}

type paymentResponse struct {
	Message    string  `json:"message"`
	LoanID     string  `json:"loan_id"`
	AmountPaid float64 `json:"amount_paid"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type LoanHandler struct {
	service *service.LoanService
}

func NewLoanHandler(service *service.LoanService) *LoanHandler {
	return &LoanHandler{service: service}
}

// Lend handles POST /lend.
func (h *LoanHandler) Lend(w http.ResponseWriter, r *http.Request) {

	var req domain.LendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidLend)
		return
	}

	result, err := h.service.Lend(req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			writeError(w, http.StatusBadRequest, msgInvalidLend)
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, lendResponse{
		LoanID:           result.LoanID,
		Message:          msgLoanApproved,
		TotalAmountToPay: result.TotalAmountToPay,
		MonthlyEMI:       result.MonthlyEMI,
	})
}

// Pay handles POST /payment.
func (h *LoanHandler) Pay(w http.ResponseWriter, r *http.Request) {

	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidPayment)
		return
	}

	result, err := h.service.Pay(req.LoanID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			writeError(w, http.StatusBadRequest, msgInvalidPayment)
		case errors.Is(err, service.ErrLoanNotFound):
			writeError(w, http.StatusNotFound, msgLoanNotFound)
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	if result.FullyPaid {
		writeJSON(w, http.StatusOK, messageResponse{Message: msgAlreadyPaid})
		return
	}

	writeJSON(w, http.StatusOK, paymentResponse{
		Message:    msgPaymentRecorded,
		LoanID:     result.LoanID,
		AmountPaid: result.AmountApplied,
	})
}

// Ledger handles GET /ledger/{loan_id}.
func (h *LoanHandler) Ledger(w http.ResponseWriter, r *http.Request) {

	loanID := mux.Vars(r)["loan_id"]

	view, err := h.service.Ledger(loanID)
	if err != nil {
		if errors.Is(err, service.ErrLoanNotFound) {
			writeError(w, http.StatusNotFound, msgLoanNotFound)
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// Overview handles GET /overview/{customer_id}.
func (h *LoanHandler) Overview(w http.ResponseWriter, r *http.Request) {

	customerID := mux.Vars(r)["customer_id"]

	overview, err := h.service.Overview(customerID)
	if err != nil {
		if errors.Is(err, service.ErrCustomerNotFound) {
			writeError(w, http.StatusNotFound, msgCustomerNotFound)
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, overview)
}

// Health handles GET /health.
func (h *LoanHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
