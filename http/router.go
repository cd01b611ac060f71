package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the route table. API routes sit behind the rate
// limiter; health and metrics do not.
func NewRouter(h *LoanHandler, limiter *RateLimiter) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestLogging)
	r.Use(Metrics)

	r.Handle("/lend",
		RateLimitMiddleware(limiter, http.HandlerFunc(h.Lend)),
	).Methods(http.MethodPost)

	r.Handle("/payment",
		RateLimitMiddleware(limiter, http.HandlerFunc(h.Pay)),
	).Methods(http.MethodPost)

	r.Handle("/ledger/{loan_id}",
		RateLimitMiddleware(limiter, http.HandlerFunc(h.Ledger)),
	).Methods(http.MethodGet)

	r.Handle("/overview/{customer_id}",
		RateLimitMiddleware(limiter, http.HandlerFunc(h.Overview)),
	).Methods(http.MethodGet)

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r
}
