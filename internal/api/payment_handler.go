package api

import (
	"net/http"

	"storefront-be/internal/metrics"
	"storefront-be/internal/payment"
)

type payRequest struct {
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
}

type payResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// handlePay charges an arbitrary amount through the selected method,
// without creating an order.
func (h *Handler) handlePay(w http.ResponseWriter, r *http.Request) {
	var req payRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	method, err := payment.ParseMethod(req.Type)
	if err != nil {
		writeError(w, err)
		return
	}

	svc, err := payment.ForMethod(method)
	if err != nil {
		writeError(w, err)
		return
	}

	ok := svc.Pay(req.Amount)
	metrics.PaymentAttempts.
		WithLabelValues(string(method), metrics.PaymentResultLabel(ok)).
		Inc()

	resp := payResponse{Success: ok, Message: "Payment failed"}
	if ok {
		resp.Message = "Payment processed successfully"
	}
	writeJSON(w, http.StatusOK, resp)
}
