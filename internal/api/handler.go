package api

import (
	"net/http"

	"storefront-be/internal/middleware"
	"storefront-be/internal/order"
	"storefront-be/internal/product"
	"storefront-be/internal/user"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handler struct {
	productSvc product.Service
	userSvc    user.Service
	orderSvc   order.Service
}

func NewHandler(productSvc product.Service, userSvc user.Service, orderSvc order.Service) *Handler {
	return &Handler{
		productSvc: productSvc,
		userSvc:    userSvc,
		orderSvc:   orderSvc,
	}
}

func (h *Handler) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /api/products", h.handleListProducts)
	mux.HandleFunc("GET /api/products/{id}", h.handleGetProduct)
	mux.HandleFunc("POST /api/products", h.handleCreateProduct)
	mux.HandleFunc("PUT /api/products/{id}", h.handleUpdateProduct)
	mux.HandleFunc("DELETE /api/products/{id}", h.handleDeleteProduct)

	mux.HandleFunc("POST /api/users", h.handleRegister)
	mux.HandleFunc("POST /api/login", h.handleLogin)
	mux.HandleFunc("GET /api/users/{id}", h.handleGetUser)

	mux.HandleFunc("POST /api/orders", middleware.RequireAuth(h.handleCreateOrder))
	mux.HandleFunc("GET /api/orders", h.handleListOrders)
	mux.HandleFunc("GET /api/orders/{id}", h.handleGetOrder)

	mux.HandleFunc("POST /api/payments/pay", h.handlePay)

	return mux
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
