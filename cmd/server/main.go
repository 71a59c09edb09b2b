package main

import (
	"log"
	"net/http"

	"storefront-be/internal/api"
	"storefront-be/internal/config"
	"storefront-be/internal/db"
	"storefront-be/internal/logger"
	"storefront-be/internal/middleware"
	"storefront-be/internal/order"
	"storefront-be/internal/product"
	"storefront-be/internal/uid"
	"storefront-be/internal/user"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, userRepo, productRepo, uid.Default())

	handler := api.NewHandler(productSvc, userSvc, orderSvc)
	router := setupRouter(handler)

	logger.L().Info("server listening", zap.String("port", cfg.AppPort))
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, router))
}

// setupRouter wires the middleware chain:
// request-id → auth → rate limit → access log → routes.
func setupRouter(h *api.Handler) http.Handler {
	return logger.RequestIDMiddleware(
		middleware.AuthMiddleware(
			middleware.RateLimitMiddleware(
				middleware.LoggingMiddleware(h.Router()),
			),
		),
	)
}
