package app

import (
	"github.com/avc/marketplace-escrow/internal/handlers"
	"github.com/avc/marketplace-escrow/internal/utils/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// setupRouter создает и настраивает роутер
func setupRouter(deps *dependencies, allowedOrigins []string, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Глобальные middleware
	setupMiddleware(r, allowedOrigins, logger)

	// Маршруты
	setupRoutes(r, deps.handlers, deps.jwtManager)

	return r
}

// setupMiddleware настраивает middleware для роутера
func setupMiddleware(r *chi.Mux, allowedOrigins []string, logger *zap.Logger) {
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(middleware.Compress(5))
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r *chi.Mux, h *handlerSet, jwtManager *jwt.Manager) {
	// Health check эндпоинты
	r.Get("/health", h.health.Health)
	r.Get("/ready", h.health.Ready)

	// Провайдер платежей подписывает тело, JWT не нужен
	r.Post("/api/webhooks/payments", h.webhook.Payments)

	// Защищенные эндпоинты
	r.Group(func(r chi.Router) {
		r.Use(handlers.AuthMiddleware(jwtManager))

		r.Route("/api/user", func(r chi.Router) {
			r.Post("/orders", h.orders.CreateOrder)
			r.Route("/orders/{id}", func(r chi.Router) {
				r.Get("/", h.orders.GetOrder)
				r.Post("/ship", h.orders.Ship())
				r.Post("/deliver", h.orders.Deliver())
				r.Post("/confirm", h.orders.Confirm())
				r.Post("/cancel", h.orders.Cancel())
				r.Post("/dispute", h.orders.OpenDispute)
			})

			r.Get("/balance", h.balance.GetBalance)
			r.Get("/ledger", h.balance.ListEntries)

			r.Get("/payouts", h.payouts.ListPayouts)
			r.Post("/payouts", h.payouts.RequestPayout)
			r.Post("/payouts/{id}/confirm", h.payouts.ConfirmPayout)
		})

		r.Route("/api/admin", func(r chi.Router) {
			r.Use(handlers.AdminOnly)

			r.Post("/disputes/{id}/review", h.admin.StartReview)
			r.Post("/disputes/{id}/resolve", h.admin.ResolveDispute)
			r.Post("/orders/{id}/release", h.admin.ReleaseOrder)
			r.Post("/orders/{id}/refund", h.admin.RefundOrder)
		})
	})
}
