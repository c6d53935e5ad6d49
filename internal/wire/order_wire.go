package wire

import (
	"hunarhub/internal/adaptor"
	"hunarhub/internal/data/entity"
	"hunarhub/internal/data/repository"
	"hunarhub/pkg/middleware"
	"hunarhub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.AuthSession(repo.Session, repo.User, config.Session.CookieName, log)

	// ==================== PROTECTED ROUTES (customer) ====================
	r.Group(func(r chi.Router) {
		r.Use(auth)
		r.Use(middleware.RequireRole(string(entity.RoleCustomer), log))

		// POST /api/orders - Place an order for a product
		r.Post("/api/orders", orderHandler.CreateOrder)
	})

	// ==================== PROTECTED ROUTES (entrepreneur) ====================
	r.Group(func(r chi.Router) {
		r.Use(auth)
		r.Use(middleware.RequireRole(string(entity.RoleEntrepreneur), log))

		// POST /api/orders/{id}/status - Update status of an owned order
		r.Post("/api/orders/{id}/status", orderHandler.UpdateOrderStatus)
	})

	// ==================== PROTECTED ROUTES (any signed-in user) ====================
	// GET /api/my-orders - Role-shaped order history
	r.With(auth).Get("/api/my-orders", orderHandler.GetMyOrders)
}
