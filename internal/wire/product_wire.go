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

func wireProduct(
	r chi.Router,
	productHandler *adaptor.ProductHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/products/recent - Newest products feed
	r.Get("/api/products/recent", productHandler.GetRecentProducts)

	// GET /api/products/{id} - Products of one entrepreneur
	r.Get("/api/products/{id}", productHandler.GetEntrepreneurProducts)

	// GET /api/product/{id} - Single product detail
	r.Get("/api/product/{id}", productHandler.GetProduct)

	// ==================== PROTECTED ROUTES (entrepreneur) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, config.Session.CookieName, log))
		r.Use(middleware.RequireRole(string(entity.RoleEntrepreneur), log))

		// POST /api/products - Create product with images (multipart)
		r.Post("/api/products", productHandler.CreateProduct)
	})
}
