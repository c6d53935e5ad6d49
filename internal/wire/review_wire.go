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

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/reviews/{id} - Reviews of one entrepreneur
	r.Get("/api/reviews/{id}", reviewHandler.GetEntrepreneurReviews)

	// ==================== PROTECTED ROUTES (customer) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, config.Session.CookieName, log))
		r.Use(middleware.RequireRole(string(entity.RoleCustomer), log))

		// POST /api/reviews - Review an entrepreneur
		r.Post("/api/reviews", reviewHandler.CreateReview)
	})
}
