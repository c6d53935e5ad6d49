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

func wireAdmin(
	r chi.Router,
	adminHandler *adaptor.AdminHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin", func(r chi.Router) {
		// Require both authentication AND admin role
		r.Use(middleware.AuthSession(repo.Session, repo.User, config.Session.CookieName, log))
		r.Use(middleware.RequireRole(string(entity.RoleAdmin), log))

		// GET /api/admin/stats - Platform counters
		r.Get("/stats", adminHandler.GetStats)

		// GET /api/admin/pending-entrepreneurs - Unverified profiles
		r.Get("/pending-entrepreneurs", adminHandler.GetPendingEntrepreneurs)

		// POST /api/admin/verify/{id} - Mark profile verified
		r.Post("/verify/{id}", adminHandler.VerifyEntrepreneur)
	})
}
