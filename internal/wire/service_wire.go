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

func wireOffering(
	r chi.Router,
	offeringHandler *adaptor.OfferingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.AuthSession(repo.Session, repo.User, config.Session.CookieName, log)

	// ==================== PUBLIC ROUTES ====================
	// GET /api/services/{id} - Services of one entrepreneur
	r.Get("/api/services/{id}", offeringHandler.GetEntrepreneurServices)

	// ==================== PROTECTED ROUTES (entrepreneur) ====================
	r.Group(func(r chi.Router) {
		r.Use(auth)
		r.Use(middleware.RequireRole(string(entity.RoleEntrepreneur), log))

		// POST /api/services - Publish a service listing
		r.Post("/api/services", offeringHandler.CreateService)

		// POST /api/service-requests/{id}/status - Update status of an owned request
		r.Post("/api/service-requests/{id}/status", offeringHandler.UpdateServiceRequestStatus)
	})

	// ==================== PROTECTED ROUTES (customer) ====================
	r.Group(func(r chi.Router) {
		r.Use(auth)
		r.Use(middleware.RequireRole(string(entity.RoleCustomer), log))

		// POST /api/service-requests - Request a service
		r.Post("/api/service-requests", offeringHandler.CreateServiceRequest)
	})

	// ==================== PROTECTED ROUTES (any signed-in user) ====================
	// GET /api/service-requests - Role-shaped request history
	r.With(auth).Get("/api/service-requests", offeringHandler.GetMyServiceRequests)
}
