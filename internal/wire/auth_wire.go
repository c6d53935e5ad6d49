package wire

import (
	"time"

	"hunarhub/internal/adaptor"
	"hunarhub/internal/data/repository"
	"hunarhub/pkg/middleware"
	"hunarhub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Credential endpoints are rate limited per IP to slow brute force
	limiter := httprate.LimitByIP(10, time.Minute)

	r.With(limiter).Post("/api/register", authHandler.Register)
	r.With(limiter).Post("/api/login", authHandler.Login)

	// ==================== PROTECTED ROUTES ====================
	auth := middleware.AuthSession(repo.Session, repo.User, config.Session.CookieName, log)
	r.With(auth).Post("/api/logout", authHandler.Logout)
	r.With(auth).Get("/api/me", authHandler.Me)
}
