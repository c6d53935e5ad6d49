package wire

import (
	"hunarhub/internal/adaptor"
	"hunarhub/internal/data/repository"
	"hunarhub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireEntrepreneur(
	r chi.Router,
	entrepreneurHandler *adaptor.EntrepreneurHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/entrepreneurs - Browse the entrepreneur directory
	r.Get("/api/entrepreneurs", entrepreneurHandler.ListEntrepreneurs)
}
