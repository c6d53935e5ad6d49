package adaptor

import (
	"net/http"
	"strings"

	"hunarhub/internal/usecase"
	"hunarhub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AdminHandler struct {
	service usecase.AdminService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log.With(zap.String("handler", "admin")),
	}
}

// GetStats handles GET /api/admin/stats (admin only)
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get stats")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}

// GetPendingEntrepreneurs handles GET /api/admin/pending-entrepreneurs (admin only)
func (h *AdminHandler) GetPendingEntrepreneurs(w http.ResponseWriter, r *http.Request) {
	pending, err := h.service.GetPendingEntrepreneurs(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get pending entrepreneurs")
		return
	}

	utils.ResponseSuccess(w, "success", pending)
}

// VerifyEntrepreneur handles POST /api/admin/verify/{id} (admin only)
func (h *AdminHandler) VerifyEntrepreneur(w http.ResponseWriter, r *http.Request) {
	entrepreneurID := chi.URLParam(r, "id")
	if entrepreneurID == "" {
		utils.ResponseBadRequest(w, "Entrepreneur ID is required", nil)
		return
	}

	if err := h.service.VerifyEntrepreneur(r.Context(), entrepreneurID); err != nil {
		h.handleServiceError(w, err, "verify entrepreneur")
		return
	}

	utils.ResponseSuccess(w, "Entrepreneur verified", nil)
}

func (h *AdminHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" failed - bad input",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error(operation+" failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "An unexpected error occurred")
	}
}
