package adaptor

import (
	"net/http"
	"strings"

	"hunarhub/internal/usecase"
	"hunarhub/pkg/utils"

	"go.uber.org/zap"
)

type EntrepreneurHandler struct {
	service usecase.EntrepreneurService
	log     *zap.Logger
}

func NewEntrepreneurHandler(service usecase.EntrepreneurService, log *zap.Logger) *EntrepreneurHandler {
	return &EntrepreneurHandler{
		service: service,
		log:     log.With(zap.String("handler", "entrepreneur")),
	}
}

// ListEntrepreneurs handles GET /api/entrepreneurs (public)
func (h *EntrepreneurHandler) ListEntrepreneurs(w http.ResponseWriter, r *http.Request) {
	entrepreneurs, err := h.service.ListEntrepreneurs(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list entrepreneurs")
		return
	}

	utils.ResponseSuccess(w, "success", entrepreneurs)
}

func (h *EntrepreneurHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	default:
		h.log.Error(operation+" failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "An unexpected error occurred")
	}
}
