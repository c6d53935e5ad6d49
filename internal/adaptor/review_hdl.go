package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"hunarhub/internal/dto/request"
	"hunarhub/internal/usecase"
	"hunarhub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// CreateReview handles POST /api/reviews (customer only)
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.CreateReview(r.Context(), userID.String(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create review")
		return
	}

	utils.ResponseCreated(w, "Review created", response)
}

// GetEntrepreneurReviews handles GET /api/reviews/{id} (public), where
// {id} is the entrepreneur's user id
func (h *ReviewHandler) GetEntrepreneurReviews(w http.ResponseWriter, r *http.Request) {
	entrepreneurID := chi.URLParam(r, "id")
	if entrepreneurID == "" {
		utils.ResponseBadRequest(w, "Entrepreneur ID is required", nil)
		return
	}

	reviews, err := h.service.GetEntrepreneurReviews(r.Context(), entrepreneurID)
	if err != nil {
		h.handleServiceError(w, err, "get entrepreneur reviews")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}

func (h *ReviewHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
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
