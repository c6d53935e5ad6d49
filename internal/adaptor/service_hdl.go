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

// OfferingHandler serves entrepreneur service listings and the requests
// customers file against them.
type OfferingHandler struct {
	service usecase.OfferingService
	log     *zap.Logger
}

func NewOfferingHandler(service usecase.OfferingService, log *zap.Logger) *OfferingHandler {
	return &OfferingHandler{
		service: service,
		log:     log.With(zap.String("handler", "offering")),
	}
}

// CreateService handles POST /api/services (entrepreneur only)
func (h *OfferingHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.CreateService(r.Context(), userID.String(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create service")
		return
	}

	utils.ResponseCreated(w, "Service created", response)
}

// GetEntrepreneurServices handles GET /api/services/{id} (public), where
// {id} is the entrepreneur's user id
func (h *OfferingHandler) GetEntrepreneurServices(w http.ResponseWriter, r *http.Request) {
	entrepreneurID := chi.URLParam(r, "id")
	if entrepreneurID == "" {
		utils.ResponseBadRequest(w, "Entrepreneur ID is required", nil)
		return
	}

	services, err := h.service.GetEntrepreneurServices(r.Context(), entrepreneurID)
	if err != nil {
		h.handleServiceError(w, err, "get entrepreneur services")
		return
	}

	utils.ResponseSuccess(w, "success", services)
}

// CreateServiceRequest handles POST /api/service-requests (customer only)
func (h *OfferingHandler) CreateServiceRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateServiceRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.CreateServiceRequest(r.Context(), userID.String(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create service request")
		return
	}

	utils.ResponseCreated(w, "Service request created", response)
}

// GetMyServiceRequests handles GET /api/service-requests (protected)
func (h *OfferingHandler) GetMyServiceRequests(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	requests, err := h.service.GetMyServiceRequests(r.Context(), userID.String(), role)
	if err != nil {
		h.handleServiceError(w, err, "get my service requests")
		return
	}

	utils.ResponseSuccess(w, "success", requests)
}

// UpdateServiceRequestStatus handles POST /api/service-requests/{id}/status (entrepreneur only)
func (h *OfferingHandler) UpdateServiceRequestStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		utils.ResponseBadRequest(w, "Request ID is required", nil)
		return
	}

	var req request.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.UpdateServiceRequestStatus(r.Context(), userID.String(), requestID, &req); err != nil {
		h.handleServiceError(w, err, "update service request status")
		return
	}

	utils.ResponseSuccess(w, "Service request status updated", nil)
}

func (h *OfferingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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
