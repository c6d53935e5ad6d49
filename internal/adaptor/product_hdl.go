package adaptor

import (
	"net/http"
	"strings"

	"hunarhub/internal/dto/request"
	"hunarhub/internal/usecase"
	"hunarhub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxProductFormMemory bounds the in-memory part of multipart parsing;
// larger files spill to disk.
const maxProductFormMemory = 32 << 20

type ProductHandler struct {
	service usecase.ProductService
	log     *zap.Logger
}

func NewProductHandler(service usecase.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log.With(zap.String("handler", "product")),
	}
}

// CreateProduct handles POST /api/products (entrepreneur only, multipart)
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := r.ParseMultipartForm(maxProductFormMemory); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	price, err := utils.ParsePrice(r.FormValue("price"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid price", nil)
		return
	}

	req := request.CreateProductRequest{
		Name:  r.FormValue("name"),
		Price: price,
	}
	if description := r.FormValue("description"); description != "" {
		req.Description = &description
	}

	// Validate text fields before touching the files
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	files := r.MultipartForm.File["images"]

	response, err := h.service.CreateProduct(r.Context(), userID.String(), &req, files)
	if err != nil {
		h.handleServiceError(w, err, "create product")
		return
	}

	utils.ResponseCreated(w, "Product created", response)
}

// GetRecentProducts handles GET /api/products/recent (public)
func (h *ProductHandler) GetRecentProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.GetRecentProducts(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get recent products")
		return
	}

	utils.ResponseSuccess(w, "success", products)
}

// GetProduct handles GET /api/product/{id} (public)
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	if productID == "" {
		utils.ResponseBadRequest(w, "Product ID is required", nil)
		return
	}

	product, err := h.service.GetProduct(r.Context(), productID)
	if err != nil {
		h.handleServiceError(w, err, "get product")
		return
	}

	utils.ResponseSuccess(w, "success", product)
}

// GetEntrepreneurProducts handles GET /api/products/{id} (public), where
// {id} is the entrepreneur's user id
func (h *ProductHandler) GetEntrepreneurProducts(w http.ResponseWriter, r *http.Request) {
	entrepreneurID := chi.URLParam(r, "id")
	if entrepreneurID == "" {
		utils.ResponseBadRequest(w, "Entrepreneur ID is required", nil)
		return
	}

	products, err := h.service.GetEntrepreneurProducts(r.Context(), entrepreneurID)
	if err != nil {
		h.handleServiceError(w, err, "get entrepreneur products")
		return
	}

	utils.ResponseSuccess(w, "success", products)
}

func (h *ProductHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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
