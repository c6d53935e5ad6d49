package adaptor

import (
	"hunarhub/internal/usecase"
	"hunarhub/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth         *AuthHandler
	Entrepreneur *EntrepreneurHandler
	Product      *ProductHandler
	Order        *OrderHandler
	Offering     *OfferingHandler
	Review       *ReviewHandler
	Admin        *AdminHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(service.Auth, config, log),
		Entrepreneur: NewEntrepreneurHandler(service.Entrepreneur, log),
		Product:      NewProductHandler(service.Product, log),
		Order:        NewOrderHandler(service.Order, log),
		Offering:     NewOfferingHandler(service.Offering, log),
		Review:       NewReviewHandler(service.Review, log),
		Admin:        NewAdminHandler(service.Admin, log),
	}
}
