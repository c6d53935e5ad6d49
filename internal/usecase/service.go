package usecase

import (
	"hunarhub/internal/data/repository"
	"hunarhub/pkg/storage"
	"hunarhub/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth         AuthService
	Entrepreneur EntrepreneurService
	Product      ProductService
	Order        OrderService
	Offering     OfferingService
	Review       ReviewService
	Admin        AdminService
}

func NewService(repo *repository.Repository, config *utils.Config, store *storage.LocalStorage, log *zap.Logger) *Service {
	return &Service{
		Auth:         NewAuthService(repo, config, log),
		Entrepreneur: NewEntrepreneurService(repo, log),
		Product:      NewProductService(repo, config, store, log),
		Order:        NewOrderService(repo, log),
		Offering:     NewOfferingService(repo, log),
		Review:       NewReviewService(repo, log),
		Admin:        NewAdminService(repo, log),
	}
}
