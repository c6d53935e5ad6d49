package repository

import (
	"hunarhub/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User           UserRepository
	Session        SessionRepository
	Entrepreneur   EntrepreneurRepository
	Product        ProductRepository
	ProductImage   ProductImageRepository
	Order          OrderRepository
	Service        ServiceRepository
	ServiceRequest ServiceRequestRepository
	Review         ReviewRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:           NewUserRepository(db, log),
		Session:        NewSessionRepository(db, log),
		Entrepreneur:   NewEntrepreneurRepository(db, log),
		Product:        NewProductRepository(db, log),
		ProductImage:   NewProductImageRepository(db, log),
		Order:          NewOrderRepository(db, log),
		Service:        NewServiceRepository(db, log),
		ServiceRequest: NewServiceRequestRepository(db, log),
		Review:         NewReviewRepository(db, log),
	}
}
