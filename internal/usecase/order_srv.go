package usecase

import (
	"context"
	"fmt"
	"time"

	"hunarhub/internal/data/entity"
	"hunarhub/internal/data/repository"
	"hunarhub/internal/dto/request"
	"hunarhub/internal/dto/response"
	"hunarhub/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService interface {
	CreateOrder(ctx context.Context, customerID string, req *request.CreateOrderRequest) (*response.CreateOrderResponse, error)
	GetMyOrders(ctx context.Context, userID, role string) ([]response.OrderResponse, error)
	UpdateOrderStatus(ctx context.Context, entrepreneurID, orderID string, req *request.UpdateStatusRequest) error
}

type orderService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOrderService(repo *repository.Repository, log *zap.Logger) OrderService {
	return &orderService{
		repo: repo,
		log:  log.With(zap.String("service", "order")),
	}
}

func (s *orderService) CreateOrder(ctx context.Context, customerID string, req *request.CreateOrderRequest) (*response.CreateOrderResponse, error) {
	// 1. Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create order validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	buyerID, err := uuid.Parse(customerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID format %s: %w", customerID, err)
	}
	productID, _ := uuid.Parse(req.ProductID)
	entrepreneurID, _ := uuid.Parse(req.EntrepreneurID)

	// 2. Product must exist and belong to the named entrepreneur
	product, err := s.repo.Product.FindByID(ctx, productID)
	if err != nil {
		s.log.Error("Failed to look up product for order", zap.Error(err), zap.String("product_id", req.ProductID))
		return nil, fmt.Errorf("look up product: %w", err)
	}
	if product == nil || product.EntrepreneurID != entrepreneurID {
		return nil, fmt.Errorf("product %s not found", req.ProductID)
	}

	// 3. Persist order
	paymentMethod := req.PaymentMethod
	order := &entity.Order{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		CustomerID:     buyerID,
		EntrepreneurID: entrepreneurID,
		ProductID:      productID,
		Status:         entity.OrderStatusPending,
		PaymentMethod:  &paymentMethod,
	}

	if err := s.repo.Order.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.log.Info("Order created",
		zap.String("order_id", order.ID.String()),
		zap.String("customer_id", customerID),
		zap.String("product_id", req.ProductID),
	)

	return &response.CreateOrderResponse{OrderID: order.ID.String()}, nil
}

func (s *orderService) GetMyOrders(ctx context.Context, userID, role string) ([]response.OrderResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	switch role {
	case string(entity.RoleEntrepreneur):
		orders, err := s.repo.Order.FindByEntrepreneur(ctx, id)
		if err != nil {
			s.log.Error("Failed to get entrepreneur orders", zap.Error(err), zap.String("user_id", userID))
			return nil, fmt.Errorf("get entrepreneur orders: %w", err)
		}
		responses := make([]response.OrderResponse, len(orders))
		for i, o := range orders {
			responses[i] = response.EntrepreneurOrderToResponse(o)
		}
		return responses, nil
	default:
		orders, err := s.repo.Order.FindByCustomer(ctx, id)
		if err != nil {
			s.log.Error("Failed to get customer orders", zap.Error(err), zap.String("user_id", userID))
			return nil, fmt.Errorf("get customer orders: %w", err)
		}
		responses := make([]response.OrderResponse, len(orders))
		for i, o := range orders {
			responses[i] = response.CustomerOrderToResponse(o)
		}
		return responses, nil
	}
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, entrepreneurID, orderID string, req *request.UpdateStatusRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update order status validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	ownerID, err := uuid.Parse(entrepreneurID)
	if err != nil {
		return fmt.Errorf("invalid entrepreneur ID format %s: %w", entrepreneurID, err)
	}
	id, err := uuid.Parse(orderID)
	if err != nil {
		return fmt.Errorf("order %s not found", orderID)
	}

	updated, err := s.repo.Order.UpdateStatusByOwner(ctx, id, ownerID, req.Status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if !updated {
		return fmt.Errorf("order %s not found", orderID)
	}

	s.log.Info("Order status updated",
		zap.String("order_id", orderID),
		zap.String("entrepreneur_id", entrepreneurID),
		zap.String("status", req.Status),
	)

	return nil
}
