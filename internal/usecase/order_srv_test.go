package usecase

import (
	"context"
	"testing"
	"time"

	"hunarhub/internal/data/entity"
	"hunarhub/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedProduct(products *fakeProductRepo, ownerID uuid.UUID) *entity.Product {
	product := &entity.Product{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		EntrepreneurID: ownerID,
		Name:           "Clay pot",
		Price:          25.5,
	}
	products.products = append(products.products, product)
	return product
}

func TestCreateOrder(t *testing.T) {
	repo, _, _, products := newFakeRepository()
	svc := NewOrderService(repo, zap.NewNop())

	ownerID := uuid.New()
	product := seedProduct(products, ownerID)
	customerID := uuid.New()

	resp, err := svc.CreateOrder(context.Background(), customerID.String(), &request.CreateOrderRequest{
		EntrepreneurID: ownerID.String(),
		ProductID:      product.ID.String(),
		PaymentMethod:  "cod",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	orders := repo.Order.(*fakeOrderRepo).orders
	require.Len(t, orders, 1)
	assert.Equal(t, entity.OrderStatusPending, orders[0].Status)
	assert.Equal(t, customerID, orders[0].CustomerID)
	require.NotNil(t, orders[0].PaymentMethod)
	assert.Equal(t, "cod", *orders[0].PaymentMethod)
}

func TestCreateOrderUnknownProduct(t *testing.T) {
	repo, _, _, _ := newFakeRepository()
	svc := NewOrderService(repo, zap.NewNop())

	_, err := svc.CreateOrder(context.Background(), uuid.NewString(), &request.CreateOrderRequest{
		EntrepreneurID: uuid.NewString(),
		ProductID:      uuid.NewString(),
		PaymentMethod:  "cod",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.Empty(t, repo.Order.(*fakeOrderRepo).orders)
}

func TestCreateOrderProductOwnerMismatch(t *testing.T) {
	repo, _, _, products := newFakeRepository()
	svc := NewOrderService(repo, zap.NewNop())

	product := seedProduct(products, uuid.New())

	// entrepreneur_id names someone who does not own the product
	_, err := svc.CreateOrder(context.Background(), uuid.NewString(), &request.CreateOrderRequest{
		EntrepreneurID: uuid.NewString(),
		ProductID:      product.ID.String(),
		PaymentMethod:  "cod",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestUpdateOrderStatusByOwner(t *testing.T) {
	repo, _, _, _ := newFakeRepository()
	svc := NewOrderService(repo, zap.NewNop())

	ownerID := uuid.New()
	order := &entity.Order{
		BaseSimple:     entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		CustomerID:     uuid.New(),
		EntrepreneurID: ownerID,
		ProductID:      uuid.New(),
		Status:         entity.OrderStatusPending,
	}
	orders := repo.Order.(*fakeOrderRepo)
	orders.orders = append(orders.orders, order)

	err := svc.UpdateOrderStatus(context.Background(), ownerID.String(), order.ID.String(), &request.UpdateStatusRequest{
		Status: "accepted",
	})
	require.NoError(t, err)
	assert.Equal(t, "accepted", order.Status)
}

func TestUpdateOrderStatusByNonOwner(t *testing.T) {
	repo, _, _, _ := newFakeRepository()
	svc := NewOrderService(repo, zap.NewNop())

	order := &entity.Order{
		BaseSimple:     entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		CustomerID:     uuid.New(),
		EntrepreneurID: uuid.New(),
		ProductID:      uuid.New(),
		Status:         entity.OrderStatusPending,
	}
	orders := repo.Order.(*fakeOrderRepo)
	orders.orders = append(orders.orders, order)

	err := svc.UpdateOrderStatus(context.Background(), uuid.NewString(), order.ID.String(), &request.UpdateStatusRequest{
		Status: "accepted",
	})
	require.Error(t, err)
	// Not-owner reads as not-found, and the row is untouched
	assert.Contains(t, err.Error(), "not found")
	assert.Equal(t, entity.OrderStatusPending, order.Status)
}

func TestGetMyOrdersRoleShaping(t *testing.T) {
	repo, _, _, _ := newFakeRepository()
	svc := NewOrderService(repo, zap.NewNop())

	customerID := uuid.New()
	ownerID := uuid.New()
	order := &entity.Order{
		BaseSimple:     entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		CustomerID:     customerID,
		EntrepreneurID: ownerID,
		ProductID:      uuid.New(),
		Status:         entity.OrderStatusPending,
	}
	orders := repo.Order.(*fakeOrderRepo)
	orders.orders = append(orders.orders, order)

	asCustomer, err := svc.GetMyOrders(context.Background(), customerID.String(), string(entity.RoleCustomer))
	require.NoError(t, err)
	require.Len(t, asCustomer, 1)
	assert.NotNil(t, asCustomer[0].BusinessName)
	assert.Nil(t, asCustomer[0].CustomerName)

	asOwner, err := svc.GetMyOrders(context.Background(), ownerID.String(), string(entity.RoleEntrepreneur))
	require.NoError(t, err)
	require.Len(t, asOwner, 1)
	assert.NotNil(t, asOwner[0].CustomerName)
	assert.Nil(t, asOwner[0].BusinessName)
}
