package repository

import (
	"context"
	"fmt"

	"hunarhub/internal/data/entity"
	"hunarhub/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	// UpdateStatusByOwner mutates status only when the order belongs to the
	// given entrepreneur. Returns false when no row matched; the caller
	// cannot tell a missing order from someone else's order.
	UpdateStatusByOwner(ctx context.Context, orderID, entrepreneurID uuid.UUID, status string) (bool, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.CustomerOrder, error)
	FindByEntrepreneur(ctx context.Context, entrepreneurID uuid.UUID) ([]*entity.EntrepreneurOrder, error)
	CountAll(ctx context.Context) (int64, error)
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (id, customer_id, entrepreneur_id, product_id,
		                   status, payment_method, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		order.ID,
		order.CustomerID,
		order.EntrepreneurID,
		order.ProductID,
		order.Status,
		order.PaymentMethod,
		order.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("customer_id", order.CustomerID.String()),
			zap.String("product_id", order.ProductID.String()),
		)
		return fmt.Errorf("create order: %w", err)
	}

	return nil
}

func (r *orderRepository) UpdateStatusByOwner(ctx context.Context, orderID, entrepreneurID uuid.UUID, status string) (bool, error) {
	query := `
		UPDATE orders
		SET status = $1
		WHERE id = $2 AND entrepreneur_id = $3
	`

	result, err := r.db.Exec(ctx, query, status, orderID, entrepreneurID)
	if err != nil {
		r.log.Error("Failed to update order status",
			zap.Error(err),
			zap.String("order_id", orderID.String()),
		)
		return false, fmt.Errorf("update order %s status: %w", orderID.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *orderRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.CustomerOrder, error) {
	query := `
		SELECT o.id, o.customer_id, o.entrepreneur_id, o.product_id,
		       o.status, o.payment_method, o.created_at,
		       p.name, p.price, p.image_url, e.business_name
		FROM orders o
		JOIN products p ON o.product_id = p.id
		JOIN entrepreneurs e ON o.entrepreneur_id = e.user_id
		WHERE o.customer_id = $1
		ORDER BY o.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		r.log.Error("Failed to query customer orders",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
		)
		return nil, fmt.Errorf("find orders for customer %s: %w", customerID.String(), err)
	}
	defer rows.Close()

	var orders []*entity.CustomerOrder
	for rows.Next() {
		var o entity.CustomerOrder
		err := rows.Scan(
			&o.ID,
			&o.CustomerID,
			&o.EntrepreneurID,
			&o.ProductID,
			&o.Status,
			&o.PaymentMethod,
			&o.CreatedAt,
			&o.ProductName,
			&o.ProductPrice,
			&o.ProductImage,
			&o.BusinessName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan customer order row: %w", err)
		}
		orders = append(orders, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customer order rows: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) FindByEntrepreneur(ctx context.Context, entrepreneurID uuid.UUID) ([]*entity.EntrepreneurOrder, error) {
	query := `
		SELECT o.id, o.customer_id, o.entrepreneur_id, o.product_id,
		       o.status, o.payment_method, o.created_at,
		       p.name, p.price, p.image_url, u.name
		FROM orders o
		JOIN products p ON o.product_id = p.id
		JOIN users u ON o.customer_id = u.id
		WHERE o.entrepreneur_id = $1
		ORDER BY o.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, entrepreneurID)
	if err != nil {
		r.log.Error("Failed to query entrepreneur orders",
			zap.Error(err),
			zap.String("entrepreneur_id", entrepreneurID.String()),
		)
		return nil, fmt.Errorf("find orders for entrepreneur %s: %w", entrepreneurID.String(), err)
	}
	defer rows.Close()

	var orders []*entity.EntrepreneurOrder
	for rows.Next() {
		var o entity.EntrepreneurOrder
		err := rows.Scan(
			&o.ID,
			&o.CustomerID,
			&o.EntrepreneurID,
			&o.ProductID,
			&o.Status,
			&o.PaymentMethod,
			&o.CreatedAt,
			&o.ProductName,
			&o.ProductPrice,
			&o.ProductImage,
			&o.CustomerName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan entrepreneur order row: %w", err)
		}
		orders = append(orders, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entrepreneur order rows: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count); err != nil {
		r.log.Error("Failed to count orders", zap.Error(err))
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return count, nil
}
