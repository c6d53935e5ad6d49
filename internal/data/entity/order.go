package entity

import (
	"github.com/google/uuid"
)

// Order status is free text; "pending" is the only value the system
// itself writes. Entrepreneurs set the rest (accepted, rejected,
// completed, ...).
const OrderStatusPending = "pending"

type Order struct {
	BaseSimple
	CustomerID     uuid.UUID `db:"customer_id"`
	EntrepreneurID uuid.UUID `db:"entrepreneur_id"`
	ProductID      uuid.UUID `db:"product_id"`
	Status         string    `db:"status"`
	PaymentMethod  *string   `db:"payment_method"`
}
