package response

import (
	"time"

	"hunarhub/internal/data/entity"
)

type CreateOrderResponse struct {
	OrderID string `json:"order_id"`
}

// OrderResponse is role-shaped: customers see the seller's business name,
// entrepreneurs see the customer's name.
type OrderResponse struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"`
	PaymentMethod *string   `json:"payment_method,omitempty"`
	ProductName   string    `json:"product_name"`
	Price         float64   `json:"price"`
	ImageURL      *string   `json:"image_url,omitempty"`
	BusinessName  *string   `json:"business_name,omitempty"`
	CustomerName  *string   `json:"customer_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func CustomerOrderToResponse(o *entity.CustomerOrder) OrderResponse {
	business := o.BusinessName
	return OrderResponse{
		ID:            o.ID.String(),
		Status:        o.Status,
		PaymentMethod: o.PaymentMethod,
		ProductName:   o.ProductName,
		Price:         o.ProductPrice,
		ImageURL:      o.ProductImage,
		BusinessName:  &business,
		CreatedAt:     o.CreatedAt,
	}
}

func EntrepreneurOrderToResponse(o *entity.EntrepreneurOrder) OrderResponse {
	customer := o.CustomerName
	return OrderResponse{
		ID:            o.ID.String(),
		Status:        o.Status,
		PaymentMethod: o.PaymentMethod,
		ProductName:   o.ProductName,
		Price:         o.ProductPrice,
		ImageURL:      o.ProductImage,
		CustomerName:  &customer,
		CreatedAt:     o.CreatedAt,
	}
}
