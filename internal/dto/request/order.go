package request

type CreateOrderRequest struct {
	EntrepreneurID string `json:"entrepreneur_id" validate:"required,uuid"`
	ProductID      string `json:"product_id" validate:"required,uuid"`
	PaymentMethod  string `json:"payment_method" validate:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,min=1,max=50"`
}
