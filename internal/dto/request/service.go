package request

type CreateServiceRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	Description *string `json:"description,omitempty"`
	PriceRange  *string `json:"price_range,omitempty"`
}

type CreateServiceRequestRequest struct {
	EntrepreneurID string  `json:"entrepreneur_id" validate:"required,uuid"`
	ServiceID      string  `json:"service_id" validate:"required,uuid"`
	Details        *string `json:"details,omitempty"`
}
