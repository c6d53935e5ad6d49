package response

import (
	"time"

	"hunarhub/internal/data/entity"
)

type CreateServiceResponse struct {
	ServiceID string `json:"service_id"`
}

type ServiceResponse struct {
	ID             string  `json:"id"`
	EntrepreneurID string  `json:"entrepreneur_id"`
	Name           string  `json:"name"`
	Description    *string `json:"description,omitempty"`
	PriceRange     *string `json:"price_range,omitempty"`
}

func ServiceToResponse(s *entity.Service) ServiceResponse {
	return ServiceResponse{
		ID:             s.ID.String(),
		EntrepreneurID: s.EntrepreneurID.String(),
		Name:           s.Name,
		Description:    s.Description,
		PriceRange:     s.PriceRange,
	}
}

type CreateServiceRequestResponse struct {
	RequestID string `json:"request_id"`
}

// ServiceRequestResponse is role-shaped like OrderResponse.
type ServiceRequestResponse struct {
	ID           string    `json:"id"`
	Status       string    `json:"status"`
	Details      *string   `json:"details,omitempty"`
	ServiceName  string    `json:"service_name"`
	BusinessName *string   `json:"business_name,omitempty"`
	CustomerName *string   `json:"customer_name,omitempty"`
	RequestDate  time.Time `json:"request_date"`
}

func CustomerServiceRequestToResponse(r *entity.CustomerServiceRequest) ServiceRequestResponse {
	business := r.BusinessName
	return ServiceRequestResponse{
		ID:           r.ID.String(),
		Status:       r.Status,
		Details:      r.Details,
		ServiceName:  r.ServiceName,
		BusinessName: &business,
		RequestDate:  r.RequestDate,
	}
}

func EntrepreneurServiceRequestToResponse(r *entity.EntrepreneurServiceRequest) ServiceRequestResponse {
	customer := r.CustomerName
	return ServiceRequestResponse{
		ID:           r.ID.String(),
		Status:       r.Status,
		Details:      r.Details,
		ServiceName:  r.ServiceName,
		CustomerName: &customer,
		RequestDate:  r.RequestDate,
	}
}
