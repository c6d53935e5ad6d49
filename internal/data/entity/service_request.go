package entity

import (
	"time"

	"github.com/google/uuid"
)

const ServiceRequestStatusPending = "pending"

type ServiceRequest struct {
	ID             uuid.UUID `db:"id"`
	CustomerID     uuid.UUID `db:"customer_id"`
	EntrepreneurID uuid.UUID `db:"entrepreneur_id"`
	ServiceID      uuid.UUID `db:"service_id"`
	Status         string    `db:"status"`
	Details        *string   `db:"details"`
	RequestDate    time.Time `db:"request_date"`
}
