package entity

import (
	"github.com/google/uuid"
)

// Read-side projections produced by joined queries. They never map to a
// single table.

// EntrepreneurProfile is the public listing view of a seller.
type EntrepreneurProfile struct {
	UserID       uuid.UUID
	Name         string
	Email        string
	BusinessName string
	Bio          *string
	Category     *string
	Location     *string
	Verified     bool
}

// CustomerOrder is an order as seen by the customer who placed it.
type CustomerOrder struct {
	Order
	ProductName  string
	ProductPrice float64
	ProductImage *string
	BusinessName string
}

// EntrepreneurOrder is an order as seen by the seller fulfilling it.
type EntrepreneurOrder struct {
	Order
	ProductName  string
	ProductPrice float64
	ProductImage *string
	CustomerName string
}

// CustomerServiceRequest is a request as seen by the requesting customer.
type CustomerServiceRequest struct {
	ServiceRequest
	ServiceName  string
	BusinessName string
}

// EntrepreneurServiceRequest is a request as seen by the seller.
type EntrepreneurServiceRequest struct {
	ServiceRequest
	ServiceName  string
	CustomerName string
}

// EntrepreneurReview is a review joined with the reviewer's name.
type EntrepreneurReview struct {
	Review
	CustomerName string
}

// PlatformStats is the admin dashboard aggregate.
type PlatformStats struct {
	Users                int64
	Entrepreneurs        int64
	Orders               int64
	ServiceRequests      int64
	PendingVerifications int64
}
