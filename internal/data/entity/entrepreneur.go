package entity

import (
	"github.com/google/uuid"
)

// Entrepreneur is a 1:1 profile extension of a user with role=entrepreneur.
type Entrepreneur struct {
	UserID       uuid.UUID `db:"user_id"`
	BusinessName string    `db:"business_name"`
	Bio          *string   `db:"bio"`
	Category     *string   `db:"category"`
	Location     *string   `db:"location"`
	Verified     bool      `db:"verified"`
}
