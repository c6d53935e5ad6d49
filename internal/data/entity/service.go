package entity

import (
	"github.com/google/uuid"
)

type Service struct {
	ID             uuid.UUID `db:"id"`
	EntrepreneurID uuid.UUID `db:"entrepreneur_id"`
	Name           string    `db:"name"`
	Description    *string   `db:"description"`
	PriceRange     *string   `db:"price_range"`
}
