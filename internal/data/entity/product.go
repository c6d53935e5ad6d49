package entity

import (
	"github.com/google/uuid"
)

type Product struct {
	BaseSimple
	EntrepreneurID uuid.UUID `db:"entrepreneur_id"`
	Name           string    `db:"name"`
	Description    *string   `db:"description"`
	Price          float64   `db:"price"`
	// ImageURL is the legacy single-image field, kept as the thumbnail for
	// clients predating the multi-image feature.
	ImageURL *string `db:"image_url"`
}
