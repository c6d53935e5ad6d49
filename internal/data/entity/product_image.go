package entity

import (
	"github.com/google/uuid"
)

type ProductImage struct {
	ID        uuid.UUID `db:"id"`
	ProductID uuid.UUID `db:"product_id"`
	ImageURL  string    `db:"image_url"`
	Position  int       `db:"position"`
}
