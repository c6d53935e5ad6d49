package entity

import (
	"github.com/google/uuid"
)

type Review struct {
	BaseSimple
	CustomerID     uuid.UUID `db:"customer_id"`
	EntrepreneurID uuid.UUID `db:"entrepreneur_id"`
	Rating         int       `db:"rating"` // 1-5
	Comment        *string   `db:"comment"`
}
