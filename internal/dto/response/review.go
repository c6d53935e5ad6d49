package response

import (
	"time"

	"hunarhub/internal/data/entity"
)

type CreateReviewResponse struct {
	ReviewID string `json:"review_id"`
}

type ReviewResponse struct {
	ID             string    `json:"id"`
	EntrepreneurID string    `json:"entrepreneur_id"`
	CustomerName   string    `json:"customer_name"`
	Rating         int       `json:"rating"`
	Comment        *string   `json:"comment,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func ReviewToResponse(r *entity.EntrepreneurReview) ReviewResponse {
	return ReviewResponse{
		ID:             r.ID.String(),
		EntrepreneurID: r.EntrepreneurID.String(),
		CustomerName:   r.CustomerName,
		Rating:         r.Rating,
		Comment:        r.Comment,
		CreatedAt:      r.CreatedAt,
	}
}
