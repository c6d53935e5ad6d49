package request

type CreateReviewRequest struct {
	EntrepreneurID string  `json:"entrepreneur_id" validate:"required,uuid"`
	Rating         int     `json:"rating" validate:"required,gte=1,lte=5"`
	Comment        *string `json:"comment,omitempty"`
}
