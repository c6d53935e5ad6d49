package response

import (
	"time"

	"hunarhub/internal/data/entity"
)

type CreateProductResponse struct {
	ProductID string `json:"product_id"`
}

type ProductResponse struct {
	ID             string    `json:"id"`
	EntrepreneurID string    `json:"entrepreneur_id"`
	Name           string    `json:"name"`
	Description    *string   `json:"description,omitempty"`
	Price          float64   `json:"price"`
	ImageURL       *string   `json:"image_url,omitempty"`
	Images         []string  `json:"images"`
	CreatedAt      time.Time `json:"created_at"`
}

// ProductToResponse resolves the image list: the product_images rows win;
// when there are none the legacy image_url is promoted to a single-element
// list; otherwise the list is empty.
func ProductToResponse(product *entity.Product, images []string) ProductResponse {
	if len(images) == 0 {
		if product.ImageURL != nil && *product.ImageURL != "" {
			images = []string{*product.ImageURL}
		} else {
			images = []string{}
		}
	}

	return ProductResponse{
		ID:             product.ID.String(),
		EntrepreneurID: product.EntrepreneurID.String(),
		Name:           product.Name,
		Description:    product.Description,
		Price:          product.Price,
		ImageURL:       product.ImageURL,
		Images:         images,
		CreatedAt:      product.CreatedAt,
	}
}
