package request

// CreateProductRequest carries the text fields of the multipart product
// form. Image files travel alongside it as multipart file headers.
type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price" validate:"required,gt=0"`
}
