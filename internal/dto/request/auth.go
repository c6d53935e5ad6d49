package request

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=customer entrepreneur admin"`

	// Entrepreneur profile fields; business_name is required when
	// role=entrepreneur, checked in the service.
	BusinessName *string `json:"business_name,omitempty"`
	Bio          *string `json:"bio,omitempty"`
	Category     *string `json:"category,omitempty"`
	Location     *string `json:"location,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
