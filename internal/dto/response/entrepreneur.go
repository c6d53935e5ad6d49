package response

import (
	"hunarhub/internal/data/entity"
)

type EntrepreneurResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	BusinessName string  `json:"business_name"`
	Bio          *string `json:"bio,omitempty"`
	Category     *string `json:"category,omitempty"`
	Location     *string `json:"location,omitempty"`
	Verified     bool    `json:"verified"`
}

// PendingEntrepreneurResponse is the admin view; it additionally exposes the
// account email.
type PendingEntrepreneurResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	BusinessName string  `json:"business_name"`
	Category     *string `json:"category,omitempty"`
	Verified     bool    `json:"verified"`
}

func EntrepreneurToResponse(p *entity.EntrepreneurProfile) EntrepreneurResponse {
	return EntrepreneurResponse{
		ID:           p.UserID.String(),
		Name:         p.Name,
		BusinessName: p.BusinessName,
		Bio:          p.Bio,
		Category:     p.Category,
		Location:     p.Location,
		Verified:     p.Verified,
	}
}

func PendingEntrepreneurToResponse(p *entity.EntrepreneurProfile) PendingEntrepreneurResponse {
	return PendingEntrepreneurResponse{
		ID:           p.UserID.String(),
		Name:         p.Name,
		Email:        p.Email,
		BusinessName: p.BusinessName,
		Category:     p.Category,
		Verified:     p.Verified,
	}
}
