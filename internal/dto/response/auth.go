package response

import (
	"hunarhub/internal/data/entity"
)

type RegisterResponse struct {
	UserID string `json:"user_id"`
}

// SessionUser is the identity payload returned on login, mirroring what the
// session carries.
type SessionUser struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

func UserToSessionUser(user *entity.User) SessionUser {
	return SessionUser{
		ID:   user.ID.String(),
		Name: user.Name,
		Role: string(user.Role),
	}
}
