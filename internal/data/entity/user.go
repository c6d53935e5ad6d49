package entity

type UserRole string

const (
	RoleCustomer     UserRole = "customer"
	RoleEntrepreneur UserRole = "entrepreneur"
	RoleAdmin        UserRole = "admin"
)

type User struct {
	Base
	Name         string   `db:"name"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password_hash"`
	Role         UserRole `db:"role"`
}
