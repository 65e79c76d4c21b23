package entity

import "time"

// Roles derivados del flag Admin.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa una cuenta de la tienda.
type User struct {
	ID           string
	NameProfile  string
	Email        string
	PasswordHash string // bcrypt, nunca se expone
	DateBirth    string // YYYY-MM-DD
	Active       bool
	Admin        bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Role devuelve el rol que se emite en el token.
func (u *User) Role() string {
	if u.Admin {
		return RoleAdmin
	}
	return RoleUser
}
