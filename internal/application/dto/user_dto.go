package dto

import "time"

// RegisterRequest entrada para registro de una cuenta.
type RegisterRequest struct {
	NameProfile string `json:"name_profile" validate:"required,min=3,max=50,profile"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8,max=64,password"`
	DateBirth   string `json:"date_birth" validate:"required,datetime=2006-01-02"`
}

// UpdateUserRequest entrada para actualizar una cuenta. Admin y Active solo los cambia un administrador.
type UpdateUserRequest struct {
	NameProfile *string `json:"name_profile" validate:"omitempty,min=3,max=50,profile"`
	DateBirth   *string `json:"date_birth" validate:"omitempty,datetime=2006-01-02"`
	Active      *bool   `json:"active"`
	Admin       *bool   `json:"admin"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID          string    `json:"id"`
	NameProfile string    `json:"name_profile"`
	Email       string    `json:"email"`
	DateBirth   string    `json:"date_birth"`
	Active      bool      `json:"active"`
	Admin       bool      `json:"admin"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UserListResponse lista paginada de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	PageResponse
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=64"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"id_token"`
	User    UserResponse `json:"user"`
}
