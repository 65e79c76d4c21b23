package dto

import "time"

// CreateDeveloperRequest entrada para crear un desarrollador.
type CreateDeveloperRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Country     *string `json:"country" validate:"omitempty,max=100"`
	FoundedYear *int    `json:"founded_year" validate:"omitempty,gte=1900,lte=2100"`
}

// UpdateDeveloperRequest entrada para actualizar un desarrollador.
type UpdateDeveloperRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Country     *string `json:"country" validate:"omitempty,max=100"`
	FoundedYear *int    `json:"founded_year" validate:"omitempty,gte=1900,lte=2100"`
	Active      *bool   `json:"active"`
}

// DeveloperResponse salida de un desarrollador.
type DeveloperResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Country     *string   `json:"country"`
	FoundedYear *int      `json:"founded_year"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DeveloperListResponse lista paginada de desarrolladores.
type DeveloperListResponse struct {
	Items []DeveloperResponse `json:"items"`
	PageResponse
}
