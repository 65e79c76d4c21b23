package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateGameRequest entrada para crear un juego.
type CreateGameRequest struct {
	Title       string          `json:"title" validate:"required,min=1,max=100"`
	Description string          `json:"description" validate:"required,min=10,max=500"`
	ReleaseDate string          `json:"release_date" validate:"required,datetime=2006-01-02"`
	Price       decimal.Decimal `json:"price"`
	DeveloperID string          `json:"developer_id" validate:"required,objectid"`
	Status      string          `json:"status" validate:"required,oneof=demo oferta gratis completo"`
}

// UpdateGameRequest entrada para actualizar un juego.
type UpdateGameRequest struct {
	Title       *string          `json:"title" validate:"omitempty,min=1,max=100"`
	Description *string          `json:"description" validate:"omitempty,min=10,max=500"`
	ReleaseDate *string          `json:"release_date" validate:"omitempty,datetime=2006-01-02"`
	Price       *decimal.Decimal `json:"price"`
	DeveloperID *string          `json:"developer_id" validate:"omitempty,objectid"`
	Status      *string          `json:"status" validate:"omitempty,oneof=demo oferta gratis completo"`
	Active      *bool            `json:"active"`
}

// GameResponse salida de un juego.
type GameResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	ReleaseDate string          `json:"release_date"`
	Price       decimal.Decimal `json:"price"`
	DeveloperID string          `json:"developer_id"`
	Status      string          `json:"status"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// GameListResponse lista paginada de juegos.
type GameListResponse struct {
	Items []GameResponse `json:"items"`
	PageResponse
}
