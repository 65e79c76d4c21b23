package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePurchaseRequest entrada para comprar un juego.
type CreatePurchaseRequest struct {
	GameID string `json:"game_id" validate:"required,objectid"`
}

// UpdatePurchaseRequest corrección administrativa de una compra.
type UpdatePurchaseRequest struct {
	Price  *decimal.Decimal `json:"price"`
	Active *bool            `json:"active"`
}

// PurchaseResponse salida de una compra.
type PurchaseResponse struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	GameID      string          `json:"game_id"`
	Price       decimal.Decimal `json:"price"`
	PurchasedAt time.Time       `json:"purchased_at"`
	Active      bool            `json:"active"`
}

// PurchaseListResponse lista paginada de compras.
type PurchaseListResponse struct {
	Items []PurchaseResponse `json:"items"`
	PageResponse
}
