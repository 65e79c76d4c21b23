package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase compra de un juego por un usuario. Price es el precio del juego al momento de la compra.
type Purchase struct {
	ID          string
	UserID      string
	GameID      string
	Price       decimal.Decimal
	PurchasedAt time.Time
	Active      bool
	UpdatedAt   time.Time
}
