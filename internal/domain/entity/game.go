package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados comerciales de un juego.
const (
	GameStatusDemo     = "demo"
	GameStatusOferta   = "oferta"
	GameStatusGratis   = "gratis"
	GameStatusCompleto = "completo"
)

// Game representa un videojuego del catálogo. Pertenece a un Developer.
type Game struct {
	ID          string
	Title       string
	Description string
	ReleaseDate time.Time
	Price       decimal.Decimal
	DeveloperID string
	Status      string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
