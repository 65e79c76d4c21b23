package repository

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// PurchaseFilter filtro de listado; UserID vacío = todas las compras activas.
type PurchaseFilter struct {
	UserID string
}

// PurchaseRepository define el puerto de persistencia para Purchase.
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase) error
	GetByID(ctx context.Context, id string) (*entity.Purchase, error)
	// FindActiveByUserAndGame (nil, nil) si el usuario no tiene una compra activa del juego.
	FindActiveByUserAndGame(ctx context.Context, userID, gameID string) (*entity.Purchase, error)
	ListActive(ctx context.Context, filter PurchaseFilter, page Page) ([]*entity.Purchase, error)
	CountActive(ctx context.Context, filter PurchaseFilter) (int64, error)
	Update(ctx context.Context, purchase *entity.Purchase) (bool, error)
	SetActive(ctx context.Context, id string, active bool) (bool, error)
}
