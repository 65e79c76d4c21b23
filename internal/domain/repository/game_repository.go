package repository

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// GameRepository define el puerto de persistencia para Game.
type GameRepository interface {
	Create(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	// FindByTitle búsqueda exacta sin distinguir mayúsculas. (nil, nil) si no existe.
	FindByTitle(ctx context.Context, title string) (*entity.Game, error)
	ListActive(ctx context.Context, page Page) ([]*entity.Game, error)
	CountActive(ctx context.Context) (int64, error)
	Update(ctx context.Context, game *entity.Game) (bool, error)
	SetActive(ctx context.Context, id string, active bool) (bool, error)
}
