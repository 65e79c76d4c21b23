package repository

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// WishlistRepository define el puerto de persistencia para la lista de deseos.
type WishlistRepository interface {
	// Add devuelve domain.ErrDuplicate si el juego ya está en la lista del usuario.
	Add(ctx context.Context, item *entity.WishlistItem) error
	ListByUser(ctx context.Context, userID string, page Page) ([]*entity.WishlistItem, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	// Remove devuelve false si el juego no estaba en la lista.
	Remove(ctx context.Context, userID, gameID string) (bool, error)
}
