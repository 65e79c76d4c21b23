package postgres

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.WishlistRepository = (*WishlistRepo)(nil)

// WishlistRepo implementación del puerto WishlistRepository sobre PostgreSQL.
type WishlistRepo struct {
	q Querier
}

// NewWishlistRepository construye el adaptador.
func NewWishlistRepository(q Querier) *WishlistRepo {
	return &WishlistRepo{q: q}
}

// Add inserta el par (usuario, juego); el UNIQUE de la tabla rechaza duplicados.
func (r *WishlistRepo) Add(ctx context.Context, it *entity.WishlistItem) error {
	if it.ID == "" {
		it.ID = domain.NewID()
	}
	err := r.q.QueryRow(ctx,
		`INSERT INTO wishlist_items (id, user_id, game_id, created_at) VALUES ($1, $2, $3, now()) RETURNING created_at`,
		it.ID, it.UserID, it.GameID,
	).Scan(&it.CreatedAt)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrDuplicate
		case isForeignKeyViolation(err):
			return domain.ErrInvalidReference
		}
		return domain.StoreError("insert wishlist item", err)
	}
	return nil
}

// ListByUser deseos del usuario, más recientes primero.
func (r *WishlistRepo) ListByUser(ctx context.Context, userID string, page repository.Page) ([]*entity.WishlistItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, user_id, game_id, created_at FROM wishlist_items
		WHERE user_id = $1 ORDER BY created_at DESC, id DESC OFFSET $2 LIMIT $3`,
		userID, page.Skip, page.Limit)
	if err != nil {
		return nil, domain.StoreError("list wishlist", err)
	}
	defer rows.Close()
	list := make([]*entity.WishlistItem, 0, page.Limit)
	for rows.Next() {
		var it entity.WishlistItem
		if err := rows.Scan(&it.ID, &it.UserID, &it.GameID, &it.CreatedAt); err != nil {
			return nil, domain.StoreError("scan wishlist item", err)
		}
		list = append(list, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StoreError("list wishlist", err)
	}
	return list, nil
}

// CountByUser total de deseos del usuario.
func (r *WishlistRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM wishlist_items WHERE user_id = $1`, userID).Scan(&n); err != nil {
		return 0, domain.StoreError("count wishlist", err)
	}
	return n, nil
}

// Remove quita el par (usuario, juego).
func (r *WishlistRepo) Remove(ctx context.Context, userID, gameID string) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM wishlist_items WHERE user_id = $1 AND game_id = $2`, userID, gameID)
	if err != nil {
		return false, domain.StoreError("delete wishlist item", err)
	}
	return tag.RowsAffected() > 0, nil
}
