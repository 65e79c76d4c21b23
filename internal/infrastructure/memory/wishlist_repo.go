package memory

import (
	"context"
	"time"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

type wishlistRow = entity.WishlistItem

// WishlistRepo implementa repository.WishlistRepository.
type WishlistRepo struct {
	s *Store
}

var _ repository.WishlistRepository = (*WishlistRepo)(nil)

// Wishlist repositorio de listas de deseos del store.
func (s *Store) Wishlist() *WishlistRepo {
	return &WishlistRepo{s: s}
}

func (r *WishlistRepo) Add(ctx context.Context, it *entity.WishlistItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.wishlist.count(func(o wishlistRow) bool { return o.UserID == it.UserID && o.GameID == it.GameID }) > 0 {
		return domain.ErrDuplicate
	}
	if it.ID == "" {
		it.ID = domain.NewID()
	}
	if it.CreatedAt.IsZero() {
		it.CreatedAt = time.Now().UTC()
	}
	r.s.wishlist.put(it.ID, *it)
	return nil
}

func (r *WishlistRepo) ListByUser(ctx context.Context, userID string, page repository.Page) ([]*entity.WishlistItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rows := window(sorted(r.s.wishlist.filter(func(w wishlistRow) bool { return w.UserID == userID }),
		newestFirst(func(w wishlistRow) time.Time { return w.CreatedAt }, wishlistRowID)), page)
	out := make([]*entity.WishlistItem, 0, len(rows))
	for i := range rows {
		w := rows[i]
		out = append(out, &w)
	}
	return out, nil
}

func (r *WishlistRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.wishlist.count(func(w wishlistRow) bool { return w.UserID == userID }), nil
}

func (r *WishlistRepo) Remove(ctx context.Context, userID, gameID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	found := r.s.wishlist.filter(func(w wishlistRow) bool { return w.UserID == userID && w.GameID == gameID })
	if len(found) == 0 {
		return false, nil
	}
	for _, w := range found {
		r.s.wishlist.delete(w.ID)
	}
	return true, nil
}

func wishlistRowID(w wishlistRow) string { return w.ID }
