package memory

import (
	"context"
	"time"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

type purchaseRow = entity.Purchase

// PurchaseRepo implementa repository.PurchaseRepository.
// A lo sumo una compra activa por (user_id, game_id).
type PurchaseRepo struct {
	s *Store
}

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// Purchases repositorio de compras del store.
func (s *Store) Purchases() *PurchaseRepo {
	return &PurchaseRepo{s: s}
}

func (r *PurchaseRepo) activeTaken(p purchaseRow) bool {
	if !p.Active {
		return false
	}
	return r.s.purchases.count(func(o purchaseRow) bool {
		return o.ID != p.ID && o.Active && o.UserID == p.UserID && o.GameID == p.GameID
	}) > 0
}

func matchPurchase(f repository.PurchaseFilter) func(purchaseRow) bool {
	return func(p purchaseRow) bool {
		return p.Active && (f.UserID == "" || p.UserID == f.UserID)
	}
}

func (r *PurchaseRepo) Create(ctx context.Context, p *entity.Purchase) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p.ID == "" {
		p.ID = domain.NewID()
	}
	if r.activeTaken(*p) {
		return domain.ErrDuplicate
	}
	now := time.Now().UTC()
	if p.PurchasedAt.IsZero() {
		p.PurchasedAt = now
	}
	p.UpdatedAt = now
	r.s.purchases.put(p.ID, *p)
	return nil
}

func (r *PurchaseRepo) GetByID(ctx context.Context, id string) (*entity.Purchase, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.purchases.get(id)
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *PurchaseRepo) FindActiveByUserAndGame(ctx context.Context, userID, gameID string) (*entity.Purchase, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	found := r.s.purchases.filter(func(p purchaseRow) bool {
		return p.Active && p.UserID == userID && p.GameID == gameID
	})
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

func (r *PurchaseRepo) ListActive(ctx context.Context, f repository.PurchaseFilter, page repository.Page) ([]*entity.Purchase, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rows := window(sorted(r.s.purchases.filter(matchPurchase(f)),
		newestFirst(func(p purchaseRow) time.Time { return p.PurchasedAt }, purchaseRowID)), page)
	out := make([]*entity.Purchase, 0, len(rows))
	for i := range rows {
		p := rows[i]
		out = append(out, &p)
	}
	return out, nil
}

func (r *PurchaseRepo) CountActive(ctx context.Context, f repository.PurchaseFilter) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.purchases.count(matchPurchase(f)), nil
}

func (r *PurchaseRepo) Update(ctx context.Context, p *entity.Purchase) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.purchases.get(p.ID); !ok {
		return false, nil
	}
	if r.activeTaken(*p) {
		return true, domain.ErrDuplicate
	}
	p.UpdatedAt = time.Now().UTC()
	r.s.purchases.put(p.ID, *p)
	return true, nil
}

func (r *PurchaseRepo) SetActive(ctx context.Context, id string, active bool) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.purchases.get(id)
	if !ok {
		return false, nil
	}
	p.Active = active
	if r.activeTaken(p) {
		return true, domain.ErrDuplicate
	}
	p.UpdatedAt = time.Now().UTC()
	r.s.purchases.put(id, p)
	return true, nil
}

func purchaseRowID(p purchaseRow) string { return p.ID }
