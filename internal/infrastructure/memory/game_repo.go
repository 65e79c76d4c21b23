package memory

import (
	"context"
	"time"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

type gameRow = entity.Game

// GameRepo implementa repository.GameRepository. El título es único sin distinguir mayúsculas.
type GameRepo struct {
	s *Store
}

var _ repository.GameRepository = (*GameRepo)(nil)

// Games repositorio de juegos del store.
func (s *Store) Games() *GameRepo {
	return &GameRepo{s: s}
}

func (r *GameRepo) titleTaken(title, exceptID string) bool {
	key := foldKey(title)
	return r.s.games.count(func(g gameRow) bool {
		return g.ID != exceptID && foldKey(g.Title) == key
	}) > 0
}

func (r *GameRepo) Create(ctx context.Context, g *entity.Game) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.titleTaken(g.Title, "") {
		return domain.ErrDuplicate
	}
	if g.ID == "" {
		g.ID = domain.NewID()
	}
	now := time.Now().UTC()
	if g.CreatedAt.IsZero() {
		g.CreatedAt = now
	}
	g.UpdatedAt = now
	r.s.games.put(g.ID, *g)
	return nil
}

func (r *GameRepo) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	g, ok := r.s.games.get(id)
	if !ok {
		return nil, nil
	}
	return &g, nil
}

func (r *GameRepo) FindByTitle(ctx context.Context, title string) (*entity.Game, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	key := foldKey(title)
	found := r.s.games.filter(func(g gameRow) bool { return foldKey(g.Title) == key })
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

func (r *GameRepo) ListActive(ctx context.Context, page repository.Page) ([]*entity.Game, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rows := window(sorted(r.s.games.filter(func(g gameRow) bool { return g.Active }),
		ascending(func(g gameRow) string { return g.Title }, gameRowID)), page)
	out := make([]*entity.Game, 0, len(rows))
	for i := range rows {
		g := rows[i]
		out = append(out, &g)
	}
	return out, nil
}

func (r *GameRepo) CountActive(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.games.count(func(g gameRow) bool { return g.Active }), nil
}

func (r *GameRepo) Update(ctx context.Context, g *entity.Game) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.games.get(g.ID)
	if !ok {
		return false, nil
	}
	if r.titleTaken(g.Title, g.ID) {
		return false, domain.ErrDuplicate
	}
	g.CreatedAt = cur.CreatedAt
	g.UpdatedAt = time.Now().UTC()
	r.s.games.put(g.ID, *g)
	return true, nil
}

func (r *GameRepo) SetActive(ctx context.Context, id string, active bool) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	g, ok := r.s.games.get(id)
	if !ok {
		return false, nil
	}
	g.Active = active
	g.UpdatedAt = time.Now().UTC()
	r.s.games.put(id, g)
	return true, nil
}

// Delete borra físicamente un juego. Solo para tests de referencias colgantes.
func (r *GameRepo) Delete(id string) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.games.delete(id)
}

func gameRowID(g gameRow) string { return g.ID }
