package memory

import (
	"context"
	"time"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

type developerRow = entity.Developer

// DeveloperRepo implementa repository.DeveloperRepository.
type DeveloperRepo struct {
	s *Store
}

var _ repository.DeveloperRepository = (*DeveloperRepo)(nil)

// Developers repositorio de desarrolladores del store.
func (s *Store) Developers() *DeveloperRepo {
	return &DeveloperRepo{s: s}
}

func (r *DeveloperRepo) Create(ctx context.Context, d *entity.Developer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if d.ID == "" {
		d.ID = domain.NewID()
	}
	now := time.Now().UTC()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	d.UpdatedAt = now
	r.s.developers.put(d.ID, *d)
	return nil
}

func (r *DeveloperRepo) GetByID(ctx context.Context, id string) (*entity.Developer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	d, ok := r.s.developers.get(id)
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (r *DeveloperRepo) ListActive(ctx context.Context, page repository.Page) ([]*entity.Developer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rows := window(sorted(r.s.developers.filter(func(d developerRow) bool { return d.Active }),
		ascending(func(d developerRow) string { return d.Name }, developerRowID)), page)
	out := make([]*entity.Developer, 0, len(rows))
	for i := range rows {
		d := rows[i]
		out = append(out, &d)
	}
	return out, nil
}

func (r *DeveloperRepo) CountActive(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.developers.count(func(d developerRow) bool { return d.Active }), nil
}

func (r *DeveloperRepo) Update(ctx context.Context, d *entity.Developer) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.developers.get(d.ID)
	if !ok {
		return false, nil
	}
	d.CreatedAt = cur.CreatedAt
	d.UpdatedAt = time.Now().UTC()
	r.s.developers.put(d.ID, *d)
	return true, nil
}

func (r *DeveloperRepo) SetActive(ctx context.Context, id string, active bool) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	d, ok := r.s.developers.get(id)
	if !ok {
		return false, nil
	}
	d.Active = active
	d.UpdatedAt = time.Now().UTC()
	r.s.developers.put(id, d)
	return true, nil
}

// Delete borra físicamente un desarrollador. Solo para tests de referencias colgantes.
func (r *DeveloperRepo) Delete(id string) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.developers.delete(id)
}

func developerRowID(d developerRow) string { return d.ID }
