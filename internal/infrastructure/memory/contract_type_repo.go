package memory

import (
	"context"
	"time"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

type contractTypeRow = entity.ContractType

// ContractTypeRepo implementa repository.ContractTypeRepository. La descripción es única.
type ContractTypeRepo struct {
	s *Store
}

var _ repository.ContractTypeRepository = (*ContractTypeRepo)(nil)

// ContractTypes repositorio de tipos de contrato del store.
func (s *Store) ContractTypes() *ContractTypeRepo {
	return &ContractTypeRepo{s: s}
}

func (r *ContractTypeRepo) descriptionTaken(desc, exceptID string) bool {
	key := foldKey(desc)
	return r.s.contractTypes.count(func(t contractTypeRow) bool {
		return t.ID != exceptID && foldKey(t.Description) == key
	}) > 0
}

func (r *ContractTypeRepo) Create(ctx context.Context, t *entity.ContractType) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.descriptionTaken(t.Description, "") {
		return domain.ErrDuplicate
	}
	if t.ID == "" {
		t.ID = domain.NewID()
	}
	now := time.Now().UTC()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
	r.s.contractTypes.put(t.ID, *t)
	return nil
}

func (r *ContractTypeRepo) GetByID(ctx context.Context, id string) (*entity.ContractType, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	t, ok := r.s.contractTypes.get(id)
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *ContractTypeRepo) FindByDescription(ctx context.Context, desc string) (*entity.ContractType, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	key := foldKey(desc)
	found := r.s.contractTypes.filter(func(t contractTypeRow) bool { return foldKey(t.Description) == key })
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

func (r *ContractTypeRepo) ListActive(ctx context.Context, page repository.Page) ([]*entity.ContractType, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rows := window(sorted(r.s.contractTypes.filter(func(t contractTypeRow) bool { return t.Active }),
		ascending(func(t contractTypeRow) string { return t.Description }, contractTypeRowID)), page)
	out := make([]*entity.ContractType, 0, len(rows))
	for i := range rows {
		t := rows[i]
		out = append(out, &t)
	}
	return out, nil
}

func (r *ContractTypeRepo) CountActive(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.contractTypes.count(func(t contractTypeRow) bool { return t.Active }), nil
}

func (r *ContractTypeRepo) Update(ctx context.Context, t *entity.ContractType) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.contractTypes.get(t.ID)
	if !ok {
		return false, nil
	}
	if r.descriptionTaken(t.Description, t.ID) {
		return false, domain.ErrDuplicate
	}
	t.CreatedAt = cur.CreatedAt
	t.UpdatedAt = time.Now().UTC()
	r.s.contractTypes.put(t.ID, *t)
	return true, nil
}

func (r *ContractTypeRepo) SetActive(ctx context.Context, id string, active bool) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.contractTypes.get(id)
	if !ok {
		return false, nil
	}
	t.Active = active
	t.UpdatedAt = time.Now().UTC()
	r.s.contractTypes.put(id, t)
	return true, nil
}

func contractTypeRowID(t contractTypeRow) string { return t.ID }
