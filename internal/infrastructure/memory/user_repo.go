package memory

import (
	"context"
	"time"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

type userRow = entity.User

// UserRepo implementa repository.UserRepository. El email es único sin distinguir mayúsculas.
type UserRepo struct {
	s *Store
}

var _ repository.UserRepository = (*UserRepo)(nil)

// Users repositorio de usuarios del store.
func (s *Store) Users() *UserRepo {
	return &UserRepo{s: s}
}

func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := foldKey(u.Email)
	if r.s.users.count(func(o userRow) bool { return foldKey(o.Email) == key }) > 0 {
		return domain.ErrEmailAlreadyExists
	}
	if u.ID == "" {
		u.ID = domain.NewID()
	}
	now := time.Now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	r.s.users.put(u.ID, *u)
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users.get(id)
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	key := foldKey(email)
	found := r.s.users.filter(func(u userRow) bool { return foldKey(u.Email) == key })
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

func (r *UserRepo) List(ctx context.Context, page repository.Page) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rows := window(sorted(r.s.users.filter(func(userRow) bool { return true }),
		newestFirst(func(u userRow) time.Time { return u.CreatedAt }, userRowID)), page)
	out := make([]*entity.User, 0, len(rows))
	for i := range rows {
		u := rows[i]
		out = append(out, &u)
	}
	return out, nil
}

func (r *UserRepo) Count(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.users.items)), nil
}

func (r *UserRepo) Update(ctx context.Context, u *entity.User) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.users.get(u.ID)
	if !ok {
		return false, nil
	}
	u.CreatedAt = cur.CreatedAt
	u.UpdatedAt = time.Now().UTC()
	r.s.users.put(u.ID, *u)
	return true, nil
}

func (r *UserRepo) SetActive(ctx context.Context, id string, active bool) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users.get(id)
	if !ok {
		return false, nil
	}
	u.Active = active
	u.UpdatedAt = time.Now().UTC()
	r.s.users.put(id, u)
	return true, nil
}

func userRowID(u userRow) string { return u.ID }
