package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, name_profile, email, password_hash, date_birth, active, admin, created_at, updated_at`

func scanUser(s scanner, u *entity.User) error {
	return s.Scan(&u.ID, &u.NameProfile, &u.Email, &u.PasswordHash, &u.DateBirth, &u.Active, &u.Admin,
		&u.CreatedAt, &u.UpdatedAt)
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.ID == "" {
		user.ID = domain.NewID()
	}
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
		RETURNING created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		user.ID, user.NameProfile, user.Email, user.PasswordHash, user.DateBirth, user.Active, user.Admin,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return domain.StoreError("insert user", err)
	}
	return nil
}

func (r *UserRepo) getOne(ctx context.Context, op, where string, arg any) (*entity.User, error) {
	var u entity.User
	err := scanUser(r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE `+where+` LIMIT 1`, arg), &u)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.StoreError(op, err)
	}
	return &u, nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.getOne(ctx, "get user by id", `id = $1`, id)
}

// GetByEmail obtiene un usuario por email sin distinguir mayúsculas.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getOne(ctx, "get user by email", `lower(email) = lower($1)`, email)
}

// List lista usuarios con paginación, más recientes primero.
func (r *UserRepo) List(ctx context.Context, page repository.Page) ([]*entity.User, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at DESC, id DESC OFFSET $1 LIMIT $2`,
		page.Skip, page.Limit)
	if err != nil {
		return nil, domain.StoreError("list users", err)
	}
	defer rows.Close()
	list := make([]*entity.User, 0, page.Limit)
	for rows.Next() {
		var u entity.User
		if err := scanUser(rows, &u); err != nil {
			return nil, domain.StoreError("scan user", err)
		}
		list = append(list, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StoreError("list users", err)
	}
	return list, nil
}

// Count total de usuarios.
func (r *UserRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&n); err != nil {
		return 0, domain.StoreError("count users", err)
	}
	return n, nil
}

// Update actualiza perfil y flags. El email y la contraseña no cambian por esta vía.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) (bool, error) {
	query := `
		UPDATE users SET name_profile = $2, date_birth = $3, active = $4, admin = $5, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, user.ID, user.NameProfile, user.DateBirth, user.Active, user.Admin)
	if err != nil {
		return false, domain.StoreError("update user", err)
	}
	return tag.RowsAffected() > 0, nil
}

// SetActive cambia el estado del usuario.
func (r *UserRepo) SetActive(ctx context.Context, id string, active bool) (bool, error) {
	tag, err := r.q.Exec(ctx, `UPDATE users SET active = $2, updated_at = now() WHERE id = $1`, id, active)
	if err != nil {
		return false, domain.StoreError("set user active", err)
	}
	return tag.RowsAffected() > 0, nil
}
