package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.DeveloperRepository = (*DeveloperRepo)(nil)

// DeveloperRepo implementación del puerto DeveloperRepository sobre PostgreSQL.
type DeveloperRepo struct {
	q Querier
}

// NewDeveloperRepository construye el adaptador.
func NewDeveloperRepository(q Querier) *DeveloperRepo {
	return &DeveloperRepo{q: q}
}

const developerColumns = `id, name, country, founded_year, active, created_at, updated_at`

func scanDeveloper(s scanner, d *entity.Developer) error {
	return s.Scan(&d.ID, &d.Name, &d.Country, &d.FoundedYear, &d.Active, &d.CreatedAt, &d.UpdatedAt)
}

// Create persiste un nuevo desarrollador.
func (r *DeveloperRepo) Create(ctx context.Context, d *entity.Developer) error {
	if d.ID == "" {
		d.ID = domain.NewID()
	}
	query := `
		INSERT INTO developers (` + developerColumns + `)
		VALUES ($1, $2, $3, $4, $5, now(), now())
		RETURNING created_at, updated_at`
	if err := r.q.QueryRow(ctx, query, d.ID, d.Name, d.Country, d.FoundedYear, d.Active).
		Scan(&d.CreatedAt, &d.UpdatedAt); err != nil {
		return domain.StoreError("insert developer", err)
	}
	return nil
}

// GetByID obtiene un desarrollador por ID.
func (r *DeveloperRepo) GetByID(ctx context.Context, id string) (*entity.Developer, error) {
	var d entity.Developer
	err := scanDeveloper(r.q.QueryRow(ctx, `SELECT `+developerColumns+` FROM developers WHERE id = $1`, id), &d)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.StoreError("get developer by id", err)
	}
	return &d, nil
}

// ListActive desarrolladores activos por nombre.
func (r *DeveloperRepo) ListActive(ctx context.Context, page repository.Page) ([]*entity.Developer, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+developerColumns+` FROM developers WHERE active ORDER BY name, id OFFSET $1 LIMIT $2`,
		page.Skip, page.Limit)
	if err != nil {
		return nil, domain.StoreError("list developers", err)
	}
	defer rows.Close()
	list := make([]*entity.Developer, 0, page.Limit)
	for rows.Next() {
		var d entity.Developer
		if err := scanDeveloper(rows, &d); err != nil {
			return nil, domain.StoreError("scan developer", err)
		}
		list = append(list, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StoreError("list developers", err)
	}
	return list, nil
}

// CountActive total de desarrolladores activos.
func (r *DeveloperRepo) CountActive(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM developers WHERE active`).Scan(&n); err != nil {
		return 0, domain.StoreError("count developers", err)
	}
	return n, nil
}

// Update actualiza un desarrollador.
func (r *DeveloperRepo) Update(ctx context.Context, d *entity.Developer) (bool, error) {
	query := `
		UPDATE developers SET name = $2, country = $3, founded_year = $4, active = $5, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, d.ID, d.Name, d.Country, d.FoundedYear, d.Active)
	if err != nil {
		return false, domain.StoreError("update developer", err)
	}
	return tag.RowsAffected() > 0, nil
}

// SetActive cambia el estado del desarrollador.
func (r *DeveloperRepo) SetActive(ctx context.Context, id string, active bool) (bool, error) {
	tag, err := r.q.Exec(ctx, `UPDATE developers SET active = $2, updated_at = now() WHERE id = $1`, id, active)
	if err != nil {
		return false, domain.StoreError("set developer active", err)
	}
	return tag.RowsAffected() > 0, nil
}
