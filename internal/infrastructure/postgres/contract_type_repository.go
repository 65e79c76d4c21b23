package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.ContractTypeRepository = (*ContractTypeRepo)(nil)

// ContractTypeRepo implementación del puerto ContractTypeRepository sobre PostgreSQL.
type ContractTypeRepo struct {
	q Querier
}

// NewContractTypeRepository construye el adaptador.
func NewContractTypeRepository(q Querier) *ContractTypeRepo {
	return &ContractTypeRepo{q: q}
}

const contractTypeColumns = `id, description, active, created_at, updated_at`

func scanContractType(s scanner, t *entity.ContractType) error {
	return s.Scan(&t.ID, &t.Description, &t.Active, &t.CreatedAt, &t.UpdatedAt)
}

// Create persiste un nuevo tipo de contrato.
func (r *ContractTypeRepo) Create(ctx context.Context, t *entity.ContractType) error {
	if t.ID == "" {
		t.ID = domain.NewID()
	}
	query := `
		INSERT INTO contract_types (` + contractTypeColumns + `)
		VALUES ($1, $2, $3, now(), now())
		RETURNING created_at, updated_at`
	if err := r.q.QueryRow(ctx, query, t.ID, t.Description, t.Active).Scan(&t.CreatedAt, &t.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return domain.StoreError("insert contract type", err)
	}
	return nil
}

func (r *ContractTypeRepo) getOne(ctx context.Context, op, where string, arg any) (*entity.ContractType, error) {
	var t entity.ContractType
	err := scanContractType(r.q.QueryRow(ctx, `SELECT `+contractTypeColumns+` FROM contract_types WHERE `+where+` LIMIT 1`, arg), &t)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.StoreError(op, err)
	}
	return &t, nil
}

// GetByID obtiene un tipo de contrato por ID.
func (r *ContractTypeRepo) GetByID(ctx context.Context, id string) (*entity.ContractType, error) {
	return r.getOne(ctx, "get contract type by id", `id = $1`, id)
}

// FindByDescription búsqueda exacta sin distinguir mayúsculas.
func (r *ContractTypeRepo) FindByDescription(ctx context.Context, desc string) (*entity.ContractType, error) {
	return r.getOne(ctx, "get contract type by description", `lower(description) = lower($1)`, desc)
}

// ListActive tipos de contrato activos.
func (r *ContractTypeRepo) ListActive(ctx context.Context, page repository.Page) ([]*entity.ContractType, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+contractTypeColumns+` FROM contract_types WHERE active ORDER BY description, id OFFSET $1 LIMIT $2`,
		page.Skip, page.Limit)
	if err != nil {
		return nil, domain.StoreError("list contract types", err)
	}
	defer rows.Close()
	list := make([]*entity.ContractType, 0, page.Limit)
	for rows.Next() {
		var t entity.ContractType
		if err := scanContractType(rows, &t); err != nil {
			return nil, domain.StoreError("scan contract type", err)
		}
		list = append(list, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StoreError("list contract types", err)
	}
	return list, nil
}

// CountActive total de tipos activos.
func (r *ContractTypeRepo) CountActive(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM contract_types WHERE active`).Scan(&n); err != nil {
		return 0, domain.StoreError("count contract types", err)
	}
	return n, nil
}

// Update actualiza un tipo de contrato.
func (r *ContractTypeRepo) Update(ctx context.Context, t *entity.ContractType) (bool, error) {
	tag, err := r.q.Exec(ctx,
		`UPDATE contract_types SET description = $2, active = $3, updated_at = now() WHERE id = $1`,
		t.ID, t.Description, t.Active)
	if err != nil {
		if isUniqueViolation(err) {
			return true, domain.ErrDuplicate
		}
		return false, domain.StoreError("update contract type", err)
	}
	return tag.RowsAffected() > 0, nil
}

// SetActive cambia el estado del tipo.
func (r *ContractTypeRepo) SetActive(ctx context.Context, id string, active bool) (bool, error) {
	tag, err := r.q.Exec(ctx, `UPDATE contract_types SET active = $2, updated_at = now() WHERE id = $1`, id, active)
	if err != nil {
		return false, domain.StoreError("set contract type active", err)
	}
	return tag.RowsAffected() > 0, nil
}
