package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.ContractRepository = (*ContractRepo)(nil)

// ContractRepo implementación del puerto ContractRepository sobre PostgreSQL.
// El índice parcial contracts_active_pair_key garantiza un único contrato activo por par.
type ContractRepo struct {
	q Querier
}

// NewContractRepository construye el adaptador. Acepta pool o tx (Querier).
func NewContractRepository(q Querier) *ContractRepo {
	return &ContractRepo{q: q}
}

const contractColumns = `id, developer_id, game_id, type_contract_id, start_date, end_date, active, created_at, updated_at`

func scanContract(s scanner, c *entity.Contract) error {
	return s.Scan(&c.ID, &c.DeveloperID, &c.GameID, &c.TypeContractID, &c.StartDate, &c.EndDate,
		&c.Active, &c.CreatedAt, &c.UpdatedAt)
}

// Create asigna el ID y persiste el contrato.
func (r *ContractRepo) Create(ctx context.Context, c *entity.Contract) error {
	if c.ID == "" {
		c.ID = domain.NewID()
	}
	query := `
		INSERT INTO contracts (` + contractColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
		RETURNING created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		c.ID, c.DeveloperID, c.GameID, c.TypeContractID, c.StartDate, c.EndDate, c.Active,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return contractWriteError("insert contract", err)
	}
	return nil
}

// GetByID obtiene un contrato por ID sin filtrar por estado.
func (r *ContractRepo) GetByID(ctx context.Context, id string) (*entity.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE id = $1`
	var c entity.Contract
	if err := scanContract(r.q.QueryRow(ctx, query, id), &c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.StoreError("get contract by id", err)
	}
	return &c, nil
}

// ListActive contratos activos de la ventana; sin ORDER BY, el orden no está garantizado.
func (r *ContractRepo) ListActive(ctx context.Context, page repository.Page) ([]*entity.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE active OFFSET $1 LIMIT $2`
	rows, err := r.q.Query(ctx, query, page.Skip, page.Limit)
	if err != nil {
		return nil, domain.StoreError("list contracts", err)
	}
	defer rows.Close()
	list := make([]*entity.Contract, 0, page.Limit)
	for rows.Next() {
		var c entity.Contract
		if err := scanContract(rows, &c); err != nil {
			return nil, domain.StoreError("scan contract", err)
		}
		list = append(list, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StoreError("list contracts", err)
	}
	return list, nil
}

// detailedQuery pagina los contratos activos y después resuelve las referencias con INNER JOIN:
// una fila cuya referencia no existe se descarta sin rellenar el hueco de la página.
const detailedQuery = `
	WITH page AS (
		SELECT ` + contractColumns + `
		FROM contracts
		WHERE active
		OFFSET $1 LIMIT $2
	)
	SELECT p.id, p.developer_id, p.game_id, p.type_contract_id, p.start_date, p.end_date,
	       p.active, p.created_at, p.updated_at,
	       d.name, g.title, t.description
	FROM page p
	JOIN developers d ON d.id = p.developer_id
	JOIN games g ON g.id = p.game_id
	JOIN contract_types t ON t.id = p.type_contract_id`

// ListActiveDetailed vista enriquecida en una sola consulta.
func (r *ContractRepo) ListActiveDetailed(ctx context.Context, page repository.Page) ([]*entity.ContractDetail, error) {
	rows, err := r.q.Query(ctx, detailedQuery, page.Skip, page.Limit)
	if err != nil {
		return nil, domain.StoreError("list contract details", err)
	}
	defer rows.Close()
	list := make([]*entity.ContractDetail, 0, page.Limit)
	for rows.Next() {
		var d entity.ContractDetail
		c := &d.Contract
		if err := rows.Scan(&c.ID, &c.DeveloperID, &c.GameID, &c.TypeContractID, &c.StartDate, &c.EndDate,
			&c.Active, &c.CreatedAt, &c.UpdatedAt,
			&d.Developer.Name, &d.Game.Title, &d.ContractType.Description); err != nil {
			return nil, domain.StoreError("scan contract detail", err)
		}
		d.Developer.ID = c.DeveloperID
		d.Game.ID = c.GameID
		d.ContractType.ID = c.TypeContractID
		list = append(list, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StoreError("list contract details", err)
	}
	return list, nil
}

// CountActive total de contratos activos.
func (r *ContractRepo) CountActive(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM contracts WHERE active`).Scan(&n); err != nil {
		return 0, domain.StoreError("count contracts", err)
	}
	return n, nil
}

// CountActiveByPair usa el mismo predicado que contracts_active_pair_key.
func (r *ContractRepo) CountActiveByPair(ctx context.Context, developerID, gameID, excludeID string) (int64, error) {
	query := `
		SELECT count(*) FROM contracts
		WHERE active AND developer_id = $1 AND game_id = $2 AND ($3 = '' OR id <> $3)`
	var n int64
	if err := r.q.QueryRow(ctx, query, developerID, gameID, excludeID).Scan(&n); err != nil {
		return 0, domain.StoreError("count contracts by pair", err)
	}
	return n, nil
}

// Update reemplaza los campos mutables del contrato.
func (r *ContractRepo) Update(ctx context.Context, c *entity.Contract) (bool, error) {
	query := `
		UPDATE contracts
		SET developer_id = $2, game_id = $3, type_contract_id = $4, start_date = $5, end_date = $6,
		    active = $7, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`
	err := r.q.QueryRow(ctx, query,
		c.ID, c.DeveloperID, c.GameID, c.TypeContractID, c.StartDate, c.EndDate, c.Active,
	).Scan(&c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return true, contractWriteError("update contract", err)
	}
	return true, nil
}

// SetActive cambia el estado; desactivar dos veces no es un error.
func (r *ContractRepo) SetActive(ctx context.Context, id string, active bool) (bool, error) {
	tag, err := r.q.Exec(ctx, `UPDATE contracts SET active = $2, updated_at = now() WHERE id = $1`, id, active)
	if err != nil {
		return true, contractWriteError("set contract active", err)
	}
	return tag.RowsAffected() > 0, nil
}
