package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.GameRepository = (*GameRepo)(nil)

// GameRepo implementación del puerto GameRepository sobre PostgreSQL.
// El índice games_title_lower_key hace único el título sin distinguir mayúsculas.
type GameRepo struct {
	q Querier
}

// NewGameRepository construye el adaptador.
func NewGameRepository(q Querier) *GameRepo {
	return &GameRepo{q: q}
}

const gameColumns = `id, title, description, release_date, price, developer_id, status, active, created_at, updated_at`

func scanGame(s scanner, g *entity.Game) error {
	return s.Scan(&g.ID, &g.Title, &g.Description, &g.ReleaseDate, &g.Price, &g.DeveloperID, &g.Status,
		&g.Active, &g.CreatedAt, &g.UpdatedAt)
}

func gameWriteError(op string, err error) error {
	switch {
	case isUniqueViolation(err):
		return domain.ErrDuplicate
	case isForeignKeyViolation(err):
		return domain.InvalidRef(domain.FieldDeveloperID, "no existe")
	default:
		return domain.StoreError(op, err)
	}
}

// Create persiste un nuevo juego. Price se guarda como NUMERIC (codec shopspring).
func (r *GameRepo) Create(ctx context.Context, g *entity.Game) error {
	if g.ID == "" {
		g.ID = domain.NewID()
	}
	query := `
		INSERT INTO games (` + gameColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
		RETURNING created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		g.ID, g.Title, g.Description, g.ReleaseDate, g.Price, g.DeveloperID, g.Status, g.Active,
	).Scan(&g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return gameWriteError("insert game", err)
	}
	return nil
}

func (r *GameRepo) getOne(ctx context.Context, op, where string, arg any) (*entity.Game, error) {
	var g entity.Game
	err := scanGame(r.q.QueryRow(ctx, `SELECT `+gameColumns+` FROM games WHERE `+where+` LIMIT 1`, arg), &g)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.StoreError(op, err)
	}
	return &g, nil
}

// GetByID obtiene un juego por ID.
func (r *GameRepo) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	return r.getOne(ctx, "get game by id", `id = $1`, id)
}

// FindByTitle búsqueda exacta sin distinguir mayúsculas.
func (r *GameRepo) FindByTitle(ctx context.Context, title string) (*entity.Game, error) {
	return r.getOne(ctx, "get game by title", `lower(title) = lower($1)`, title)
}

// ListActive juegos activos por título.
func (r *GameRepo) ListActive(ctx context.Context, page repository.Page) ([]*entity.Game, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+gameColumns+` FROM games WHERE active ORDER BY title, id OFFSET $1 LIMIT $2`,
		page.Skip, page.Limit)
	if err != nil {
		return nil, domain.StoreError("list games", err)
	}
	defer rows.Close()
	list := make([]*entity.Game, 0, page.Limit)
	for rows.Next() {
		var g entity.Game
		if err := scanGame(rows, &g); err != nil {
			return nil, domain.StoreError("scan game", err)
		}
		list = append(list, &g)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StoreError("list games", err)
	}
	return list, nil
}

// CountActive total de juegos activos.
func (r *GameRepo) CountActive(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM games WHERE active`).Scan(&n); err != nil {
		return 0, domain.StoreError("count games", err)
	}
	return n, nil
}

// Update actualiza un juego.
func (r *GameRepo) Update(ctx context.Context, g *entity.Game) (bool, error) {
	query := `
		UPDATE games SET title = $2, description = $3, release_date = $4, price = $5, developer_id = $6,
		       status = $7, active = $8, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		g.ID, g.Title, g.Description, g.ReleaseDate, g.Price, g.DeveloperID, g.Status, g.Active)
	if err != nil {
		return true, gameWriteError("update game", err)
	}
	return tag.RowsAffected() > 0, nil
}

// SetActive cambia el estado del juego.
func (r *GameRepo) SetActive(ctx context.Context, id string, active bool) (bool, error) {
	tag, err := r.q.Exec(ctx, `UPDATE games SET active = $2, updated_at = now() WHERE id = $1`, id, active)
	if err != nil {
		return false, domain.StoreError("set game active", err)
	}
	return tag.RowsAffected() > 0, nil
}
