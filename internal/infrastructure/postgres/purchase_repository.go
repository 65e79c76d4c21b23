package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación del puerto PurchaseRepository sobre PostgreSQL.
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador.
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

const purchaseColumns = `id, user_id, game_id, price, purchased_at, active, updated_at`

func scanPurchase(s scanner, p *entity.Purchase) error {
	return s.Scan(&p.ID, &p.UserID, &p.GameID, &p.Price, &p.PurchasedAt, &p.Active, &p.UpdatedAt)
}

func purchaseWriteError(op string, err error) error {
	switch {
	case isUniqueViolation(err) && constraintName(err) == constraintActivePurchase:
		return domain.ErrDuplicate
	case isForeignKeyViolation(err):
		return domain.ErrInvalidReference
	default:
		return domain.StoreError(op, err)
	}
}

// Create persiste una nueva compra.
func (r *PurchaseRepo) Create(ctx context.Context, p *entity.Purchase) error {
	if p.ID == "" {
		p.ID = domain.NewID()
	}
	query := `
		INSERT INTO purchases (` + purchaseColumns + `)
		VALUES ($1, $2, $3, $4, now(), $5, now())
		RETURNING purchased_at, updated_at`
	err := r.q.QueryRow(ctx, query, p.ID, p.UserID, p.GameID, p.Price, p.Active).
		Scan(&p.PurchasedAt, &p.UpdatedAt)
	if err != nil {
		return purchaseWriteError("insert purchase", err)
	}
	return nil
}

func (r *PurchaseRepo) getOne(ctx context.Context, op, where string, args ...any) (*entity.Purchase, error) {
	var p entity.Purchase
	err := scanPurchase(r.q.QueryRow(ctx, `SELECT `+purchaseColumns+` FROM purchases WHERE `+where+` LIMIT 1`, args...), &p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.StoreError(op, err)
	}
	return &p, nil
}

// GetByID obtiene una compra por ID.
func (r *PurchaseRepo) GetByID(ctx context.Context, id string) (*entity.Purchase, error) {
	return r.getOne(ctx, "get purchase by id", `id = $1`, id)
}

// FindActiveByUserAndGame compra activa del usuario para el juego.
func (r *PurchaseRepo) FindActiveByUserAndGame(ctx context.Context, userID, gameID string) (*entity.Purchase, error) {
	return r.getOne(ctx, "get active purchase", `active AND user_id = $1 AND game_id = $2`, userID, gameID)
}

// ListActive compras activas, opcionalmente de un usuario, más recientes primero.
func (r *PurchaseRepo) ListActive(ctx context.Context, f repository.PurchaseFilter, page repository.Page) ([]*entity.Purchase, error) {
	query := `
		SELECT ` + purchaseColumns + ` FROM purchases
		WHERE active AND ($1 = '' OR user_id = $1)
		ORDER BY purchased_at DESC, id DESC OFFSET $2 LIMIT $3`
	rows, err := r.q.Query(ctx, query, f.UserID, page.Skip, page.Limit)
	if err != nil {
		return nil, domain.StoreError("list purchases", err)
	}
	defer rows.Close()
	list := make([]*entity.Purchase, 0, page.Limit)
	for rows.Next() {
		var p entity.Purchase
		if err := scanPurchase(rows, &p); err != nil {
			return nil, domain.StoreError("scan purchase", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StoreError("list purchases", err)
	}
	return list, nil
}

// CountActive total de compras activas con el mismo filtro que ListActive.
func (r *PurchaseRepo) CountActive(ctx context.Context, f repository.PurchaseFilter) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx, `SELECT count(*) FROM purchases WHERE active AND ($1 = '' OR user_id = $1)`, f.UserID).Scan(&n)
	if err != nil {
		return 0, domain.StoreError("count purchases", err)
	}
	return n, nil
}

// Update corrige precio y estado.
func (r *PurchaseRepo) Update(ctx context.Context, p *entity.Purchase) (bool, error) {
	tag, err := r.q.Exec(ctx,
		`UPDATE purchases SET price = $2, active = $3, updated_at = now() WHERE id = $1`,
		p.ID, p.Price, p.Active)
	if err != nil {
		return false, purchaseWriteError("update purchase", err)
	}
	return tag.RowsAffected() > 0, nil
}

// SetActive cambia el estado de la compra.
func (r *PurchaseRepo) SetActive(ctx context.Context, id string, active bool) (bool, error) {
	tag, err := r.q.Exec(ctx, `UPDATE purchases SET active = $2, updated_at = now() WHERE id = $1`, id, active)
	if err != nil {
		return false, purchaseWriteError("set purchase active", err)
	}
	return tag.RowsAffected() > 0, nil
}
