package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repos agrupa los adaptadores atados a un mismo Querier (pool o tx).
type Repos struct {
	Developers    *DeveloperRepo
	Games         *GameRepo
	ContractTypes *ContractTypeRepo
	Contracts     *ContractRepo
	Users         *UserRepo
	Purchases     *PurchaseRepo
	Wishlist      *WishlistRepo
}

// NewRepos construye todos los repositorios sobre q.
func NewRepos(q Querier) Repos {
	return Repos{
		Developers:    NewDeveloperRepository(q),
		Games:         NewGameRepository(q),
		ContractTypes: NewContractTypeRepository(q),
		Contracts:     NewContractRepository(q),
		Users:         NewUserRepository(q),
		Purchases:     NewPurchaseRepository(q),
		Wishlist:      NewWishlistRepository(q),
	}
}

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repos Repos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewRepos(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
