// Package store selecciona y abre el adaptador de almacenamiento según STORE_DRIVER.
package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/internal/infrastructure/memory"
	"github.com/jhoicas/tienda-api/internal/infrastructure/mongo"
	"github.com/jhoicas/tienda-api/internal/infrastructure/postgres"
	"github.com/jhoicas/tienda-api/pkg/config"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

// Repositories puertos de persistencia de un mismo almacenamiento.
type Repositories struct {
	Developers    repository.DeveloperRepository
	Games         repository.GameRepository
	ContractTypes repository.ContractTypeRepository
	Contracts     repository.ContractRepository
	Users         repository.UserRepository
	Purchases     repository.PurchaseRepository
	Wishlist      repository.WishlistRepository

	runInTx func(ctx context.Context, fn func(r *Repositories) error) error
	close   func()
}

// RunInTx ejecuta fn en una transacción cuando el driver la soporta (postgres);
// en los demás ejecuta fn directamente con los mismos repositorios.
func (r *Repositories) RunInTx(ctx context.Context, fn func(r *Repositories) error) error {
	if r.runInTx == nil {
		return fn(r)
	}
	return r.runInTx(ctx, fn)
}

// Close libera conexiones.
func (r *Repositories) Close() {
	if r.close != nil {
		r.close()
	}
}

// Open abre el almacenamiento configurado y prepara su esquema (migraciones o índices).
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Repositories, error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		return openPostgres(ctx, cfg, log)
	case config.DriverMongo:
		return openMongo(ctx, cfg, log)
	case config.DriverMemory:
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		return FromMemory(memory.NewStore()), nil
	default:
		return nil, fmt.Errorf("driver de almacenamiento desconocido: %q", cfg.Store.Driver)
	}
}

// FromMemory adapta un memory.Store.
func FromMemory(s *memory.Store) *Repositories {
	return &Repositories{
		Developers:    s.Developers(),
		Games:         s.Games(),
		ContractTypes: s.ContractTypes(),
		Contracts:     s.Contracts(),
		Users:         s.Users(),
		Purchases:     s.Purchases(),
		Wishlist:      s.Wishlist(),
	}
}

func fromPostgres(r postgres.Repos) *Repositories {
	return &Repositories{
		Developers:    r.Developers,
		Games:         r.Games,
		ContractTypes: r.ContractTypes,
		Contracts:     r.Contracts,
		Users:         r.Users,
		Purchases:     r.Purchases,
		Wishlist:      r.Wishlist,
	}
}

func openPostgres(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Repositories, error) {
	pool, err := postgres.Open(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	log.Info().Int("max_conns", cfg.DB.MaxConns).Msg("PostgreSQL listo")

	repos := fromPostgres(postgres.NewRepos(pool))
	tx := postgres.NewTxRunner(pool)
	repos.runInTx = func(ctx context.Context, fn func(r *Repositories) error) error {
		return tx.Run(ctx, func(txRepos postgres.Repos) error {
			return fn(fromPostgres(txRepos))
		})
	}
	repos.close = pool.Close
	return repos, nil
}

func openMongo(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Repositories, error) {
	client, db, err := mongo.Connect(ctx, cfg.Mongo)
	if err != nil {
		return nil, err
	}
	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("MongoDB listo")

	r := mongo.NewRepos(db)
	return &Repositories{
		Developers:    r.Developers,
		Games:         r.Games,
		ContractTypes: r.ContractTypes,
		Contracts:     r.Contracts,
		Users:         r.Users,
		Purchases:     r.Purchases,
		Wishlist:      r.Wishlist,
		close:         func() { _ = client.Disconnect(context.Background()) },
	}, nil
}
