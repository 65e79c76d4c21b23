// Package mongo adaptador de almacenamiento sobre MongoDB. Los _id se guardan como ObjectID y
// las referencias entre colecciones como su representación hexadecimal.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/jhoicas/tienda-api/pkg/config"
)

// Nombres de colecciones.
const (
	collDevelopers    = "developers"
	collGames         = "games"
	collContractTypes = "contract_types"
	collContracts     = "contracts"
	collUsers         = "users"
	collPurchases     = "purchases"
	collWishlist      = "wishlist"
)

// Connect abre el cliente y verifica la conexión con un ping al primario.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(10 * time.Second).
		SetMaxPoolSize(25)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("conectar mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, client.Database(cfg.Database), nil
}

// Repos agrupa los adaptadores de una base de datos.
type Repos struct {
	Developers    *DeveloperRepo
	Games         *GameRepo
	ContractTypes *ContractTypeRepo
	Contracts     *ContractRepo
	Users         *UserRepo
	Purchases     *PurchaseRepo
	Wishlist      *WishlistRepo
}

// NewRepos construye todos los repositorios sobre db.
func NewRepos(db *mongo.Database) Repos {
	return Repos{
		Developers:    &DeveloperRepo{coll: db.Collection(collDevelopers)},
		Games:         &GameRepo{coll: db.Collection(collGames)},
		ContractTypes: &ContractTypeRepo{coll: db.Collection(collContractTypes)},
		Contracts:     &ContractRepo{coll: db.Collection(collContracts)},
		Users:         &UserRepo{coll: db.Collection(collUsers)},
		Purchases:     &PurchaseRepo{coll: db.Collection(collPurchases)},
		Wishlist:      &WishlistRepo{coll: db.Collection(collWishlist)},
	}
}
