package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Nombres de índices. El de contratos activos es el que traduce a ErrDuplicateActiveContract.
const (
	indexActivePair     = "contracts_active_pair"
	indexActivePurchase = "purchases_active_user_game"
)

// caseInsensitive collation que ignora mayúsculas (strength 2).
var caseInsensitive = &options.Collation{Locale: "en", Strength: 2}

// indexSpecs índices requeridos por colección.
func indexSpecs() map[string][]mongo.IndexModel {
	activeOnly := bson.D{{Key: "active", Value: true}}
	return map[string][]mongo.IndexModel{
		collContracts: {
			{
				Keys: bson.D{{Key: "developer_id", Value: 1}, {Key: "game_id", Value: 1}},
				Options: options.Index().SetName(indexActivePair).SetUnique(true).
					SetPartialFilterExpression(activeOnly),
			},
			{Keys: bson.D{{Key: "active", Value: 1}}},
		},
		collGames: {
			{
				Keys:    bson.D{{Key: "title", Value: 1}},
				Options: options.Index().SetName("games_title").SetUnique(true).SetCollation(caseInsensitive),
			},
		},
		collContractTypes: {
			{
				Keys:    bson.D{{Key: "description", Value: 1}},
				Options: options.Index().SetName("contract_types_description").SetUnique(true).SetCollation(caseInsensitive),
			},
		},
		collUsers: {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetName("users_email").SetUnique(true).SetCollation(caseInsensitive),
			},
		},
		collPurchases: {
			{
				Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "game_id", Value: 1}},
				Options: options.Index().SetName(indexActivePurchase).SetUnique(true).
					SetPartialFilterExpression(activeOnly),
			},
		},
		collWishlist: {
			{
				Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "game_id", Value: 1}},
				Options: options.Index().SetName("wishlist_user_game").SetUnique(true),
			},
		},
	}
}

// EnsureIndexes crea (idempotente) los índices de todas las colecciones.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for coll, models := range indexSpecs() {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("crear índices de %s: %w", coll, err)
		}
	}
	return nil
}
