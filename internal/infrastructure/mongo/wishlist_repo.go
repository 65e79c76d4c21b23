package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.WishlistRepository = (*WishlistRepo)(nil)

// WishlistRepo colección wishlist con índice único (user_id, game_id).
type WishlistRepo struct {
	coll *mongo.Collection
}

func (r *WishlistRepo) Add(ctx context.Context, it *entity.WishlistItem) error {
	oid, err := newOID(it.ID)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	doc := wishlistDoc{ID: oid, UserID: it.UserID, GameID: it.GameID, CreatedAt: now}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicate
		}
		return domain.StoreError("insert wishlist item", err)
	}
	it.ID, it.CreatedAt = oid.Hex(), now
	return nil
}

func (r *WishlistRepo) ListByUser(ctx context.Context, userID string, page repository.Page) ([]*entity.WishlistItem, error) {
	docs, err := findMany[wishlistDoc](ctx, r.coll, "list wishlist",
		bson.D{{Key: "user_id", Value: userID}}, pageOptions(page, sortNewestCreated))
	if err != nil {
		return nil, err
	}
	list := make([]*entity.WishlistItem, 0, len(docs))
	for i := range docs {
		list = append(list, docs[i].entity())
	}
	return list, nil
}

func (r *WishlistRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	return count(ctx, r.coll, "count wishlist", bson.D{{Key: "user_id", Value: userID}})
}

func (r *WishlistRepo) Remove(ctx context.Context, userID, gameID string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "user_id", Value: userID}, {Key: "game_id", Value: gameID}})
	if err != nil {
		return false, domain.StoreError("delete wishlist item", err)
	}
	return res.DeletedCount > 0, nil
}
