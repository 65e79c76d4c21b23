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

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo colección purchases.
type PurchaseRepo struct {
	coll *mongo.Collection
}

func purchaseFilter(f repository.PurchaseFilter) bson.D {
	filter := bson.D{{Key: "active", Value: true}}
	if f.UserID != "" {
		filter = append(filter, bson.E{Key: "user_id", Value: f.UserID})
	}
	return filter
}

func (r *PurchaseRepo) Create(ctx context.Context, p *entity.Purchase) error {
	oid, err := newOID(p.ID)
	if err != nil {
		return err
	}
	price, err := toDecimal128(p.Price)
	if err != nil {
		return domain.StoreError("insert purchase", err)
	}
	now := time.Now().UTC()
	doc := purchaseDoc{
		ID: oid, UserID: p.UserID, GameID: p.GameID, Price: price,
		PurchasedAt: now, Active: p.Active, UpdatedAt: now,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicate
		}
		return domain.StoreError("insert purchase", err)
	}
	p.ID, p.PurchasedAt, p.UpdatedAt = oid.Hex(), now, now
	return nil
}

func (r *PurchaseRepo) one(ctx context.Context, op string, filter any) (*entity.Purchase, error) {
	doc, err := findOne[purchaseDoc](ctx, r.coll, op, filter)
	if err != nil || doc == nil {
		return nil, err
	}
	p, err := doc.entity()
	if err != nil {
		return nil, domain.StoreError(op, err)
	}
	return p, nil
}

func (r *PurchaseRepo) GetByID(ctx context.Context, id string) (*entity.Purchase, error) {
	filter, ok := byID(id)
	if !ok {
		return nil, nil
	}
	return r.one(ctx, "get purchase by id", filter)
}

func (r *PurchaseRepo) FindActiveByUserAndGame(ctx context.Context, userID, gameID string) (*entity.Purchase, error) {
	return r.one(ctx, "get active purchase", bson.D{
		{Key: "user_id", Value: userID},
		{Key: "game_id", Value: gameID},
		{Key: "active", Value: true},
	})
}

func (r *PurchaseRepo) ListActive(ctx context.Context, f repository.PurchaseFilter, page repository.Page) ([]*entity.Purchase, error) {
	docs, err := findMany[purchaseDoc](ctx, r.coll, "list purchases", purchaseFilter(f), pageOptions(page, sortNewestBought))
	if err != nil {
		return nil, err
	}
	list := make([]*entity.Purchase, 0, len(docs))
	for i := range docs {
		p, err := docs[i].entity()
		if err != nil {
			return nil, domain.StoreError("list purchases", err)
		}
		list = append(list, p)
	}
	return list, nil
}

func (r *PurchaseRepo) CountActive(ctx context.Context, f repository.PurchaseFilter) (int64, error) {
	return count(ctx, r.coll, "count purchases", purchaseFilter(f))
}

func (r *PurchaseRepo) Update(ctx context.Context, p *entity.Purchase) (bool, error) {
	price, err := toDecimal128(p.Price)
	if err != nil {
		return false, domain.StoreError("update purchase", err)
	}
	return setFields(ctx, r.coll, "update purchase", p.ID, bson.D{
		{Key: "price", Value: price},
		{Key: "active", Value: p.Active},
	}, &p.UpdatedAt, asDuplicate)
}

func (r *PurchaseRepo) SetActive(ctx context.Context, id string, active bool) (bool, error) {
	return setFields(ctx, r.coll, "set purchase active", id, bson.D{
		{Key: "active", Value: active},
	}, nil, asDuplicate)
}
