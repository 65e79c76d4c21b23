package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.GameRepository = (*GameRepo)(nil)

// GameRepo colección games. El índice games_title rechaza títulos repetidos sin distinguir mayúsculas.
type GameRepo struct {
	coll *mongo.Collection
}

func (r *GameRepo) Create(ctx context.Context, g *entity.Game) error {
	oid, err := newOID(g.ID)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	g.CreatedAt, g.UpdatedAt = now, now
	doc, err := newGameDoc(oid, g)
	if err != nil {
		return domain.StoreError("insert game", err)
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicate
		}
		return domain.StoreError("insert game", err)
	}
	g.ID = oid.Hex()
	return nil
}

func (r *GameRepo) one(ctx context.Context, op string, filter any, opts ...*options.FindOneOptions) (*entity.Game, error) {
	doc, err := findOne[gameDoc](ctx, r.coll, op, filter, opts...)
	if err != nil || doc == nil {
		return nil, err
	}
	g, err := doc.entity()
	if err != nil {
		return nil, domain.StoreError(op, err)
	}
	return g, nil
}

func (r *GameRepo) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	filter, ok := byID(id)
	if !ok {
		return nil, nil
	}
	return r.one(ctx, "get game by id", filter)
}

// FindByTitle usa la misma collation que el índice único.
func (r *GameRepo) FindByTitle(ctx context.Context, title string) (*entity.Game, error) {
	return r.one(ctx, "find game by title", bson.D{{Key: "title", Value: title}},
		options.FindOne().SetCollation(caseInsensitive))
}

func (r *GameRepo) ListActive(ctx context.Context, page repository.Page) ([]*entity.Game, error) {
	docs, err := findMany[gameDoc](ctx, r.coll, "list games", activeFilter, pageOptions(page, sortByTitle))
	if err != nil {
		return nil, err
	}
	list := make([]*entity.Game, 0, len(docs))
	for i := range docs {
		g, err := docs[i].entity()
		if err != nil {
			return nil, domain.StoreError("list games", err)
		}
		list = append(list, g)
	}
	return list, nil
}

func (r *GameRepo) CountActive(ctx context.Context) (int64, error) {
	return count(ctx, r.coll, "count games", activeFilter)
}

func (r *GameRepo) Update(ctx context.Context, g *entity.Game) (bool, error) {
	price, err := toDecimal128(g.Price)
	if err != nil {
		return false, domain.StoreError("update game", err)
	}
	return setFields(ctx, r.coll, "update game", g.ID, bson.D{
		{Key: "title", Value: g.Title},
		{Key: "description", Value: g.Description},
		{Key: "release_date", Value: g.ReleaseDate},
		{Key: "price", Value: price},
		{Key: "developer_id", Value: g.DeveloperID},
		{Key: "status", Value: g.Status},
		{Key: "active", Value: g.Active},
	}, &g.UpdatedAt, asDuplicate)
}

func (r *GameRepo) SetActive(ctx context.Context, id string, active bool) (bool, error) {
	return setFields(ctx, r.coll, "set game active", id, bson.D{
		{Key: "active", Value: active},
	}, nil, nil)
}
