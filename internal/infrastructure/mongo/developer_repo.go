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

var _ repository.DeveloperRepository = (*DeveloperRepo)(nil)

// DeveloperRepo colección developers.
type DeveloperRepo struct {
	coll *mongo.Collection
}

func (r *DeveloperRepo) Create(ctx context.Context, d *entity.Developer) error {
	oid, err := newOID(d.ID)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	doc := developerDoc{
		ID: oid, Name: d.Name, Country: d.Country, FoundedYear: d.FoundedYear, Active: d.Active,
		CreatedAt: now, UpdatedAt: now,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return domain.StoreError("insert developer", err)
	}
	d.ID, d.CreatedAt, d.UpdatedAt = oid.Hex(), now, now
	return nil
}

func (r *DeveloperRepo) GetByID(ctx context.Context, id string) (*entity.Developer, error) {
	filter, ok := byID(id)
	if !ok {
		return nil, nil
	}
	doc, err := findOne[developerDoc](ctx, r.coll, "get developer by id", filter)
	if err != nil || doc == nil {
		return nil, err
	}
	return doc.entity(), nil
}

func (r *DeveloperRepo) ListActive(ctx context.Context, page repository.Page) ([]*entity.Developer, error) {
	docs, err := findMany[developerDoc](ctx, r.coll, "list developers", activeFilter, pageOptions(page, sortByName))
	if err != nil {
		return nil, err
	}
	list := make([]*entity.Developer, 0, len(docs))
	for i := range docs {
		list = append(list, docs[i].entity())
	}
	return list, nil
}

func (r *DeveloperRepo) CountActive(ctx context.Context) (int64, error) {
	return count(ctx, r.coll, "count developers", activeFilter)
}

func (r *DeveloperRepo) Update(ctx context.Context, d *entity.Developer) (bool, error) {
	return setFields(ctx, r.coll, "update developer", d.ID, bson.D{
		{Key: "name", Value: d.Name},
		{Key: "country", Value: d.Country},
		{Key: "founded_year", Value: d.FoundedYear},
		{Key: "active", Value: d.Active},
	}, &d.UpdatedAt, nil)
}

func (r *DeveloperRepo) SetActive(ctx context.Context, id string, active bool) (bool, error) {
	return setFields(ctx, r.coll, "set developer active", id, bson.D{
		{Key: "active", Value: active},
	}, nil, nil)
}
