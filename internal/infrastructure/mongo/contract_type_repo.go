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

var _ repository.ContractTypeRepository = (*ContractTypeRepo)(nil)

// ContractTypeRepo colección contract_types.
type ContractTypeRepo struct {
	coll *mongo.Collection
}

func (r *ContractTypeRepo) Create(ctx context.Context, t *entity.ContractType) error {
	oid, err := newOID(t.ID)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	doc := contractTypeDoc{ID: oid, Description: t.Description, Active: t.Active, CreatedAt: now, UpdatedAt: now}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicate
		}
		return domain.StoreError("insert contract type", err)
	}
	t.ID, t.CreatedAt, t.UpdatedAt = oid.Hex(), now, now
	return nil
}

func (r *ContractTypeRepo) one(ctx context.Context, op string, filter any, opts ...*options.FindOneOptions) (*entity.ContractType, error) {
	doc, err := findOne[contractTypeDoc](ctx, r.coll, op, filter, opts...)
	if err != nil || doc == nil {
		return nil, err
	}
	return doc.entity(), nil
}

func (r *ContractTypeRepo) GetByID(ctx context.Context, id string) (*entity.ContractType, error) {
	filter, ok := byID(id)
	if !ok {
		return nil, nil
	}
	return r.one(ctx, "get contract type by id", filter)
}

func (r *ContractTypeRepo) FindByDescription(ctx context.Context, description string) (*entity.ContractType, error) {
	return r.one(ctx, "find contract type by description", bson.D{{Key: "description", Value: description}},
		options.FindOne().SetCollation(caseInsensitive))
}

func (r *ContractTypeRepo) ListActive(ctx context.Context, page repository.Page) ([]*entity.ContractType, error) {
	docs, err := findMany[contractTypeDoc](ctx, r.coll, "list contract types", activeFilter, pageOptions(page, sortByDescription))
	if err != nil {
		return nil, err
	}
	list := make([]*entity.ContractType, 0, len(docs))
	for i := range docs {
		list = append(list, docs[i].entity())
	}
	return list, nil
}

func (r *ContractTypeRepo) CountActive(ctx context.Context) (int64, error) {
	return count(ctx, r.coll, "count contract types", activeFilter)
}

func (r *ContractTypeRepo) Update(ctx context.Context, t *entity.ContractType) (bool, error) {
	return setFields(ctx, r.coll, "update contract type", t.ID, bson.D{
		{Key: "description", Value: t.Description},
		{Key: "active", Value: t.Active},
	}, &t.UpdatedAt, asDuplicate)
}

func (r *ContractTypeRepo) SetActive(ctx context.Context, id string, active bool) (bool, error) {
	return setFields(ctx, r.coll, "set contract type active", id, bson.D{
		{Key: "active", Value: active},
	}, nil, nil)
}
