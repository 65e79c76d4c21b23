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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo colección users; el email es único sin distinguir mayúsculas.
type UserRepo struct {
	coll *mongo.Collection
}

func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	oid, err := newOID(u.ID)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	doc := userDoc{
		ID: oid, NameProfile: u.NameProfile, Email: u.Email, PasswordHash: u.PasswordHash,
		DateBirth: u.DateBirth, Active: u.Active, Admin: u.Admin, CreatedAt: now, UpdatedAt: now,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailAlreadyExists
		}
		return domain.StoreError("insert user", err)
	}
	u.ID, u.CreatedAt, u.UpdatedAt = oid.Hex(), now, now
	return nil
}

func (r *UserRepo) one(ctx context.Context, op string, filter any, opts ...*options.FindOneOptions) (*entity.User, error) {
	doc, err := findOne[userDoc](ctx, r.coll, op, filter, opts...)
	if err != nil || doc == nil {
		return nil, err
	}
	return doc.entity(), nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	filter, ok := byID(id)
	if !ok {
		return nil, nil
	}
	return r.one(ctx, "get user by id", filter)
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.one(ctx, "get user by email", bson.D{{Key: "email", Value: email}},
		options.FindOne().SetCollation(caseInsensitive))
}

func (r *UserRepo) List(ctx context.Context, page repository.Page) ([]*entity.User, error) {
	docs, err := findMany[userDoc](ctx, r.coll, "list users", bson.D{}, pageOptions(page, sortNewestCreated))
	if err != nil {
		return nil, err
	}
	list := make([]*entity.User, 0, len(docs))
	for i := range docs {
		list = append(list, docs[i].entity())
	}
	return list, nil
}

func (r *UserRepo) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.coll, "count users", bson.D{})
}

func (r *UserRepo) Update(ctx context.Context, u *entity.User) (bool, error) {
	return setFields(ctx, r.coll, "update user", u.ID, bson.D{
		{Key: "name_profile", Value: u.NameProfile},
		{Key: "date_birth", Value: u.DateBirth},
		{Key: "active", Value: u.Active},
		{Key: "admin", Value: u.Admin},
	}, &u.UpdatedAt, nil)
}

func (r *UserRepo) SetActive(ctx context.Context, id string, active bool) (bool, error) {
	return setFields(ctx, r.coll, "set user active", id, bson.D{
		{Key: "active", Value: active},
	}, nil, nil)
}
