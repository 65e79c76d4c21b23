package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// newOID usa el ID ya asignado si es válido; si no genera uno.
func newOID(id string) (primitive.ObjectID, error) {
	if id == "" {
		return primitive.NewObjectID(), nil
	}
	if err := domain.CheckID("id", id); err != nil {
		return primitive.NilObjectID, err
	}
	return primitive.ObjectIDFromHex(id)
}

// updater la parte de *mongo.Collection que usa setFields.
type updater interface {
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
}

func asDuplicate(error) error { return domain.ErrDuplicate }

// byID filtro por _id. Un ID fuera de la forma canónica no coincide con nada.
func byID(id string) (bson.D, bool) {
	if !domain.IsValidID(id) {
		return nil, false
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, false
	}
	return bson.D{{Key: "_id", Value: oid}}, true
}

var activeFilter = bson.D{{Key: "active", Value: true}}

// Órdenes de los listados; iguales en los tres adaptadores. Los contratos no llevan orden.
var (
	sortByName        = bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}}
	sortByTitle       = bson.D{{Key: "title", Value: 1}, {Key: "_id", Value: 1}}
	sortByDescription = bson.D{{Key: "description", Value: 1}, {Key: "_id", Value: 1}}
	sortNewestCreated = bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}
	sortNewestBought  = bson.D{{Key: "purchased_at", Value: -1}, {Key: "_id", Value: -1}}
)

// pageOptions ventana skip/limit; sort nil = orden natural de la colección.
func pageOptions(page repository.Page, sort bson.D) *options.FindOptions {
	opts := options.Find().
		SetSkip(int64(page.Skip)).
		SetLimit(int64(page.Limit))
	if sort != nil {
		opts.SetSort(sort)
	}
	return opts
}

// findOne decodifica un documento; (nil, nil) si no existe.
func findOne[D any](ctx context.Context, coll *mongo.Collection, op string, filter any, opts ...*options.FindOneOptions) (*D, error) {
	var doc D
	if err := coll.FindOne(ctx, filter, opts...).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, domain.StoreError(op, err)
	}
	return &doc, nil
}

// findMany decodifica todos los documentos del cursor.
func findMany[D any](ctx context.Context, coll *mongo.Collection, op string, filter any, opts ...*options.FindOptions) ([]D, error) {
	cur, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, domain.StoreError(op, err)
	}
	docs := make([]D, 0)
	if err := cur.All(ctx, &docs); err != nil {
		return nil, domain.StoreError(op, err)
	}
	return docs, nil
}

func count(ctx context.Context, coll *mongo.Collection, op string, filter any) (int64, error) {
	n, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, domain.StoreError(op, err)
	}
	return n, nil
}

// setFields aplica $set a un documento por ID; devuelve si hubo coincidencia.
// onWrite traduce errores de escritura propios de la colección.
func setFields(ctx context.Context, coll updater, op, id string, set bson.D, stamp *time.Time, onWrite func(error) error) (bool, error) {
	filter, ok := byID(id)
	if !ok {
		return false, nil
	}
	now := time.Now().UTC()
	set = append(set, bson.E{Key: "updated_at", Value: now})
	res, err := coll.UpdateOne(ctx, filter, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		if onWrite != nil && mongo.IsDuplicateKeyError(err) {
			return false, onWrite(err)
		}
		return false, domain.StoreError(op, err)
	}
	if res.MatchedCount == 0 {
		return false, nil
	}
	if stamp != nil {
		*stamp = now
	}
	return true, nil
}

// countPipeline ejecuta un pipeline terminado en $count y lee el campo indicado; sin filas = 0.
func countPipeline(ctx context.Context, coll *mongo.Collection, op string, p mongo.Pipeline, field string) (int64, error) {
	cur, err := coll.Aggregate(ctx, p)
	if err != nil {
		return 0, domain.StoreError(op, err)
	}
	var rows []bson.M
	if err := cur.All(ctx, &rows); err != nil {
		return 0, domain.StoreError(op, err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	switch n := rows[0][field].(type) {
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case float64:
		return int64(n), nil
	}
	return 0, nil
}
