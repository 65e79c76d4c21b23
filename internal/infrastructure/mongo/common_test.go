package mongo

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

type fakeUpdater struct {
	result *mongo.UpdateResult
	err    error
	update interface{}
	calls  int
}

func (f *fakeUpdater) UpdateOne(_ context.Context, _ interface{}, update interface{}, _ ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	f.calls++
	f.update = update
	return f.result, f.err
}

func TestSetFields_ActualizaMarcaDeTiempoAlCoincidir(t *testing.T) {
	coll := &fakeUpdater{result: &mongo.UpdateResult{MatchedCount: 1}}
	var stamp time.Time
	before := time.Now().UTC()

	matched, err := setFields(context.Background(), coll, "update contract", domain.NewID(),
		bson.D{{Key: "active", Value: true}}, &stamp, nil)
	require.NoError(t, err)
	assert.True(t, matched)
	assert.False(t, stamp.Before(before))

	set := coll.update.(bson.D)[0].Value.(bson.D)
	require.Len(t, set, 2)
	assert.Equal(t, "updated_at", set[1].Key)
	assert.Equal(t, stamp, set[1].Value)
}

func TestSetFields_SinCoincidenciaNoTocaMarca(t *testing.T) {
	coll := &fakeUpdater{result: &mongo.UpdateResult{MatchedCount: 0}}
	var stamp time.Time

	matched, err := setFields(context.Background(), coll, "update contract", domain.NewID(), bson.D{}, &stamp, nil)
	require.NoError(t, err)
	assert.False(t, matched)
	assert.True(t, stamp.IsZero())
}

func TestSetFields_IDNoCanonicoNoLlegaAlAlmacenamiento(t *testing.T) {
	coll := &fakeUpdater{result: &mongo.UpdateResult{MatchedCount: 1}}

	matched, err := setFields(context.Background(), coll, "update contract", strings.ToUpper(domain.NewID()), bson.D{}, nil, nil)
	require.NoError(t, err)
	assert.False(t, matched)
	assert.Zero(t, coll.calls)
}

func TestSetFields_ErroresDeEscritura(t *testing.T) {
	dup := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key"}}}

	_, err := setFields(context.Background(), &fakeUpdater{err: dup}, "update contract", domain.NewID(),
		bson.D{}, nil, asDuplicateContract)
	assert.ErrorIs(t, err, domain.ErrDuplicateActiveContract)

	_, err = setFields(context.Background(), &fakeUpdater{err: errors.New("conexión cerrada")}, "update contract",
		domain.NewID(), bson.D{}, nil, asDuplicateContract)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestByID_RechazaMayusculas(t *testing.T) {
	id := domain.NewID()
	_, ok := byID(id)
	assert.True(t, ok)
	_, ok = byID(strings.ToUpper(id))
	assert.False(t, ok)
}

func TestPageOptions_ContratosSinOrden(t *testing.T) {
	opts := pageOptions(repository.Page{Skip: 3, Limit: 7}, nil)
	assert.Nil(t, opts.Sort)
	assert.Equal(t, int64(3), *opts.Skip)
	assert.Equal(t, int64(7), *opts.Limit)

	opts = pageOptions(repository.Page{Limit: 7}, sortByTitle)
	assert.Equal(t, bson.D{{Key: "title", Value: 1}, {Key: "_id", Value: 1}}, opts.Sort)
}
