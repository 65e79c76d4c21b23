package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/infrastructure/memory"
	"github.com/jhoicas/tienda-api/internal/infrastructure/store"
	"github.com/jhoicas/tienda-api/pkg/config"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

func TestOpen_Memory(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: config.DriverMemory}}
	repos, err := store.Open(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	defer repos.Close()

	require.NoError(t, repos.Developers.Create(context.Background(), &entity.Developer{Name: "Estudio", Active: true}))
	n, err := repos.Developers.CountActive(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestOpen_DriverDesconocido(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: "sqlite"}}
	_, err := store.Open(context.Background(), cfg, logger.Nop())
	assert.Error(t, err)
}

func TestRunInTx_SinTransaccionPropagaError(t *testing.T) {
	repos := store.FromMemory(memory.NewStore())
	boom := errors.New("boom")
	called := false
	err := repos.RunInTx(context.Background(), func(r *store.Repositories) error {
		called = true
		assert.Same(t, repos, r)
		return boom
	})
	assert.True(t, called)
	assert.ErrorIs(t, err, boom)
}
