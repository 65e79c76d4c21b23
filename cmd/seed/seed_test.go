package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tienda-api/internal/infrastructure/memory"
	"github.com/jhoicas/tienda-api/internal/infrastructure/store"
)

func testOptions() seedOptions {
	return seedOptions{
		adminEmail:    " Admin@Tienda.Local ",
		adminPassword: "Secreto@123",
		bcryptCost:    bcrypt.MinCost,
		catalog:       true,
	}
}

func TestRunSeed_CreaAdminYCatalogo(t *testing.T) {
	ctx := context.Background()
	repos := store.FromMemory(memory.NewStore())

	res, err := runSeed(ctx, repos, testOptions())
	require.NoError(t, err)
	assert.True(t, res.AdminCreated)
	assert.Equal(t, 4, res.CatalogCreated)

	admin, err := repos.Users.GetByEmail(ctx, "admin@tienda.local")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.True(t, admin.Admin)
	assert.True(t, admin.Active)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("Secreto@123")))

	n, err := repos.Contracts.CountActive(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestRunSeed_Idempotente(t *testing.T) {
	ctx := context.Background()
	repos := store.FromMemory(memory.NewStore())

	_, err := runSeed(ctx, repos, testOptions())
	require.NoError(t, err)
	res, err := runSeed(ctx, repos, testOptions())
	require.NoError(t, err)
	assert.False(t, res.AdminCreated)
	assert.Zero(t, res.CatalogCreated)

	n, err := repos.Games.CountActive(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestRunSeed_SinCatalogo(t *testing.T) {
	ctx := context.Background()
	repos := store.FromMemory(memory.NewStore())
	opts := testOptions()
	opts.catalog = false

	res, err := runSeed(ctx, repos, opts)
	require.NoError(t, err)
	assert.True(t, res.AdminCreated)
	assert.Zero(t, res.CatalogCreated)

	n, err := repos.Developers.CountActive(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRunSeed_OpcionesInvalidas(t *testing.T) {
	repos := store.FromMemory(memory.NewStore())
	tests := []struct {
		name string
		mod  func(*seedOptions)
	}{
		{"email vacío", func(o *seedOptions) { o.adminEmail = "" }},
		{"email sin arroba", func(o *seedOptions) { o.adminEmail = "admin" }},
		{"password corto", func(o *seedOptions) { o.adminPassword = "A1@b" }},
		{"password sin mayúscula", func(o *seedOptions) { o.adminPassword = "secreto@123" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := testOptions()
			tt.mod(&opts)
			_, err := runSeed(context.Background(), repos, opts)
			assert.Error(t, err)
		})
	}
}
