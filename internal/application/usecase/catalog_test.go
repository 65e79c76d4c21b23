package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/infrastructure/memory"
)

var (
	admin = domain.Identity{UserID: domain.NewID(), Admin: true, Active: true}
	buyer = domain.Identity{UserID: domain.NewID(), Active: true}
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool     { return &b }

func newDeveloper(t *testing.T, uc *usecase.DeveloperUseCase, name string) *dto.DeveloperResponse {
	t.Helper()
	d, err := uc.Create(context.Background(), admin, dto.CreateDeveloperRequest{Name: name})
	require.NoError(t, err)
	return d
}

func gameRequest(devID, title string) dto.CreateGameRequest {
	return dto.CreateGameRequest{
		Title:       title,
		Description: "Descripción suficientemente larga",
		ReleaseDate: "2023-10-01",
		Price:       decimal.RequireFromString("59.99"),
		DeveloperID: devID,
		Status:      "completo",
	}
}

func TestDeveloperUseCase_CRUD(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewDeveloperUseCase(memory.NewStore().Developers(), 100)

	_, err := uc.Create(ctx, buyer, dto.CreateDeveloperRequest{Name: "Team Cherry"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	d := newDeveloper(t, uc, "  Team Cherry ")
	assert.Equal(t, "Team Cherry", d.Name)
	assert.True(t, d.Active)

	upd, err := uc.Update(ctx, admin, d.ID, dto.UpdateDeveloperRequest{Country: strPtr("Australia")})
	require.NoError(t, err)
	require.NotNil(t, upd.Country)
	assert.Equal(t, "Australia", *upd.Country)

	require.NoError(t, uc.Disable(ctx, admin, d.ID))
	require.NoError(t, uc.Disable(ctx, admin, d.ID))

	list, err := uc.List(ctx, buyer, dto.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, list.Items)
	assert.Zero(t, list.Total)

	got, err := uc.GetByID(ctx, buyer, d.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)

	assert.ErrorIs(t, uc.Disable(ctx, admin, domain.NewID()), domain.ErrNotFound)
}

func TestGameUseCase_TituloDuplicadoYDesarrollador(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	devs := usecase.NewDeveloperUseCase(s.Developers(), 100)
	games := usecase.NewGameUseCase(s.Games(), s.Developers(), 100)
	dev := newDeveloper(t, devs, "Team Cherry")

	g, err := games.Create(ctx, admin, gameRequest(dev.ID, "Hollow Knight"))
	require.NoError(t, err)
	assert.Equal(t, "59.99", g.Price.String())
	assert.Equal(t, "2023-10-01", g.ReleaseDate)

	_, err = games.Create(ctx, admin, gameRequest(dev.ID, "hollow KNIGHT"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Renombrar al mismo título no choca consigo mismo.
	_, err = games.Update(ctx, admin, g.ID, dto.UpdateGameRequest{Title: strPtr("HOLLOW KNIGHT")})
	require.NoError(t, err)

	_, err = games.Create(ctx, admin, gameRequest(domain.NewID(), "Silksong"))
	assert.ErrorIs(t, err, domain.ErrInvalidReference)

	neg := gameRequest(dev.ID, "Gratis")
	neg.Price = decimal.NewFromInt(-1)
	_, err = games.Create(ctx, admin, neg)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGameUseCase_CatalogoPublicoSoloActivos(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	devs := usecase.NewDeveloperUseCase(s.Developers(), 100)
	games := usecase.NewGameUseCase(s.Games(), s.Developers(), 100)
	dev := newDeveloper(t, devs, "Estudio")

	a, err := games.Create(ctx, admin, gameRequest(dev.ID, "A"))
	require.NoError(t, err)
	_, err = games.Create(ctx, admin, gameRequest(dev.ID, "B"))
	require.NoError(t, err)
	require.NoError(t, games.Disable(ctx, admin, a.ID))

	list, err := games.List(ctx, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "B", list.Items[0].Title)
	assert.Equal(t, int64(1), list.Total)

	_, err = games.GetByID(ctx, a.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = games.GetByID(ctx, "abc")
	assert.ErrorIs(t, err, domain.ErrMalformedID)
}

func TestContractTypeUseCase_DescripcionUnica(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewContractTypeUseCase(memory.NewStore().ContractTypes(), 100)

	_, err := uc.List(ctx, buyer, dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	ct, err := uc.Create(ctx, admin, dto.CreateContractTypeRequest{Description: "Distribución"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, admin, dto.CreateContractTypeRequest{Description: "DISTRIBUCIÓN"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	other, err := uc.Create(ctx, admin, dto.CreateContractTypeRequest{Description: "Exclusividad"})
	require.NoError(t, err)
	_, err = uc.Update(ctx, admin, other.ID, dto.UpdateContractTypeRequest{Description: strPtr("distribución")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	upd, err := uc.Update(ctx, admin, ct.ID, dto.UpdateContractTypeRequest{Active: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, upd.Active)

	list, err := uc.List(ctx, admin, dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), list.Total)
}
