package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/internal/infrastructure/memory"
)

func newContract(dev, game string) *entity.Contract {
	return &entity.Contract{
		DeveloperID:    dev,
		GameID:         game,
		TypeContractID: domain.NewID(),
		StartDate:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Active:         true,
	}
}

func TestContractRepo_RechazaSegundoActivoDelPar(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Contracts()
	dev, game := domain.NewID(), domain.NewID()

	first := newContract(dev, game)
	require.NoError(t, repo.Create(ctx, first))
	assert.True(t, domain.IsValidID(first.ID))

	err := repo.Create(ctx, newContract(dev, game))
	assert.ErrorIs(t, err, domain.ErrDuplicateActiveContract)

	// Un contrato inactivo del mismo par no cuenta.
	inactive := newContract(dev, game)
	inactive.Active = false
	require.NoError(t, repo.Create(ctx, inactive))

	// Reactivarlo choca con el activo.
	_, err = repo.SetActive(ctx, inactive.ID, true)
	assert.ErrorIs(t, err, domain.ErrDuplicateActiveContract)

	matched, err := repo.SetActive(ctx, first.ID, false)
	require.NoError(t, err)
	assert.True(t, matched)

	matched, err = repo.SetActive(ctx, inactive.ID, true)
	require.NoError(t, err)
	assert.True(t, matched)

	n, err := repo.CountActiveByPair(ctx, dev, game, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	n, err = repo.CountActiveByPair(ctx, dev, game, inactive.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestContractRepo_UpdateYSetActiveSinCoincidencia(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Contracts()

	matched, err := repo.Update(ctx, &entity.Contract{ID: domain.NewID()})
	require.NoError(t, err)
	assert.False(t, matched)

	matched, err = repo.SetActive(ctx, domain.NewID(), false)
	require.NoError(t, err)
	assert.False(t, matched)

	got, err := repo.GetByID(ctx, domain.NewID())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestContractRepo_DetalladoDescartaReferenciasColgantes(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()

	dev := &entity.Developer{Name: "Estudio", Active: true}
	require.NoError(t, s.Developers().Create(ctx, dev))
	game := &entity.Game{Title: "Juego", DeveloperID: dev.ID, Active: true}
	require.NoError(t, s.Games().Create(ctx, game))
	orphan := &entity.Game{Title: "Huérfano", DeveloperID: dev.ID, Active: true}
	require.NoError(t, s.Games().Create(ctx, orphan))
	ct := &entity.ContractType{Description: "Distribución", Active: true}
	require.NoError(t, s.ContractTypes().Create(ctx, ct))

	ok := newContract(dev.ID, game.ID)
	ok.TypeContractID = ct.ID
	require.NoError(t, s.Contracts().Create(ctx, ok))
	dangling := newContract(dev.ID, orphan.ID)
	dangling.TypeContractID = ct.ID
	require.NoError(t, s.Contracts().Create(ctx, dangling))
	s.Games().Delete(orphan.ID)

	details, err := s.Contracts().ListActiveDetailed(ctx, repository.Page{Skip: 0, Limit: 10})
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, ok.ID, details[0].ID)
	assert.Equal(t, "Estudio", details[0].Developer.Name)
	assert.Equal(t, "Juego", details[0].Game.Title)
	assert.Equal(t, "Distribución", details[0].ContractType.Description)

	total, err := s.Contracts().CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestGameRepo_TituloUnicoSinMayusculas(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Games()
	require.NoError(t, repo.Create(ctx, &entity.Game{Title: "Hollow Knight", Active: true}))

	err := repo.Create(ctx, &entity.Game{Title: "HOLLOW knight", Active: true})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	found, err := repo.FindByTitle(ctx, "hollow KNIGHT")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Hollow Knight", found.Title)
}

func TestDeveloperRepo_Paginacion(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Developers()
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, &entity.Developer{Name: "d", Active: i != 2}))
	}

	page, err := repo.ListActive(ctx, repository.Page{Skip: 1, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page, 2)

	page, err = repo.ListActive(ctx, repository.Page{Skip: 10, Limit: 2})
	require.NoError(t, err)
	assert.Empty(t, page)

	n, err := repo.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestUserRepo_EmailDuplicado(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Users()
	require.NoError(t, repo.Create(ctx, &entity.User{Email: "ana@example.com"}))
	err := repo.Create(ctx, &entity.User{Email: "ANA@example.com"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	u, err := repo.GetByEmail(ctx, "Ana@Example.com")
	require.NoError(t, err)
	require.NotNil(t, u)
}

func TestWishlistRepo_AddRemove(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Wishlist()
	user, game := domain.NewID(), domain.NewID()
	require.NoError(t, repo.Add(ctx, &entity.WishlistItem{UserID: user, GameID: game}))
	assert.ErrorIs(t, repo.Add(ctx, &entity.WishlistItem{UserID: user, GameID: game}), domain.ErrDuplicate)

	removed, err := repo.Remove(ctx, user, game)
	require.NoError(t, err)
	assert.True(t, removed)
	removed, err = repo.Remove(ctx, user, game)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestListados_OrdenPorClave(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	for _, name := range []string{"Zeta", "Alfa", "Media"} {
		require.NoError(t, s.Developers().Create(ctx, &entity.Developer{Name: name, Active: true}))
	}
	devs, err := s.Developers().ListActive(ctx, repository.Page{Limit: 10})
	require.NoError(t, err)
	names := make([]string, 0, len(devs))
	for _, d := range devs {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"Alfa", "Media", "Zeta"}, names)

	userID := domain.NewID()
	base := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	var want []string
	for i := 0; i < 3; i++ {
		p := &entity.Purchase{UserID: userID, GameID: domain.NewID(), PurchasedAt: base.AddDate(0, 0, i), Active: true}
		require.NoError(t, s.Purchases().Create(ctx, p))
		want = append([]string{p.ID}, want...)
	}
	purchases, err := s.Purchases().ListActive(ctx, repository.PurchaseFilter{UserID: userID}, repository.Page{Limit: 10})
	require.NoError(t, err)
	got := make([]string, 0, len(purchases))
	for _, p := range purchases {
		got = append(got, p.ID)
	}
	assert.Equal(t, want, got)
}
