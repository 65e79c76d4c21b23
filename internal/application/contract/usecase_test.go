package contract_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/contract"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/internal/infrastructure/memory"
)

var (
	admin = domain.Identity{UserID: domain.NewID(), Admin: true, Active: true}
	user  = domain.Identity{UserID: domain.NewID(), Active: true}
)

type fixture struct {
	store *memory.Store
	uc    *contract.UseCase
	dev   string
	game  string
	ct    string
}

func setup(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	s := memory.NewStore()
	dev := &entity.Developer{Name: "dev1", Active: true}
	require.NoError(t, s.Developers().Create(ctx, dev))
	game := &entity.Game{Title: "game1", DeveloperID: dev.ID, Active: true}
	require.NoError(t, s.Games().Create(ctx, game))
	ct := &entity.ContractType{Description: "type1", Active: true}
	require.NoError(t, s.ContractTypes().Create(ctx, ct))
	uc := contract.NewUseCase(s.Contracts(), s.Developers(), s.Games(), s.ContractTypes())
	return fixture{store: s, uc: uc, dev: dev.ID, game: game.ID, ct: ct.ID}
}

func (f fixture) request(start string, end *string) dto.CreateContractRequest {
	return dto.CreateContractRequest{
		DeveloperID:    f.dev,
		GameID:         f.game,
		TypeContractID: f.ct,
		StartDate:      start,
		EndDate:        end,
	}
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool     { return &b }

func TestCreate_EscenarioDevGameType(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	first, err := f.uc.Create(ctx, admin, f.request("2024-01-01", nil))
	require.NoError(t, err)
	assert.True(t, first.Active)
	assert.True(t, domain.IsValidID(first.ID))
	assert.Nil(t, first.EndDate)
	assert.Equal(t, "2024-01-01", first.StartDate)

	_, err = f.uc.Create(ctx, admin, f.request("2024-06-01", nil))
	assert.ErrorIs(t, err, domain.ErrDuplicateActiveContract)

	require.NoError(t, f.uc.Disable(ctx, admin, first.ID))

	third, err := f.uc.Create(ctx, admin, f.request("2024-06-01", nil))
	require.NoError(t, err)
	assert.True(t, third.Active)
	assert.NotEqual(t, first.ID, third.ID)
}

func TestCreate_DuplicadoSinImportarFechasNiTipo(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	_, err := f.uc.Create(ctx, admin, f.request("2024-01-01", strPtr("2024-12-31")))
	require.NoError(t, err)

	other := &entity.ContractType{Description: "exclusividad", Active: true}
	require.NoError(t, f.store.ContractTypes().Create(ctx, other))

	cases := []dto.CreateContractRequest{
		f.request("2030-01-01", nil),
		f.request("2020-01-01", strPtr("2020-02-01")),
		{DeveloperID: f.dev, GameID: f.game, TypeContractID: other.ID, StartDate: "2025-05-05"},
	}
	for _, in := range cases {
		_, err := f.uc.Create(ctx, admin, in)
		assert.ErrorIs(t, err, domain.ErrDuplicateActiveContract)
	}
	n, err := f.store.Contracts().CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestCreate_RangoDeFechasInvalidoNoInserta(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	_, err := f.uc.Create(ctx, admin, f.request("2024-06-01", strPtr("2024-01-01")))
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

	n, err := f.store.Contracts().CountActive(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	list, err := f.store.Contracts().ListActive(ctx, repository.Page{Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreate_MismaFechaFinEInicioEsValida(t *testing.T) {
	f := setup(t)
	out, err := f.uc.Create(context.Background(), admin, f.request("2024-01-01", strPtr("2024-01-01")))
	require.NoError(t, err)
	require.NotNil(t, out.EndDate)
	assert.Equal(t, "2024-01-01", *out.EndDate)
}

func TestCreate_IdentificadorMalFormado(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	in := f.request("2024-01-01", nil)
	in.GameID = "game1"
	_, err := f.uc.Create(ctx, admin, in)
	assert.ErrorIs(t, err, domain.ErrMalformedID)
	var malformed *domain.MalformedIDError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, domain.FieldGameID, malformed.Field)
}

func TestCreate_ReferenciasInvalidas(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	otherDev := &entity.Developer{Name: "otro", Active: true}
	require.NoError(t, f.store.Developers().Create(ctx, otherDev))
	inactiveType := &entity.ContractType{Description: "inactivo", Active: false}
	require.NoError(t, f.store.ContractTypes().Create(ctx, inactiveType))

	tests := []struct {
		name  string
		in    dto.CreateContractRequest
		field string
	}{
		{"desarrollador inexistente", dto.CreateContractRequest{DeveloperID: domain.NewID(), GameID: f.game, TypeContractID: f.ct, StartDate: "2024-01-01"}, domain.FieldDeveloperID},
		{"juego inexistente", dto.CreateContractRequest{DeveloperID: f.dev, GameID: domain.NewID(), TypeContractID: f.ct, StartDate: "2024-01-01"}, domain.FieldGameID},
		{"juego de otro desarrollador", dto.CreateContractRequest{DeveloperID: otherDev.ID, GameID: f.game, TypeContractID: f.ct, StartDate: "2024-01-01"}, domain.FieldGameID},
		{"tipo inactivo", dto.CreateContractRequest{DeveloperID: f.dev, GameID: f.game, TypeContractID: inactiveType.ID, StartDate: "2024-01-01"}, domain.FieldTypeContractID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.Create(ctx, admin, tt.in)
			assert.ErrorIs(t, err, domain.ErrInvalidReference)
			var ref *domain.InvalidReferenceError
			require.True(t, errors.As(err, &ref))
			assert.Equal(t, tt.field, ref.Field)
		})
	}

	_, err := f.store.Developers().SetActive(ctx, f.dev, false)
	require.NoError(t, err)
	_, err = f.uc.Create(ctx, admin, f.request("2024-01-01", nil))
	var ref *domain.InvalidReferenceError
	require.True(t, errors.As(err, &ref))
	assert.Equal(t, domain.FieldDeveloperID, ref.Field)
}

func TestCreate_Autorizacion(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	_, err := f.uc.Create(ctx, user, f.request("2024-01-01", nil))
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.uc.Create(ctx, domain.Identity{UserID: admin.UserID, Admin: true, Active: false}, f.request("2024-01-01", nil))
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = f.uc.List(ctx, domain.Identity{}, dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestDisable_Idempotente(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	c, err := f.uc.Create(ctx, admin, f.request("2024-01-01", nil))
	require.NoError(t, err)

	require.NoError(t, f.uc.Disable(ctx, admin, c.ID))
	require.NoError(t, f.uc.Disable(ctx, admin, c.ID))

	got, err := f.uc.GetByID(ctx, user, c.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
}

func TestDisable_NoEncontrado(t *testing.T) {
	f := setup(t)
	err := f.uc.Disable(context.Background(), admin, domain.NewID())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = f.uc.Disable(context.Background(), admin, "xyz")
	assert.ErrorIs(t, err, domain.ErrMalformedID)
}

func TestGetByID_NoEncontrado(t *testing.T) {
	f := setup(t)
	_, err := f.uc.GetByID(context.Background(), user, domain.NewID())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListDetailed_SoloActivosConReferencias(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	c1, err := f.uc.Create(ctx, admin, f.request("2024-01-01", nil))
	require.NoError(t, err)
	require.NoError(t, f.uc.Disable(ctx, admin, c1.ID))
	c2, err := f.uc.Create(ctx, admin, f.request("2024-02-01", nil))
	require.NoError(t, err)

	// Renombrar el desarrollador: la vista usa el documento actual.
	dev, err := f.store.Developers().GetByID(ctx, f.dev)
	require.NoError(t, err)
	dev.Name = "dev1 renombrado"
	_, err = f.store.Developers().Update(ctx, dev)
	require.NoError(t, err)

	page, err := f.uc.ListDetailed(ctx, user, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, 0, page.Skip)
	assert.Equal(t, dto.DefaultLimit, page.Limit)

	item := page.Items[0]
	assert.Equal(t, c2.ID, item.ID)
	assert.Equal(t, "dev1 renombrado", item.DeveloperInfo.Name)
	assert.Equal(t, f.dev, item.DeveloperInfo.ID)
	assert.Equal(t, "game1", item.GameInfo.Title)
	assert.Equal(t, "type1", item.TypeContractInfo.Description)
}

func TestList_PaginacionConTope(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	uc := contract.NewUseCase(s.Contracts(), s.Developers(), s.Games(), s.ContractTypes(), contract.WithMaxPageSize(3))
	dev := &entity.Developer{Name: "d", Active: true}
	require.NoError(t, s.Developers().Create(ctx, dev))
	ct := &entity.ContractType{Description: "t", Active: true}
	require.NoError(t, s.ContractTypes().Create(ctx, ct))
	for i := 0; i < 5; i++ {
		g := &entity.Game{Title: domain.NewID(), DeveloperID: dev.ID, Active: true}
		require.NoError(t, s.Games().Create(ctx, g))
		_, err := uc.Create(ctx, admin, dto.CreateContractRequest{DeveloperID: dev.ID, GameID: g.ID, TypeContractID: ct.ID, StartDate: "2024-01-01"})
		require.NoError(t, err)
	}

	page, err := uc.List(ctx, user, dto.PageRequest{Skip: -4, Limit: 1000})
	require.NoError(t, err)
	assert.Equal(t, 0, page.Skip)
	assert.Equal(t, 3, page.Limit)
	assert.Len(t, page.Items, 3)
	assert.Equal(t, int64(5), page.Total)

	page, err = uc.List(ctx, user, dto.PageRequest{Skip: 4, Limit: 3})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
}

func TestUpdate_RevalidaSoloCamposPresentes(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	c, err := f.uc.Create(ctx, admin, f.request("2024-01-01", strPtr("2024-12-31")))
	require.NoError(t, err)

	// Desactivar el tipo no afecta a un patch que no lo toca.
	_, err = f.store.ContractTypes().SetActive(ctx, f.ct, false)
	require.NoError(t, err)
	out, err := f.uc.Update(ctx, admin, c.ID, dto.UpdateContractRequest{StartDate: strPtr("2024-03-01")})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", out.StartDate)

	// Fecha de inicio posterior a la fecha fin guardada.
	_, err = f.uc.Update(ctx, admin, c.ID, dto.UpdateContractRequest{StartDate: strPtr("2025-01-01")})
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

	// Borrar end_date con null explícito.
	out, err = f.uc.Update(ctx, admin, c.ID, dto.UpdateContractRequest{EndDate: dto.NullableString{Set: true}})
	require.NoError(t, err)
	assert.Nil(t, out.EndDate)

	// El tipo presente sí se revalida.
	_, err = f.uc.Update(ctx, admin, c.ID, dto.UpdateContractRequest{TypeContractID: strPtr(f.ct)})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
}

func TestUpdate_CambioDeDesarrolladorExigePropiedad(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	c, err := f.uc.Create(ctx, admin, f.request("2024-01-01", nil))
	require.NoError(t, err)

	other := &entity.Developer{Name: "otro", Active: true}
	require.NoError(t, f.store.Developers().Create(ctx, other))

	_, err = f.uc.Update(ctx, admin, c.ID, dto.UpdateContractRequest{DeveloperID: strPtr(other.ID)})
	var ref *domain.InvalidReferenceError
	require.True(t, errors.As(err, &ref))
	assert.Equal(t, domain.FieldGameID, ref.Field)
}

func TestUpdate_ReactivarChocaConOtroActivo(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	c1, err := f.uc.Create(ctx, admin, f.request("2024-01-01", nil))
	require.NoError(t, err)
	require.NoError(t, f.uc.Disable(ctx, admin, c1.ID))
	c2, err := f.uc.Create(ctx, admin, f.request("2024-02-01", nil))
	require.NoError(t, err)

	_, err = f.uc.Update(ctx, admin, c1.ID, dto.UpdateContractRequest{Active: boolPtr(true)})
	assert.ErrorIs(t, err, domain.ErrDuplicateActiveContract)

	// El contrato activo no choca consigo mismo.
	out, err := f.uc.Update(ctx, admin, c2.ID, dto.UpdateContractRequest{Active: boolPtr(true), StartDate: strPtr("2023-01-01")})
	require.NoError(t, err)
	assert.True(t, out.Active)
}

func TestUpdate_MoverAParConContratoActivo(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	otherGame := &entity.Game{Title: "game2", DeveloperID: f.dev, Active: true}
	require.NoError(t, f.store.Games().Create(ctx, otherGame))

	_, err := f.uc.Create(ctx, admin, f.request("2024-01-01", nil))
	require.NoError(t, err)
	in := f.request("2024-01-01", nil)
	in.GameID = otherGame.ID
	c2, err := f.uc.Create(ctx, admin, in)
	require.NoError(t, err)

	_, err = f.uc.Update(ctx, admin, c2.ID, dto.UpdateContractRequest{GameID: strPtr(f.game)})
	assert.ErrorIs(t, err, domain.ErrDuplicateActiveContract)

	stored, err := f.store.Contracts().GetByID(ctx, c2.ID)
	require.NoError(t, err)
	assert.Equal(t, otherGame.ID, stored.GameID)
	n, err := f.store.Contracts().CountActiveByPair(ctx, f.dev, f.game, "")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

// foldingGames resuelve ids sin distinguir mayúsculas, como ObjectIDFromHex en Mongo.
type foldingGames struct {
	repository.GameRepository
}

func (g foldingGames) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	return g.GameRepository.GetByID(ctx, strings.ToLower(id))
}

func TestCreate_IdentificadorEnMayusculasNoDuplicaPar(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	uc := contract.NewUseCase(f.store.Contracts(), f.store.Developers(), foldingGames{f.store.Games()}, f.store.ContractTypes())

	c, err := uc.Create(ctx, admin, f.request("2024-01-01", nil))
	require.NoError(t, err)

	in := f.request("2024-01-01", nil)
	in.GameID = strings.ToUpper(f.game)
	_, err = uc.Create(ctx, admin, in)
	assert.ErrorIs(t, err, domain.ErrMalformedID)

	in = f.request("2024-01-01", nil)
	in.DeveloperID = strings.ToUpper(f.dev)
	_, err = uc.Create(ctx, admin, in)
	assert.ErrorIs(t, err, domain.ErrMalformedID)

	_, err = uc.Update(ctx, admin, c.ID, dto.UpdateContractRequest{GameID: strPtr(strings.ToUpper(f.game))})
	assert.ErrorIs(t, err, domain.ErrMalformedID)

	n, err := f.store.Contracts().CountActiveByPair(ctx, f.dev, f.game, "")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestUpdate_NoEncontradoYMalFormado(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	_, err := f.uc.Update(ctx, admin, domain.NewID(), dto.UpdateContractRequest{Active: boolPtr(false)})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	c, err := f.uc.Create(ctx, admin, f.request("2024-01-01", nil))
	require.NoError(t, err)
	_, err = f.uc.Update(ctx, admin, c.ID, dto.UpdateContractRequest{GameID: strPtr("no-hex")})
	assert.ErrorIs(t, err, domain.ErrMalformedID)
}

func TestCreate_ConcurrenteConRestriccionDelAlmacenamiento(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.Create(ctx, admin, f.request("2024-01-01", nil))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	ok := 0
	for err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrDuplicateActiveContract)
	}
	assert.Equal(t, 1, ok)
}

// racyContracts no aplica la restricción de unicidad y obliga a que las dos verificaciones
// ocurran antes de cualquier inserción.
type racyContracts struct {
	mu      sync.Mutex
	items   map[string]entity.Contract
	barrier sync.WaitGroup
}

func newRacyContracts(parties int) *racyContracts {
	r := &racyContracts{items: map[string]entity.Contract{}}
	r.barrier.Add(parties)
	return r
}

func (r *racyContracts) Create(_ context.Context, c *entity.Contract) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = domain.NewID()
	r.items[c.ID] = *c
	return nil
}

func (r *racyContracts) GetByID(_ context.Context, id string) (*entity.Contract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *racyContracts) ListActive(context.Context, repository.Page) ([]*entity.Contract, error) {
	return nil, nil
}

func (r *racyContracts) ListActiveDetailed(context.Context, repository.Page) ([]*entity.ContractDetail, error) {
	return nil, nil
}

func (r *racyContracts) CountActive(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, c := range r.items {
		if c.Active {
			n++
		}
	}
	return n, nil
}

func (r *racyContracts) CountActiveByPair(_ context.Context, dev, game, _ string) (int64, error) {
	r.mu.Lock()
	var n int64
	for _, c := range r.items {
		if c.Active && c.DeveloperID == dev && c.GameID == game {
			n++
		}
	}
	r.mu.Unlock()
	r.barrier.Done()
	r.barrier.Wait()
	return n, nil
}

func (r *racyContracts) Update(context.Context, *entity.Contract) (bool, error) {
	return false, nil
}

func (r *racyContracts) SetActive(context.Context, string, bool) (bool, error) {
	return false, nil
}

// Limitación conocida: sin restricción en el almacenamiento, la verificación previa no
// impide dos contratos activos para el mismo par bajo concurrencia.
func TestCreate_ConcurrenteSinRestriccionPuedeDuplicar(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	racy := newRacyContracts(2)
	uc := contract.NewUseCase(racy, f.store.Developers(), f.store.Games(), f.store.ContractTypes())

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Create(ctx, admin, f.request("2024-01-01", nil))
		}(i)
	}
	wg.Wait()

	assert.NoError(t, errs[0])
	assert.NoError(t, errs[1])
	n, err := racy.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

type failingDevelopers struct {
	repository.DeveloperRepository
}

func (failingDevelopers) GetByID(context.Context, string) (*entity.Developer, error) {
	return nil, domain.StoreError("developers.get", errors.New("conexión rechazada"))
}

func TestCreate_FalloDelAlmacenamiento(t *testing.T) {
	f := setup(t)
	uc := contract.NewUseCase(f.store.Contracts(), failingDevelopers{}, f.store.Games(), f.store.ContractTypes())
	_, err := uc.Create(context.Background(), admin, f.request("2024-01-01", nil))
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
