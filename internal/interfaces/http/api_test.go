package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/contract"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/infrastructure/memory"
	"github.com/jhoicas/tienda-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/tienda-api/internal/interfaces/http"
	"github.com/jhoicas/tienda-api/pkg/metrics"
)

type testAPI struct {
	t     *testing.T
	app   *fiber.App
	store *memory.Store
	admin string
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	s := memory.NewStore()
	m := metrics.New("test")
	deps := apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(s.Users(), auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
		}, m).WithBcryptCost(bcrypt.MinCost),
		DeveloperUC:    usecase.NewDeveloperUseCase(s.Developers(), 100),
		GameUC:         usecase.NewGameUseCase(s.Games(), s.Developers(), 100),
		ContractTypeUC: usecase.NewContractTypeUseCase(s.ContractTypes(), 100),
		ContractUC: contract.NewUseCase(s.Contracts(), s.Developers(), s.Games(), s.ContractTypes(),
			contract.WithMetrics(m)),
		PurchaseUC: usecase.NewPurchaseUseCase(s.Purchases(), s.Games(), s.Users(), s.Wishlist(),
			pdf.NewMarotoReceiptGenerator("Tienda Test"), nil, 100),
		WishlistUC: usecase.NewWishlistUseCase(s.Wishlist(), s.Games(), 100),
		UserUC:     usecase.NewUserUseCase(s.Users(), 100),
		JWTSecret:  testJWTSecret,
	}
	app := apphttp.NewApp(apphttp.AppConfig{Name: "tienda-test", Metrics: m}, deps)
	return &testAPI{t: t, app: app, store: s, admin: tokenFor(t, domain.NewID(), "admin", true)}
}

// call hace la petición y decodifica el cuerpo JSON (nil si no es JSON).
func (a *testAPI) call(method, path, token string, body any) (int, map[string]any) {
	a.t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, token)
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(a.t, err)
	defer resp.Body.Close()
	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func (a *testAPI) mustCreate(path string, body any) string {
	a.t.Helper()
	status, out := a.call(http.MethodPost, path, a.admin, body)
	require.Equal(a.t, http.StatusCreated, status, "POST %s: %v", path, out)
	return out["id"].(string)
}

type catalog struct {
	devID, gameID, typeID string
}

func (a *testAPI) seedCatalog() catalog {
	dev := a.mustCreate("/api/developers", map[string]any{"name": "Team Cherry", "country": "Australia"})
	game := a.mustCreate("/api/games", map[string]any{
		"title":        "Hollow Knight",
		"description":  "Metroidvania en un reino subterráneo",
		"release_date": "2017-02-24",
		"price":        "14.99",
		"developer_id": dev,
		"status":       "completo",
	})
	typ := a.mustCreate("/api/contract-types", map[string]any{"description": "Distribución"})
	return catalog{devID: dev, gameID: game, typeID: typ}
}

func TestAPI_HealthYMetrics(t *testing.T) {
	api := newTestAPI(t)

	status, body := api.call(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])

	resp, err := api.app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "test_http_requests_total")
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
}

func TestAPI_ContratoCicloCompleto(t *testing.T) {
	api := newTestAPI(t)
	cat := api.seedCatalog()
	contractBody := map[string]any{
		"developer_id":     cat.devID,
		"game_id":          cat.gameID,
		"type_contract_id": cat.typeID,
		"start_date":       "2024-01-01",
		"end_date":         "2024-12-31",
	}

	id := api.mustCreate("/api/contracts", contractBody)

	status, body := api.call(http.MethodPost, "/api/contracts", api.admin, contractBody)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "DUPLICATE_ACTIVE_CONTRACT", body["code"])

	user := tokenFor(t, domain.NewID(), "user", true)
	status, body = api.call(http.MethodGet, "/api/contracts/details", user, nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, body["total"])
	items := body["items"].([]any)
	require.Len(t, items, 1)
	detail := items[0].(map[string]any)
	assert.Equal(t, "Team Cherry", detail["developer_info"].(map[string]any)["name"])
	assert.Equal(t, "Hollow Knight", detail["game_info"].(map[string]any)["title"])
	assert.Equal(t, "Distribución", detail["type_contract_info"].(map[string]any)["description"])

	status, body = api.call(http.MethodPut, "/api/contracts/"+id, api.admin, map[string]any{"end_date": nil})
	require.Equal(t, http.StatusOK, status, body)
	assert.Nil(t, body["end_date"])
	assert.Equal(t, "2024-01-01", body["start_date"])

	status, _ = api.call(http.MethodDelete, "/api/contracts/"+id, api.admin, nil)
	assert.Equal(t, http.StatusOK, status)

	// Desactivado, el par queda libre.
	api.mustCreate("/api/contracts", contractBody)
}

func TestAPI_ContratoErrores(t *testing.T) {
	api := newTestAPI(t)
	cat := api.seedCatalog()
	user := tokenFor(t, domain.NewID(), "user", true)

	tests := []struct {
		name   string
		token  string
		body   map[string]any
		status int
		code   string
		field  string
	}{
		{
			name:   "sin token",
			body:   map[string]any{},
			status: http.StatusUnauthorized,
			code:   "MISSING_TOKEN",
		},
		{
			name:   "no admin",
			token:  user,
			body:   map[string]any{},
			status: http.StatusForbidden,
			code:   "FORBIDDEN",
		},
		{
			name:  "id mal formado",
			token: api.admin,
			body: map[string]any{
				"developer_id": "abc", "game_id": cat.gameID, "type_contract_id": cat.typeID, "start_date": "2024-01-01",
			},
			status: http.StatusBadRequest,
			code:   "MALFORMED_ID",
			field:  "developer_id",
		},
		{
			name:  "tipo inexistente",
			token: api.admin,
			body: map[string]any{
				"developer_id": cat.devID, "game_id": cat.gameID, "type_contract_id": domain.NewID(), "start_date": "2024-01-01",
			},
			status: http.StatusBadRequest,
			code:   "INVALID_REFERENCE",
			field:  "type_contract_id",
		},
		{
			name:  "fin antes del inicio",
			token: api.admin,
			body: map[string]any{
				"developer_id": cat.devID, "game_id": cat.gameID, "type_contract_id": cat.typeID,
				"start_date": "2024-06-01", "end_date": "2024-01-01",
			},
			status: http.StatusBadRequest,
			code:   "INVALID_DATE_RANGE",
		},
		{
			name:   "faltan campos",
			token:  api.admin,
			body:   map[string]any{"developer_id": cat.devID},
			status: http.StatusBadRequest,
			code:   "VALIDATION",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := api.call(http.MethodPost, "/api/contracts", tt.token, tt.body)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, body["code"])
			if tt.field != "" {
				assert.Equal(t, tt.field, body["field"])
			}
		})
	}

	status, body := api.call(http.MethodGet, "/api/contracts/no-es-un-id", user, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "MALFORMED_ID", body["code"])

	status, body = api.call(http.MethodGet, "/api/contracts/"+domain.NewID(), user, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestAPI_RegistroLoginYCompra(t *testing.T) {
	api := newTestAPI(t)
	cat := api.seedCatalog()

	register := map[string]any{
		"name_profile": "Ana Gamer",
		"email":        "Ana@Example.com",
		"password":     "Secreta1!",
		"date_birth":   "1995-05-20",
	}
	status, body := api.call(http.MethodPost, "/api/auth/register", "", register)
	require.Equal(t, http.StatusCreated, status, body)
	assert.Equal(t, "ana@example.com", body["email"])
	assert.NotContains(t, body, "password")

	status, body = api.call(http.MethodPost, "/api/auth/register", "", register)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "EMAIL_EXISTS", body["code"])

	status, _ = api.call(http.MethodPost, "/api/auth/login", "", map[string]any{"email": "ana@example.com", "password": "Incorrecta1!"})
	assert.Equal(t, http.StatusUnauthorized, status)
	status, _ = api.call(http.MethodPost, "/api/auth/login", "", map[string]any{"email": "nadie@example.com", "password": "Secreta1!"})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body = api.call(http.MethodPost, "/api/auth/login", "", map[string]any{"email": "ANA@example.com", "password": "Secreta1!"})
	require.Equal(t, http.StatusOK, status, body)
	token := "Bearer " + body["id_token"].(string)

	status, _ = api.call(http.MethodPost, "/api/wishlist", token, map[string]any{"game_id": cat.gameID})
	require.Equal(t, http.StatusCreated, status)

	status, body = api.call(http.MethodPost, "/api/purchases", token, map[string]any{"game_id": cat.gameID})
	require.Equal(t, http.StatusCreated, status, body)
	purchaseID := body["id"].(string)
	assert.Equal(t, "14.99", body["price"])

	status, body = api.call(http.MethodPost, "/api/purchases", token, map[string]any{"game_id": cat.gameID})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "DUPLICATE", body["code"])

	// Comprar quita el juego de la lista de deseos.
	status, body = api.call(http.MethodGet, "/api/wishlist", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 0, body["total"])

	req := httptest.NewRequest(http.MethodGet, "/api/purchases/"+purchaseID+"/receipt", nil)
	req.Header.Set(fiber.HeaderAuthorization, token)
	resp, err := api.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	raw, _ := io.ReadAll(resp.Body)
	assert.True(t, strings.HasPrefix(string(raw), "%PDF"))

	other := tokenFor(t, domain.NewID(), "user", true)
	status, _ = api.call(http.MethodGet, "/api/purchases/"+purchaseID, other, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, body = api.call(http.MethodGet, "/api/purchases", api.admin, nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, body["total"])
}

func TestAPI_RegistroValidaPassword(t *testing.T) {
	api := newTestAPI(t)
	status, body := api.call(http.MethodPost, "/api/auth/register", "", map[string]any{
		"name_profile": "Ana",
		"email":        "ana@example.com",
		"password":     "sinmayusculas",
		"date_birth":   "1995-05-20",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", body["code"])
	assert.Contains(t, body["message"], "password")
}

func TestAPI_JuegosPublicos(t *testing.T) {
	api := newTestAPI(t)
	cat := api.seedCatalog()

	status, body := api.call(http.MethodGet, "/api/games?skip=0&limit=5", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, body["total"])
	assert.EqualValues(t, 5, body["limit"])

	status, body = api.call(http.MethodGet, "/api/games/"+cat.gameID, "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Hollow Knight", body["title"])

	status, _ = api.call(http.MethodPost, "/api/games", "", map[string]any{"title": "x"})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body = api.call(http.MethodGet, "/api/games?limit=abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_BODY", body["code"])

	status, body = api.call(http.MethodPost, "/api/games", api.admin, map[string]any{
		"title":        "hollow knight",
		"description":  "Otro juego con el mismo título",
		"release_date": "2020-01-01",
		"price":        "1",
		"developer_id": cat.devID,
		"status":       "demo",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "DUPLICATE", body["code"])
}

func TestAPI_ContractTypesSoloAdmin(t *testing.T) {
	api := newTestAPI(t)
	user := tokenFor(t, domain.NewID(), "user", true)

	status, _ := api.call(http.MethodGet, "/api/contract-types", user, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, body := api.call(http.MethodGet, "/api/contract-types", api.admin, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["items"])
}
