package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/contract"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	DeveloperUC    *usecase.DeveloperUseCase
	GameUC         *usecase.GameUseCase
	ContractTypeUC *usecase.ContractTypeUseCase
	ContractUC     *contract.UseCase
	PurchaseUC     *usecase.PurchaseUseCase
	WishlistUC     *usecase.WishlistUseCase
	UserUC         *usecase.UserUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	authRequired := AuthMiddleware(deps.JWTSecret)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Games: lectura pública, escritura admin
	games := api.Group("/games")
	gameHandler := NewGameHandler(deps.GameUC)
	games.Get("/", gameHandler.List)
	games.Get("/:id", gameHandler.GetByID)
	games.Post("/", authRequired, adminOnly, gameHandler.Create)
	games.Put("/:id", authRequired, adminOnly, gameHandler.Update)
	games.Delete("/:id", authRequired, adminOnly, gameHandler.Disable)

	// Developers (protegido)
	developers := api.Group("/developers", authRequired)
	developerHandler := NewDeveloperHandler(deps.DeveloperUC)
	developers.Get("/", developerHandler.List)
	developers.Get("/:id", developerHandler.GetByID)
	developers.Post("/", adminOnly, developerHandler.Create)
	developers.Put("/:id", adminOnly, developerHandler.Update)
	developers.Delete("/:id", adminOnly, developerHandler.Disable)

	// Contract types (admin)
	contractTypes := api.Group("/contract-types", authRequired, adminOnly)
	contractTypeHandler := NewContractTypeHandler(deps.ContractTypeUC)
	contractTypes.Post("/", contractTypeHandler.Create)
	contractTypes.Get("/", contractTypeHandler.List)
	contractTypes.Get("/:id", contractTypeHandler.GetByID)
	contractTypes.Put("/:id", contractTypeHandler.Update)
	contractTypes.Delete("/:id", contractTypeHandler.Disable)

	// Contracts (protegido; escritura admin)
	contracts := api.Group("/contracts", authRequired)
	contractHandler := NewContractHandler(deps.ContractUC)
	contracts.Get("/", contractHandler.List)
	contracts.Get("/details", contractHandler.ListDetailed)
	contracts.Get("/:id", contractHandler.GetByID)
	contracts.Post("/", adminOnly, contractHandler.Create)
	contracts.Put("/:id", adminOnly, contractHandler.Update)
	contracts.Delete("/:id", adminOnly, contractHandler.Disable)

	// Purchases (protegido; la propiedad la verifica el caso de uso)
	purchases := api.Group("/purchases", authRequired)
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/:id", purchaseHandler.GetByID)
	purchases.Get("/:id/receipt", purchaseHandler.Receipt)
	purchases.Put("/:id", adminOnly, purchaseHandler.Update)
	purchases.Delete("/:id", adminOnly, purchaseHandler.Disable)

	// Wishlist (lista propia)
	wishlist := api.Group("/wishlist", authRequired)
	wishlistHandler := NewWishlistHandler(deps.WishlistUC)
	wishlist.Get("/", wishlistHandler.List)
	wishlist.Post("/", wishlistHandler.Add)
	wishlist.Delete("/:game_id", wishlistHandler.Remove)

	// Users
	users := api.Group("/users", authRequired)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", adminOnly, userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", adminOnly, userHandler.Disable)
}
