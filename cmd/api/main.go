package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/contract"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/tienda-api/internal/infrastructure/pdf"
	"github.com/jhoicas/tienda-api/internal/infrastructure/store"
	httpRouter "github.com/jhoicas/tienda-api/internal/interfaces/http"
	"github.com/jhoicas/tienda-api/pkg/config"
	"github.com/jhoicas/tienda-api/pkg/logger"
	"github.com/jhoicas/tienda-api/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: los endpoints autenticados rechazarán todo token")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	repos, err := store.Open(ctx, cfg, log.Component("store"))
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer repos.Close()

	m := metrics.New(cfg.Metrics.Prefix)
	maxPage := cfg.HTTP.MaxPageSize

	receipts := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)

	authUC := auth.NewAuthUseCase(repos.Users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, m)
	contractUC := contract.NewUseCase(
		repos.Contracts, repos.Developers, repos.Games, repos.ContractTypes,
		contract.WithLogger(log),
		contract.WithMetrics(m),
		contract.WithMaxPageSize(maxPage),
	)

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:        cfg.App.Name,
		SwaggerFile: cfg.HTTP.SwaggerFile,
		Logger:      log,
		Metrics:     m,
	}, httpRouter.RouterDeps{
		AuthUC:         authUC,
		DeveloperUC:    usecase.NewDeveloperUseCase(repos.Developers, maxPage),
		GameUC:         usecase.NewGameUseCase(repos.Games, repos.Developers, maxPage),
		ContractTypeUC: usecase.NewContractTypeUseCase(repos.ContractTypes, maxPage),
		ContractUC:     contractUC,
		PurchaseUC: usecase.NewPurchaseUseCase(
			repos.Purchases, repos.Games, repos.Users, repos.Wishlist,
			receipts, log, maxPage,
		),
		WishlistUC: usecase.NewWishlistUseCase(repos.Wishlist, repos.Games, maxPage),
		UserUC:     usecase.NewUserUseCase(repos.Users, maxPage),
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
