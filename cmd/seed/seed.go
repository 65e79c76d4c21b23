package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/infrastructure/store"
	"github.com/jhoicas/tienda-api/pkg/validate"
)

const (
	demoDeveloper    = "Estudio Demo"
	demoGameTitle    = "Aventura Demo"
	demoContractType = "Distribución digital"
	adminProfile     = "Administrador"
	adminDateBirth   = "1990-01-01"
)

type seedOptions struct {
	adminEmail    string
	adminPassword string
	bcryptCost    int
	catalog       bool
}

type seedResult struct {
	AdminCreated   bool
	CatalogCreated int // registros nuevos del catálogo
}

// runSeed es idempotente: lo que ya existe (email, título, descripción, contrato activo) se conserva.
func runSeed(ctx context.Context, repos *store.Repositories, opts seedOptions) (seedResult, error) {
	var res seedResult
	email := strings.ToLower(strings.TrimSpace(opts.adminEmail))
	// Mismas reglas que el registro: la cuenta debe poder iniciar sesión.
	if err := validate.New().Struct(dto.RegisterRequest{
		NameProfile: adminProfile,
		Email:       email,
		Password:    opts.adminPassword,
		DateBirth:   adminDateBirth,
	}); err != nil {
		return res, fmt.Errorf("cuenta administradora: %w", err)
	}

	err := repos.RunInTx(ctx, func(r *store.Repositories) error {
		res = seedResult{}
		created, err := seedAdmin(ctx, r, email, opts)
		if err != nil {
			return err
		}
		res.AdminCreated = created
		if !opts.catalog {
			return nil
		}
		n, err := seedCatalog(ctx, r)
		res.CatalogCreated = n
		return err
	})
	return res, err
}

func seedAdmin(ctx context.Context, r *store.Repositories, email string, opts seedOptions) (bool, error) {
	existing, err := r.Users.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	cost := opts.bcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(opts.adminPassword), cost)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}
	u := &entity.User{
		NameProfile:  adminProfile,
		Email:        email,
		PasswordHash: string(hash),
		DateBirth:    adminDateBirth,
		Active:       true,
		Admin:        true,
	}
	if err := r.Users.Create(ctx, u); err != nil {
		return false, err
	}
	return true, nil
}

func seedCatalog(ctx context.Context, r *store.Repositories) (int, error) {
	created := 0

	game, err := r.Games.FindByTitle(ctx, demoGameTitle)
	if err != nil {
		return created, err
	}
	if game == nil {
		country := "CO"
		founded := 2015
		dev := &entity.Developer{Name: demoDeveloper, Country: &country, FoundedYear: &founded, Active: true}
		if err := r.Developers.Create(ctx, dev); err != nil {
			return created, err
		}
		created++
		game = &entity.Game{
			Title:       demoGameTitle,
			Description: "Juego de demostración del catálogo",
			ReleaseDate: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			Price:       decimal.RequireFromString("19.99"),
			DeveloperID: dev.ID,
			Status:      entity.GameStatusCompleto,
			Active:      true,
		}
		if err := r.Games.Create(ctx, game); err != nil {
			return created, err
		}
		created++
	}

	ct, err := r.ContractTypes.FindByDescription(ctx, demoContractType)
	if err != nil {
		return created, err
	}
	if ct == nil {
		ct = &entity.ContractType{Description: demoContractType, Active: true}
		if err := r.ContractTypes.Create(ctx, ct); err != nil {
			return created, err
		}
		created++
	}

	n, err := r.Contracts.CountActiveByPair(ctx, game.DeveloperID, game.ID, "")
	if err != nil {
		return created, err
	}
	if n == 0 {
		c := &entity.Contract{
			DeveloperID:    game.DeveloperID,
			GameID:         game.ID,
			TypeContractID: ct.ID,
			StartDate:      time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			Active:         true,
		}
		if err := r.Contracts.Create(ctx, c); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
