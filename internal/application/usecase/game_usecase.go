package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	domaincontract "github.com/jhoicas/tienda-api/internal/domain/contract"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// GameUseCase CRUD de juegos. El listado y el detalle son públicos y solo muestran juegos activos.
type GameUseCase struct {
	repo        repository.GameRepository
	developers  repository.DeveloperRepository
	maxPageSize int
}

// NewGameUseCase construye el caso de uso.
func NewGameUseCase(repo repository.GameRepository, developers repository.DeveloperRepository, maxPageSize int) *GameUseCase {
	return &GameUseCase{repo: repo, developers: developers, maxPageSize: maxPageSize}
}

// Create crea un juego. El título no puede repetirse (sin distinguir mayúsculas) y el
// desarrollador debe existir y estar activo.
func (uc *GameUseCase) Create(ctx context.Context, actor domain.Identity, in dto.CreateGameRequest) (*dto.GameResponse, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	if err := domain.CheckID(domain.FieldDeveloperID, in.DeveloperID); err != nil {
		return nil, err
	}
	if in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	release, err := domaincontract.ParseDate(in.ReleaseDate)
	if err != nil {
		return nil, err
	}
	if err := uc.checkDeveloper(ctx, in.DeveloperID); err != nil {
		return nil, err
	}
	title := strings.TrimSpace(in.Title)
	if err := uc.checkTitle(ctx, title, ""); err != nil {
		return nil, err
	}
	g := &entity.Game{
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		ReleaseDate: release,
		Price:       in.Price,
		DeveloperID: in.DeveloperID,
		Status:      in.Status,
		Active:      true,
	}
	if err := uc.repo.Create(ctx, g); err != nil {
		return nil, err
	}
	return toGameResponse(g), nil
}

func (uc *GameUseCase) checkDeveloper(ctx context.Context, id string) error {
	d, err := uc.developers.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if d == nil || !d.Active {
		return domain.InvalidRef(domain.FieldDeveloperID, "no existe o está inactivo")
	}
	return nil
}

func (uc *GameUseCase) checkTitle(ctx context.Context, title, selfID string) error {
	existing, err := uc.repo.FindByTitle(ctx, title)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return domain.ErrDuplicate
	}
	return nil
}

// GetByID detalle público; un juego inactivo no se encuentra.
func (uc *GameUseCase) GetByID(ctx context.Context, id string) (*dto.GameResponse, error) {
	if err := domain.CheckID("id", id); err != nil {
		return nil, err
	}
	g, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil || !g.Active {
		return nil, domain.ErrNotFound
	}
	return toGameResponse(g), nil
}

// List catálogo público de juegos activos.
func (uc *GameUseCase) List(ctx context.Context, req dto.PageRequest) (*dto.GameListResponse, error) {
	req = req.Normalize(uc.maxPageSize)
	list, err := uc.repo.ListActive(ctx, repository.Page{Skip: req.Skip, Limit: req.Limit})
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.GameResponse, 0, len(list))
	for _, g := range list {
		items = append(items, *toGameResponse(g))
	}
	return &dto.GameListResponse{
		Items:        items,
		PageResponse: dto.PageResponse{Total: total, Skip: req.Skip, Limit: req.Limit},
	}, nil
}

// Update actualiza los campos presentes con las mismas reglas que Create.
func (uc *GameUseCase) Update(ctx context.Context, actor domain.Identity, id string, in dto.UpdateGameRequest) (*dto.GameResponse, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	if err := domain.CheckID("id", id); err != nil {
		return nil, err
	}
	g, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, domain.ErrNotFound
	}
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if err := uc.checkTitle(ctx, title, g.ID); err != nil {
			return nil, err
		}
		g.Title = title
	}
	if in.Description != nil {
		g.Description = strings.TrimSpace(*in.Description)
	}
	if in.ReleaseDate != nil {
		release, err := domaincontract.ParseDate(*in.ReleaseDate)
		if err != nil {
			return nil, err
		}
		g.ReleaseDate = release
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		g.Price = *in.Price
	}
	if in.DeveloperID != nil {
		if err := domain.CheckID(domain.FieldDeveloperID, *in.DeveloperID); err != nil {
			return nil, err
		}
		if err := uc.checkDeveloper(ctx, *in.DeveloperID); err != nil {
			return nil, err
		}
		g.DeveloperID = *in.DeveloperID
	}
	if in.Status != nil {
		g.Status = *in.Status
	}
	if in.Active != nil {
		g.Active = *in.Active
	}
	matched, err := uc.repo.Update(ctx, g)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, domain.ErrNotFound
	}
	return toGameResponse(g), nil
}

// Disable borrado lógico (idempotente).
func (uc *GameUseCase) Disable(ctx context.Context, actor domain.Identity, id string) error {
	if err := actor.RequireAdmin(); err != nil {
		return err
	}
	if err := domain.CheckID("id", id); err != nil {
		return err
	}
	matched, err := uc.repo.SetActive(ctx, id, false)
	if err != nil {
		return err
	}
	if !matched {
		return domain.ErrNotFound
	}
	return nil
}

func toGameResponse(g *entity.Game) *dto.GameResponse {
	return &dto.GameResponse{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		ReleaseDate: domaincontract.FormatDate(g.ReleaseDate),
		Price:       g.Price,
		DeveloperID: g.DeveloperID,
		Status:      g.Status,
		Active:      g.Active,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}
