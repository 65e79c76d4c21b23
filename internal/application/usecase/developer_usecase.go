// Package usecase casos de uso del catálogo, usuarios, compras y lista de deseos.
package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// DeveloperUseCase CRUD de desarrolladores con borrado lógico.
type DeveloperUseCase struct {
	repo        repository.DeveloperRepository
	maxPageSize int
}

// NewDeveloperUseCase construye el caso de uso.
func NewDeveloperUseCase(repo repository.DeveloperRepository, maxPageSize int) *DeveloperUseCase {
	return &DeveloperUseCase{repo: repo, maxPageSize: maxPageSize}
}

// Create crea un desarrollador activo.
func (uc *DeveloperUseCase) Create(ctx context.Context, actor domain.Identity, in dto.CreateDeveloperRequest) (*dto.DeveloperResponse, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	d := &entity.Developer{
		Name:        name,
		Country:     in.Country,
		FoundedYear: in.FoundedYear,
		Active:      true,
	}
	if err := uc.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return toDeveloperResponse(d), nil
}

// GetByID obtiene un desarrollador por ID (también inactivos).
func (uc *DeveloperUseCase) GetByID(ctx context.Context, actor domain.Identity, id string) (*dto.DeveloperResponse, error) {
	if err := actor.RequireActive(); err != nil {
		return nil, err
	}
	if err := domain.CheckID("id", id); err != nil {
		return nil, err
	}
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	return toDeveloperResponse(d), nil
}

// List desarrolladores activos con paginación.
func (uc *DeveloperUseCase) List(ctx context.Context, actor domain.Identity, req dto.PageRequest) (*dto.DeveloperListResponse, error) {
	if err := actor.RequireActive(); err != nil {
		return nil, err
	}
	req = req.Normalize(uc.maxPageSize)
	list, err := uc.repo.ListActive(ctx, repository.Page{Skip: req.Skip, Limit: req.Limit})
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DeveloperResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDeveloperResponse(d))
	}
	return &dto.DeveloperListResponse{
		Items:        items,
		PageResponse: dto.PageResponse{Total: total, Skip: req.Skip, Limit: req.Limit},
	}, nil
}

// Update actualiza los campos presentes.
func (uc *DeveloperUseCase) Update(ctx context.Context, actor domain.Identity, id string, in dto.UpdateDeveloperRequest) (*dto.DeveloperResponse, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	if err := domain.CheckID("id", id); err != nil {
		return nil, err
	}
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		d.Name = name
	}
	if in.Country != nil {
		d.Country = in.Country
	}
	if in.FoundedYear != nil {
		d.FoundedYear = in.FoundedYear
	}
	if in.Active != nil {
		d.Active = *in.Active
	}
	matched, err := uc.repo.Update(ctx, d)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, domain.ErrNotFound
	}
	return toDeveloperResponse(d), nil
}

// Disable borrado lógico (idempotente).
func (uc *DeveloperUseCase) Disable(ctx context.Context, actor domain.Identity, id string) error {
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

func toDeveloperResponse(d *entity.Developer) *dto.DeveloperResponse {
	return &dto.DeveloperResponse{
		ID:          d.ID,
		Name:        d.Name,
		Country:     d.Country,
		FoundedYear: d.FoundedYear,
		Active:      d.Active,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
