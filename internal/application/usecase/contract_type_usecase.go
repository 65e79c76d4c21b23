package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// ContractTypeUseCase CRUD de tipos de contrato; todas las operaciones son de administrador.
type ContractTypeUseCase struct {
	repo        repository.ContractTypeRepository
	maxPageSize int
}

// NewContractTypeUseCase construye el caso de uso.
func NewContractTypeUseCase(repo repository.ContractTypeRepository, maxPageSize int) *ContractTypeUseCase {
	return &ContractTypeUseCase{repo: repo, maxPageSize: maxPageSize}
}

func (uc *ContractTypeUseCase) checkDescription(ctx context.Context, desc, selfID string) error {
	existing, err := uc.repo.FindByDescription(ctx, desc)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return domain.ErrDuplicate
	}
	return nil
}

// Create crea un tipo de contrato con descripción única.
func (uc *ContractTypeUseCase) Create(ctx context.Context, actor domain.Identity, in dto.CreateContractTypeRequest) (*dto.ContractTypeResponse, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkDescription(ctx, desc, ""); err != nil {
		return nil, err
	}
	t := &entity.ContractType{Description: desc, Active: true}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return toContractTypeResponse(t), nil
}

// GetByID obtiene un tipo de contrato (también inactivos).
func (uc *ContractTypeUseCase) GetByID(ctx context.Context, actor domain.Identity, id string) (*dto.ContractTypeResponse, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	if err := domain.CheckID("id", id); err != nil {
		return nil, err
	}
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return toContractTypeResponse(t), nil
}

// List tipos de contrato activos.
func (uc *ContractTypeUseCase) List(ctx context.Context, actor domain.Identity, req dto.PageRequest) (*dto.ContractTypeListResponse, error) {
	if err := actor.RequireAdmin(); err != nil {
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
	items := make([]dto.ContractTypeResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toContractTypeResponse(t))
	}
	return &dto.ContractTypeListResponse{
		Items:        items,
		PageResponse: dto.PageResponse{Total: total, Skip: req.Skip, Limit: req.Limit},
	}, nil
}

// Update cambia descripción y/o estado.
func (uc *ContractTypeUseCase) Update(ctx context.Context, actor domain.Identity, id string, in dto.UpdateContractTypeRequest) (*dto.ContractTypeResponse, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	if err := domain.CheckID("id", id); err != nil {
		return nil, err
	}
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if in.Description != nil {
		desc := strings.TrimSpace(*in.Description)
		if desc == "" {
			return nil, domain.ErrInvalidInput
		}
		if err := uc.checkDescription(ctx, desc, t.ID); err != nil {
			return nil, err
		}
		t.Description = desc
	}
	if in.Active != nil {
		t.Active = *in.Active
	}
	matched, err := uc.repo.Update(ctx, t)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, domain.ErrNotFound
	}
	return toContractTypeResponse(t), nil
}

// Disable borrado lógico (idempotente).
func (uc *ContractTypeUseCase) Disable(ctx context.Context, actor domain.Identity, id string) error {
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

func toContractTypeResponse(t *entity.ContractType) *dto.ContractTypeResponse {
	return &dto.ContractTypeResponse{
		ID:          t.ID,
		Description: t.Description,
		Active:      t.Active,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
