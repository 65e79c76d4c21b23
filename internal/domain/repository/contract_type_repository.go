package repository

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// ContractTypeRepository define el puerto de persistencia para ContractType.
type ContractTypeRepository interface {
	Create(ctx context.Context, contractType *entity.ContractType) error
	GetByID(ctx context.Context, id string) (*entity.ContractType, error)
	// FindByDescription búsqueda exacta sin distinguir mayúsculas. (nil, nil) si no existe.
	FindByDescription(ctx context.Context, description string) (*entity.ContractType, error)
	ListActive(ctx context.Context, page Page) ([]*entity.ContractType, error)
	CountActive(ctx context.Context) (int64, error)
	Update(ctx context.Context, contractType *entity.ContractType) (bool, error)
	SetActive(ctx context.Context, id string, active bool) (bool, error)
}
