package repository

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// DeveloperRepository define el puerto de persistencia para Developer.
type DeveloperRepository interface {
	Create(ctx context.Context, developer *entity.Developer) error
	GetByID(ctx context.Context, id string) (*entity.Developer, error)
	ListActive(ctx context.Context, page Page) ([]*entity.Developer, error)
	CountActive(ctx context.Context) (int64, error)
	Update(ctx context.Context, developer *entity.Developer) (bool, error)
	SetActive(ctx context.Context, id string, active bool) (bool, error)
}
