package repository

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// ContractRepository define el puerto de persistencia para Contract.
// Los adaptadores deben hacer cumplir, a nivel de almacenamiento, que no existan dos contratos
// activos para el mismo (developer_id, game_id); la violación se reporta como
// domain.ErrDuplicateActiveContract.
type ContractRepository interface {
	// Create asigna el ID y persiste el contrato.
	Create(ctx context.Context, contract *entity.Contract) error
	// GetByID devuelve (nil, nil) si no existe. No filtra por Active.
	GetByID(ctx context.Context, id string) (*entity.Contract, error)
	// ListActive contratos activos en la ventana indicada, sin orden garantizado.
	ListActive(ctx context.Context, page Page) ([]*entity.Contract, error)
	// ListActiveDetailed une cada contrato activo de la ventana con su desarrollador, juego y tipo.
	// Las filas con alguna referencia colgante se descartan.
	ListActiveDetailed(ctx context.Context, page Page) ([]*entity.ContractDetail, error)
	CountActive(ctx context.Context) (int64, error)
	// CountActiveByPair cuenta contratos activos del par, ignorando excludeID si no es vacío.
	CountActiveByPair(ctx context.Context, developerID, gameID, excludeID string) (int64, error)
	// Update reemplaza los campos mutables. Devuelve false si el ID no existe.
	Update(ctx context.Context, contract *entity.Contract) (bool, error)
	// SetActive devuelve false si el ID no existe.
	SetActive(ctx context.Context, id string, active bool) (bool, error)
}
