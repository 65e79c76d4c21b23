package contract

import (
	"context"
	"time"

	"github.com/jhoicas/tienda-api/internal/domain"
	domaincontract "github.com/jhoicas/tienda-api/internal/domain/contract"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// RuleValidator reglas de negocio: orden de fechas y unicidad del contrato activo por par.
// La unicidad usa el mismo predicado que el índice parcial del almacenamiento
// (developer_id, game_id, active = true); el índice es quien decide ante escrituras concurrentes.
type RuleValidator struct {
	contracts repository.ContractRepository
}

// NewRuleValidator construye el validador.
func NewRuleValidator(contracts repository.ContractRepository) *RuleValidator {
	return &RuleValidator{contracts: contracts}
}

// Check aplica fechas y luego unicidad sobre el candidato. excludeID permite ignorar el propio
// contrato al actualizar.
func (v *RuleValidator) Check(ctx context.Context, c entity.Contract, excludeID string) error {
	if err := v.CheckDates(c.StartDate, c.EndDate); err != nil {
		return err
	}
	return v.CheckUniqueness(ctx, c.DeveloperID, c.GameID, excludeID)
}

// CheckDates falla con domain.ErrInvalidDateRange si end es anterior a start.
func (v *RuleValidator) CheckDates(start time.Time, end *time.Time) error {
	return domaincontract.ValidateDateRange(start, end)
}

// CheckUniqueness falla con domain.ErrDuplicateActiveContract si ya hay un contrato activo del par.
func (v *RuleValidator) CheckUniqueness(ctx context.Context, developerID, gameID, excludeID string) error {
	n, err := v.contracts.CountActiveByPair(ctx, developerID, gameID, excludeID)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrDuplicateActiveContract
	}
	return nil
}
