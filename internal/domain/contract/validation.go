// Package contract reglas puras de dominio sobre contratos (sin acceso a almacenamiento).
package contract

import (
	"time"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// DateLayout formato de fecha de calendario usado en contratos.
const DateLayout = "2006-01-02"

// ValidateDateRange exige end >= start cuando end está presente.
func ValidateDateRange(start time.Time, end *time.Time) error {
	if end != nil && end.Before(start) {
		return domain.ErrInvalidDateRange
	}
	return nil
}

// ParseDate interpreta una fecha YYYY-MM-DD como medianoche UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return t, nil
}

// FormatDate inverso de ParseDate.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// PairChanged indica si el patch modifica el par (desarrollador, juego) del contrato.
func PairChanged(current entity.Contract, patch entity.ContractPatch) bool {
	return (patch.DeveloperID != nil && *patch.DeveloperID != current.DeveloperID) ||
		(patch.GameID != nil && *patch.GameID != current.GameID)
}

// NeedsUniquenessCheck indica si aplicar el patch puede crear un segundo contrato activo
// para el mismo par: el resultado queda activo y, o cambia el par, o el contrato se reactiva.
func NeedsUniquenessCheck(current entity.Contract, patch entity.ContractPatch) bool {
	next := patch.Apply(current)
	if !next.Active {
		return false
	}
	return PairChanged(current, patch) || !current.Active
}
