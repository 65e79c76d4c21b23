package contract

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// ReferenceValidator confirma que las referencias de un contrato existen, están activas
// y que el juego pertenece al desarrollador indicado. Solo lectura.
type ReferenceValidator struct {
	developers    repository.DeveloperRepository
	games         repository.GameRepository
	contractTypes repository.ContractTypeRepository
}

// NewReferenceValidator construye el validador.
func NewReferenceValidator(
	developers repository.DeveloperRepository,
	games repository.GameRepository,
	contractTypes repository.ContractTypeRepository,
) *ReferenceValidator {
	return &ReferenceValidator{developers: developers, games: games, contractTypes: contractTypes}
}

// Validate comprueba las tres referencias en orden: desarrollador, juego, tipo de contrato.
func (v *ReferenceValidator) Validate(ctx context.Context, developerID, gameID, typeContractID string) error {
	if err := v.ValidateDeveloper(ctx, developerID); err != nil {
		return err
	}
	if err := v.ValidateGame(ctx, gameID, developerID); err != nil {
		return err
	}
	return v.ValidateContractType(ctx, typeContractID)
}

// ValidateDeveloper exige un desarrollador existente y activo.
func (v *ReferenceValidator) ValidateDeveloper(ctx context.Context, id string) error {
	if !domain.IsValidID(id) {
		return domain.InvalidRef(domain.FieldDeveloperID, "formato inválido")
	}
	d, err := v.developers.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if d == nil {
		return domain.InvalidRef(domain.FieldDeveloperID, "no existe")
	}
	if !d.Active {
		return domain.InvalidRef(domain.FieldDeveloperID, "inactivo")
	}
	return nil
}

// ValidateGame exige un juego existente, activo y cuyo developer_id sea developerID.
func (v *ReferenceValidator) ValidateGame(ctx context.Context, gameID, developerID string) error {
	if !domain.IsValidID(gameID) {
		return domain.InvalidRef(domain.FieldGameID, "formato inválido")
	}
	g, err := v.games.GetByID(ctx, gameID)
	if err != nil {
		return err
	}
	if g == nil {
		return domain.InvalidRef(domain.FieldGameID, "no existe")
	}
	if !g.Active {
		return domain.InvalidRef(domain.FieldGameID, "inactivo")
	}
	if g.DeveloperID != developerID {
		return domain.InvalidRef(domain.FieldGameID, "no pertenece al desarrollador")
	}
	return nil
}

// ValidateContractType exige un tipo de contrato existente y activo.
func (v *ReferenceValidator) ValidateContractType(ctx context.Context, id string) error {
	if !domain.IsValidID(id) {
		return domain.InvalidRef(domain.FieldTypeContractID, "formato inválido")
	}
	t, err := v.contractTypes.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.InvalidRef(domain.FieldTypeContractID, "no existe")
	}
	if !t.Active {
		return domain.InvalidRef(domain.FieldTypeContractID, "inactivo")
	}
	return nil
}
