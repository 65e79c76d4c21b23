package contract

import (
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	domaincontract "github.com/jhoicas/tienda-api/internal/domain/contract"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// toPatch convierte la petición en un patch tipado. Los identificadores presentes deben
// tener formato válido; las fechas presentes deben parsear.
func toPatch(in dto.UpdateContractRequest) (entity.ContractPatch, error) {
	var p entity.ContractPatch
	if in.DeveloperID != nil {
		if err := domain.CheckID(domain.FieldDeveloperID, *in.DeveloperID); err != nil {
			return p, err
		}
		p.DeveloperID = in.DeveloperID
	}
	if in.GameID != nil {
		if err := domain.CheckID(domain.FieldGameID, *in.GameID); err != nil {
			return p, err
		}
		p.GameID = in.GameID
	}
	if in.TypeContractID != nil {
		if err := domain.CheckID(domain.FieldTypeContractID, *in.TypeContractID); err != nil {
			return p, err
		}
		p.TypeContractID = in.TypeContractID
	}
	if in.StartDate != nil {
		start, err := domaincontract.ParseDate(*in.StartDate)
		if err != nil {
			return p, err
		}
		p.StartDate = &start
	}
	if in.EndDate.Set {
		p.EndDateSet = true
		if in.EndDate.Valid {
			end, err := domaincontract.ParseDate(in.EndDate.Value)
			if err != nil {
				return p, err
			}
			p.EndDate = &end
		}
	}
	p.Active = in.Active
	return p, nil
}

func endDateString(c entity.Contract) *string {
	if c.EndDate == nil {
		return nil
	}
	s := domaincontract.FormatDate(*c.EndDate)
	return &s
}

// ToResponse proyecta un contrato a su DTO de salida.
func ToResponse(c *entity.Contract) *dto.ContractResponse {
	return &dto.ContractResponse{
		ID:             c.ID,
		DeveloperID:    c.DeveloperID,
		GameID:         c.GameID,
		TypeContractID: c.TypeContractID,
		StartDate:      domaincontract.FormatDate(c.StartDate),
		EndDate:        endDateString(*c),
		Active:         c.Active,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// ToDetailResponse proyecta la vista enriquecida sin exponer documentos anidados completos.
func ToDetailResponse(d *entity.ContractDetail) dto.ContractDetailResponse {
	return dto.ContractDetailResponse{
		ID:               d.ID,
		DeveloperID:      d.DeveloperID,
		GameID:           d.GameID,
		TypeContractID:   d.TypeContractID,
		StartDate:        domaincontract.FormatDate(d.StartDate),
		EndDate:          endDateString(d.Contract),
		Active:           d.Active,
		DeveloperInfo:    dto.DeveloperInfo{ID: d.Developer.ID, Name: d.Developer.Name},
		GameInfo:         dto.GameInfo{ID: d.Game.ID, Title: d.Game.Title},
		TypeContractInfo: dto.ContractTypeInfo{ID: d.ContractType.ID, Description: d.ContractType.Description},
	}
}
