package entity

import "time"

// Contract representa el acuerdo entre un desarrollador y la plataforma para publicar un juego.
// Invariante: a lo sumo un contrato activo por par (DeveloperID, GameID).
type Contract struct {
	ID             string
	DeveloperID    string
	GameID         string
	TypeContractID string
	StartDate      time.Time
	EndDate        *time.Time // nil = sin fecha de fin
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ContractPatch actualización parcial tipada: nil = campo ausente.
// EndDateSet distingue "no enviado" de "borrar la fecha" (EndDateSet && EndDate == nil).
type ContractPatch struct {
	DeveloperID    *string
	GameID         *string
	TypeContractID *string
	StartDate      *time.Time
	EndDate        *time.Time
	EndDateSet     bool
	Active         *bool
}

// IsEmpty indica que el patch no trae ningún campo.
func (p ContractPatch) IsEmpty() bool {
	return p.DeveloperID == nil && p.GameID == nil && p.TypeContractID == nil &&
		p.StartDate == nil && !p.EndDateSet && p.Active == nil
}

// Apply devuelve una copia del contrato con los campos presentes en el patch.
func (p ContractPatch) Apply(c Contract) Contract {
	if p.DeveloperID != nil {
		c.DeveloperID = *p.DeveloperID
	}
	if p.GameID != nil {
		c.GameID = *p.GameID
	}
	if p.TypeContractID != nil {
		c.TypeContractID = *p.TypeContractID
	}
	if p.StartDate != nil {
		c.StartDate = *p.StartDate
	}
	if p.EndDateSet {
		c.EndDate = p.EndDate
	}
	if p.Active != nil {
		c.Active = *p.Active
	}
	return c
}

// ContractDetail vista enriquecida (solo lectura) de un contrato con sus referencias.
type ContractDetail struct {
	Contract
	Developer    DeveloperRef
	Game         GameRef
	ContractType ContractTypeRef
}

// DeveloperRef proyección mínima del desarrollador.
type DeveloperRef struct {
	ID   string
	Name string
}

// GameRef proyección mínima del juego.
type GameRef struct {
	ID    string
	Title string
}

// ContractTypeRef proyección mínima del tipo de contrato.
type ContractTypeRef struct {
	ID          string
	Description string
}
