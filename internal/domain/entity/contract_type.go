package entity

import "time"

// ContractType catálogo de tipos de contrato (distribución, exclusividad, ...).
type ContractType struct {
	ID          string
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
