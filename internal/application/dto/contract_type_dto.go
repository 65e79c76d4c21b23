package dto

import "time"

// CreateContractTypeRequest entrada para crear un tipo de contrato.
type CreateContractTypeRequest struct {
	Description string `json:"description" validate:"required,min=3,max=50"`
}

// UpdateContractTypeRequest entrada para actualizar un tipo de contrato.
type UpdateContractTypeRequest struct {
	Description *string `json:"description" validate:"omitempty,min=3,max=50"`
	Active      *bool   `json:"active"`
}

// ContractTypeResponse salida de un tipo de contrato.
type ContractTypeResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ContractTypeListResponse lista paginada de tipos de contrato.
type ContractTypeListResponse struct {
	Items []ContractTypeResponse `json:"items"`
	PageResponse
}
