package dto

import "time"

// CreateContractRequest entrada para crear un contrato.
type CreateContractRequest struct {
	DeveloperID    string  `json:"developer_id" validate:"required"`
	GameID         string  `json:"game_id" validate:"required"`
	TypeContractID string  `json:"type_contract_id" validate:"required"`
	StartDate      string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate        *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateContractRequest actualización parcial: solo se validan y aplican los campos presentes.
// end_date: null borra la fecha de fin.
type UpdateContractRequest struct {
	DeveloperID    *string        `json:"developer_id"`
	GameID         *string        `json:"game_id"`
	TypeContractID *string        `json:"type_contract_id"`
	StartDate      *string        `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate        NullableString `json:"end_date"`
	Active         *bool          `json:"active"`
}

// ContractResponse salida de un contrato.
type ContractResponse struct {
	ID             string    `json:"id"`
	DeveloperID    string    `json:"developer_id"`
	GameID         string    `json:"game_id"`
	TypeContractID string    `json:"type_contract_id"`
	StartDate      string    `json:"start_date"`
	EndDate        *string   `json:"end_date"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ContractListResponse lista paginada de contratos.
type ContractListResponse struct {
	Items []ContractResponse `json:"items"`
	PageResponse
}

// DeveloperInfo proyección del desarrollador en la vista enriquecida.
type DeveloperInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// GameInfo proyección del juego en la vista enriquecida.
type GameInfo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ContractTypeInfo proyección del tipo de contrato en la vista enriquecida.
type ContractTypeInfo struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// ContractDetailResponse contrato con sus referencias desnormalizadas.
type ContractDetailResponse struct {
	ID               string           `json:"id"`
	DeveloperID      string           `json:"developer_id"`
	GameID           string           `json:"game_id"`
	TypeContractID   string           `json:"type_contract_id"`
	StartDate        string           `json:"start_date"`
	EndDate          *string          `json:"end_date"`
	Active           bool             `json:"active"`
	DeveloperInfo    DeveloperInfo    `json:"developer_info"`
	GameInfo         GameInfo         `json:"game_info"`
	TypeContractInfo ContractTypeInfo `json:"type_contract_info"`
}

// ContractDetailListResponse página de la vista enriquecida.
type ContractDetailListResponse struct {
	Items []ContractDetailResponse `json:"items"`
	PageResponse
}
