package dto

import (
	"bytes"
	"encoding/json"
)

// Valores de paginación.
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageRequest paginación para listados (skip/limit).
type PageRequest struct {
	Skip  int `query:"skip"`
	Limit int `query:"limit"`
}

// Normalize aplica valores por defecto y el tope máximo de página.
// maxLimit <= 0 usa MaxLimit.
func (p PageRequest) Normalize(maxLimit int) PageRequest {
	if maxLimit <= 0 {
		maxLimit = MaxLimit
	}
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	return p
}

// PageResponse metadatos de página en respuestas (se aplanan en el JSON del listado).
type PageResponse struct {
	Total int64 `json:"total"`
	Skip  int   `json:"skip"`
	Limit int   `json:"limit"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// MessageResponse respuesta simple de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}

// NullableString distingue campo ausente, null explícito y valor.
// Set=false: ausente. Set=true y Valid=false: null. Set=true y Valid=true: Value.
type NullableString struct {
	Set   bool
	Valid bool
	Value string
}

// UnmarshalJSON solo se invoca cuando el campo está presente (incluido null).
func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Valid = false
		n.Value = ""
		return nil
	}
	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// MarshalJSON serializa null cuando no hay valor.
func (n NullableString) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}
