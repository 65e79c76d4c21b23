package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// Contratos.
	ErrMalformedID             = errors.New("identificador con formato inválido")
	ErrInvalidReference        = errors.New("referencia inválida")
	ErrInvalidDateRange        = errors.New("la fecha final no puede ser anterior a la fecha de inicio")
	ErrDuplicateActiveContract = errors.New("ya existe un contrato activo para este desarrollador y juego")

	// ErrStoreUnavailable envuelve cualquier fallo de infraestructura del almacenamiento.
	ErrStoreUnavailable = errors.New("almacenamiento no disponible")
)

// Campos de referencia de un contrato.
const (
	FieldDeveloperID    = "developer_id"
	FieldGameID         = "game_id"
	FieldTypeContractID = "type_contract_id"
)

// InvalidReferenceError indica qué referencia de un contrato no es válida
// (no existe, está inactiva o, para el juego, no pertenece al desarrollador).
type InvalidReferenceError struct {
	Field  string
	Reason string
}

func (e *InvalidReferenceError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidReference.Error(), e.Field)
	}
	return fmt.Sprintf("%s: %s (%s)", ErrInvalidReference.Error(), e.Field, e.Reason)
}

// Is permite usar errors.Is(err, ErrInvalidReference).
func (e *InvalidReferenceError) Is(target error) bool {
	return target == ErrInvalidReference
}

// InvalidRef construye un InvalidReferenceError.
func InvalidRef(field, reason string) error {
	return &InvalidReferenceError{Field: field, Reason: reason}
}

// MalformedIDError indica qué campo trae un identificador mal formado.
type MalformedIDError struct {
	Field string
	Value string
}

func (e *MalformedIDError) Error() string {
	return fmt.Sprintf("%s: %s=%q", ErrMalformedID.Error(), e.Field, e.Value)
}

// Is permite usar errors.Is(err, ErrMalformedID).
func (e *MalformedIDError) Is(target error) bool {
	return target == ErrMalformedID
}

// StoreError envuelve un error de infraestructura con la operación que falló.
// Satisface errors.Is(err, ErrStoreUnavailable) y conserva el error original.
func StoreError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
}
