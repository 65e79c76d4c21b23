package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/tienda-api/internal/domain"
)

// Nombres de constraints del esquema que se traducen a errores de dominio.
const (
	constraintActivePair     = "contracts_active_pair_key"
	constraintDateRange      = "contracts_date_range_chk"
	constraintActivePurchase = "purchases_active_user_game_key"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isCheckViolation verifica si un error es una violación de CHECK (23514).
func isCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23514"
}

// isForeignKeyViolation verifica si un error es una violación de clave foránea (23503).
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

// constraintName devuelve el constraint violado, o "" si no es un error de Postgres.
func constraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// contractWriteError traduce los errores de escritura de contratos.
func contractWriteError(op string, err error) error {
	switch {
	case isUniqueViolation(err) && (constraintName(err) == constraintActivePair || constraintName(err) == ""):
		return domain.ErrDuplicateActiveContract
	case isCheckViolation(err) && constraintName(err) == constraintDateRange:
		return domain.ErrInvalidDateRange
	case isForeignKeyViolation(err):
		return domain.ErrInvalidReference
	default:
		return domain.StoreError(op, err)
	}
}
