package postgres

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/tienda-api/internal/domain"
)

func TestContractWriteError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"par activo", &pgconn.PgError{Code: "23505", ConstraintName: constraintActivePair}, domain.ErrDuplicateActiveContract},
		{"rango de fechas", &pgconn.PgError{Code: "23514", ConstraintName: constraintDateRange}, domain.ErrInvalidDateRange},
		{"clave foránea", &pgconn.PgError{Code: "23503", ConstraintName: "contracts_game_id_fkey"}, domain.ErrInvalidReference},
		{"envuelto", fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23505", ConstraintName: constraintActivePair}), domain.ErrDuplicateActiveContract},
		{"otro", errors.New("conexión rechazada"), domain.ErrStoreUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, contractWriteError("insert contract", tt.err), tt.want)
		})
	}
}

func TestPurchaseWriteError(t *testing.T) {
	err := purchaseWriteError("insert purchase", &pgconn.PgError{Code: "23505", ConstraintName: constraintActivePurchase})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	err = purchaseWriteError("insert purchase", &pgconn.PgError{Code: "23505", ConstraintName: "purchases_pkey"})
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestMigrations_DefinenConstraints(t *testing.T) {
	sql, err := migrationsFS.ReadFile("migrations/001_init.sql")
	assert.NoError(t, err)
	for _, name := range []string{constraintActivePair, constraintDateRange, constraintActivePurchase} {
		assert.True(t, strings.Contains(string(sql), name), name)
	}
	assert.Contains(t, string(sql), "WHERE active")
}
