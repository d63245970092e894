package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────────────────────────────────
// setClause arma el SET de los UPDATEs parciales. Los placeholders deben
// numerarse después de los argumentos del WHERE ($1, $2 reservados) y los
// campos nil del patch no deben aparecer en el SQL.
// ──────────────────────────────────────────────────────────────────────────────

func TestSetClause_NumeracionDespuesDelWhere(t *testing.T) {
	set, args := newSetClause("org-1", "emp-1")

	name := "Laura"
	phone := "3001234567"
	addSet(set, "first_name", &name)
	addSet(set, "phone", &phone)

	require.False(t, set.empty())
	assert.Equal(t, "first_name = $3, phone = $4", set.sql())
	assert.Equal(t, []any{"org-1", "emp-1", "Laura", "3001234567"}, args())
}

func TestSetClause_CamposNilNoAparecen(t *testing.T) {
	set, args := newSetClause("org-1", "id-1")

	var nada *string
	addSet(set, "name", nada)

	assert.True(t, set.empty())
	assert.Equal(t, []any{"org-1", "id-1"}, args())
}

func TestSetClause_AddNullSinArgumento(t *testing.T) {
	set, args := newSetClause("org-1", "emp-1")

	status := "ON_LEAVE"
	addSet(set, "status", &status)
	set.addNull("sales_group_id")

	assert.Equal(t, "status = $3, sales_group_id = NULL", set.sql())
	assert.Len(t, args(), 3, "NULL no consume placeholder")
}

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505"}
	assert.True(t, isUniqueViolation(dup))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert employee: %w", dup)), "envuelto")

	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("otra cosa")))
	assert.False(t, isUniqueViolation(nil))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, isForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	assert.True(t, isForeignKeyViolation(&pgconn.PgError{Code: "23514"}), "CHECK también es constraint")
	assert.False(t, isForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isForeignKeyViolation(nil))
}
