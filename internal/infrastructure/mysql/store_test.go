package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────────────────────────────────
// El backend MySQL comparte el contrato del backend PostgreSQL pero su
// setClause ordena distinto: los argumentos del SET van primero y los del
// WHERE al final, por el orden posicional de los placeholders ?.
// ──────────────────────────────────────────────────────────────────────────────

func TestSetClause_ArgumentosDelWhereAlFinal(t *testing.T) {
	set := newSetClause()

	name := "Laura"
	phone := "3001234567"
	addSet(set, "first_name", &name)
	addSet(set, "phone", &phone)

	require.False(t, set.empty())
	assert.Equal(t, "first_name = ?, phone = ?", set.sql())
	assert.Equal(t, []any{"Laura", "3001234567", "org-1", "emp-1"}, set.withWhere("org-1", "emp-1"))
}

func TestSetClause_CamposNilNoAparecen(t *testing.T) {
	set := newSetClause()

	var nada *string
	addSet(set, "name", nada)

	assert.True(t, set.empty())
}

func TestSetClause_AddNullSinArgumento(t *testing.T) {
	set := newSetClause()

	status := "ON_LEAVE"
	addSet(set, "status", &status)
	set.addNull("sales_group_id")

	assert.Equal(t, "status = ?, sales_group_id = NULL", set.sql())
	assert.Equal(t, []any{"ON_LEAVE", "org-1"}, set.withWhere("org-1"))
}

func TestInPlaceholders(t *testing.T) {
	assert.Equal(t, "", inPlaceholders(0))
	assert.Equal(t, "?", inPlaceholders(1))
	assert.Equal(t, "?, ?, ?", inPlaceholders(3))
}

func TestIsUniqueViolation(t *testing.T) {
	dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry '123' for key 'uq_employee_nic'"}
	assert.True(t, isUniqueViolation(dup))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", dup)), "envuelto")
	assert.False(t, isUniqueViolation(&mysql.MySQLError{Number: 1452}))
	assert.False(t, isUniqueViolation(nil))
}

func TestIsConstraintViolation(t *testing.T) {
	for _, n := range []uint16{1451, 1452, 3819} {
		assert.True(t, isConstraintViolation(&mysql.MySQLError{Number: n}), n)
	}
	assert.False(t, isConstraintViolation(&mysql.MySQLError{Number: 1062}))
	assert.False(t, isConstraintViolation(nil))
}

func TestFinish_MapeoDeErrores(t *testing.T) {
	s := &Store{log: logger.Nop()}

	require.NoError(t, s.finish("Op", nil))

	assert.ErrorIs(t, s.finish("GetX", sql.ErrNoRows), domain.ErrNotFound)

	dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry '123' for key 'uq_employee_nic'"}
	err := s.finish("AddX", dup)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.NotContains(t, err.Error(), "123", "el valor en conflicto no debe filtrarse")

	assert.ErrorIs(t, s.finish("AddSale", &mysql.MySQLError{Number: 1452}), domain.ErrConstraint)
}

func TestFinish_ErroresDeDominioPasanIntactos(t *testing.T) {
	s := &Store{log: logger.Nop()}

	for _, domErr := range []error{
		domain.ErrNotFound, domain.ErrDuplicate, domain.ErrConstraint,
		domain.ErrInvalidInput, domain.ErrInvalidStatus,
	} {
		assert.ErrorIs(t, s.finish("Op", domErr), domErr)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Toda operación de alta exige el id de organización como argumento explícito
// y separado; no se acepta que viaje únicamente dentro de la entidad. Un id
// vacío se rechaza antes de tocar la base.
// ──────────────────────────────────────────────────────────────────────────────

func TestAltas_OrganizacionVaciaRechazada(t *testing.T) {
	s := &Store{log: logger.Nop()}
	ctx := context.Background()

	_, err := s.AddItem(ctx, "", &entity.Item{Name: "caja surtida"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = s.AddClient(ctx, "", &entity.Client{Name: "Pedro Gómez"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = s.AddSale(ctx, "", &entity.Sale{Units: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = s.AddSalesGroup(ctx, "", &entity.SalesGroup{Name: "zona norte"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = s.AddOrganizationPayment(ctx, "", &entity.OrganizationPayment{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAltas_OrganizacionDeLaEntidadNoManda(t *testing.T) {
	s := &Store{log: logger.Nop()}
	ctx := context.Background()

	// Rellenar OrganizationID en la entidad no sustituye al argumento.
	_, err := s.AddItem(ctx, "", &entity.Item{OrganizationID: "org-ajena", Name: "caja"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
