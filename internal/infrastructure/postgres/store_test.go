package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────────────────────────────────
// finish traduce errores del driver a errores de dominio. El detalle del
// driver en duplicados y constraints no debe cruzar el límite del contrato:
// su mensaje incluye el valor en conflicto.
// ──────────────────────────────────────────────────────────────────────────────

func TestFinish_MapeoDeErrores(t *testing.T) {
	s := &Store{log: logger.Nop()}

	require.NoError(t, s.finish("Op", nil))

	err := s.finish("GetX", pgx.ErrNoRows)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	dup := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", Detail: "Key (nic)=(123) already exists"})
	err = s.finish("AddX", dup)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.NotContains(t, err.Error(), "123", "el valor en conflicto no debe filtrarse")

	fk := &pgconn.PgError{Code: "23503"}
	assert.ErrorIs(t, s.finish("AddSale", fk), domain.ErrConstraint)
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

func TestFinish_ErrorDesconocidoConservaLaCausa(t *testing.T) {
	s := &Store{log: logger.Nop()}

	cause := errors.New("connection refused")
	err := s.finish("Ping", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "Ping")
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
