package postgres

import (
	"testing"
	"time"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────────────────────────────────
// La fila de empleado que inserta el onboarding nace con los valores por
// defecto del dominio. Las filas dependientes (credenciales, licencias,
// salario, sync) se insertan en la misma transacción: o entran todas o no
// entra ninguna.
// ──────────────────────────────────────────────────────────────────────────────

func TestNewEmployee_ValoresPorDefecto(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	grupo := "grp-1"
	emp := newEmployee("org-1", repository.OnboardEmployeeInput{
		FirstName:    "Laura",
		LastName:     "Vélez",
		Phone:        "3001234567",
		NIC:          "900123",
		SalesGroupID: &grupo,
	}, now)

	require.NotEmpty(t, emp.ID, "el id se genera en el alta")
	assert.Equal(t, "org-1", emp.OrganizationID)
	assert.Equal(t, "Laura", emp.FirstName)
	assert.Equal(t, "900123", emp.NIC)
	assert.Equal(t, entity.EmployeeNotReported, emp.Status)
	assert.Equal(t, now, emp.RegisteredAt)
	require.NotNil(t, emp.SalesGroupID)
	assert.Equal(t, "grp-1", *emp.SalesGroupID)
}

func TestNewEmployee_SinGrupoQuedaNil(t *testing.T) {
	emp := newEmployee("org-1", repository.OnboardEmployeeInput{NIC: "900123"}, time.Now())
	assert.Nil(t, emp.SalesGroupID)
}

// ──────────────────────────────────────────────────────────────────────────────
// La vista agregada del grupo filtra ventas y saldos con los ids de los
// miembros, una consulta batcheada por colección.
// ──────────────────────────────────────────────────────────────────────────────

func TestMemberIDs_ConservaElOrden(t *testing.T) {
	members := []*entity.Employee{{ID: "e1"}, {ID: "e2"}, {ID: "e3"}}
	assert.Equal(t, []string{"e1", "e2", "e3"}, memberIDs(members))
	assert.Empty(t, memberIDs(nil))
}
