package entity_test

import (
	"testing"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

// ──────────────────────────────────────────────────────────────────────────────
// Los estados son conjuntos cerrados: cualquier valor fuera del conjunto debe
// rechazarse en la capa de dominio antes de llegar a la base. Estos tests
// fijan los conjuntos para que agregar o quitar un estado sea un cambio
// explícito y no un accidente.
// ──────────────────────────────────────────────────────────────────────────────

func TestValidOrganizationStatus(t *testing.T) {
	for _, s := range []string{"ACTIVE", "DEACTIVATED", "SUSPENDED", "TRIAL"} {
		assert.True(t, entity.ValidOrganizationStatus(s), s)
	}
	assert.False(t, entity.ValidOrganizationStatus("active"), "case sensitive")
	assert.False(t, entity.ValidOrganizationStatus(""))
	assert.False(t, entity.ValidOrganizationStatus("DELETED"))
}

func TestValidSubscriptionStatus(t *testing.T) {
	assert.True(t, entity.ValidSubscriptionStatus(entity.SubscriptionValid))
	assert.True(t, entity.ValidSubscriptionStatus(entity.SubscriptionExpired))
	assert.False(t, entity.ValidSubscriptionStatus("PENDING"))
}

func TestValidEmployeeStatus(t *testing.T) {
	for _, s := range []string{"ON_FIELD", "ON_LEAVE", "SUSPENDED", "FIRED", "NOT_REPORTED"} {
		assert.True(t, entity.ValidEmployeeStatus(s), s)
	}
	assert.False(t, entity.ValidEmployeeStatus("RETIRED"))
	assert.False(t, entity.ValidEmployeeStatus(""))
}

func TestValidClientStatus(t *testing.T) {
	for _, s := range []string{"ACTIVE", "DEACTIVATED", "UNVERIFIED"} {
		assert.True(t, entity.ValidClientStatus(s), s)
	}
	assert.False(t, entity.ValidClientStatus("VERIFIED"))
}

func TestValidPaymentStatus(t *testing.T) {
	for _, s := range []string{"PENDING", "PAID", "VERIFIED", "REFUNDED"} {
		assert.True(t, entity.ValidPaymentStatus(s), s)
	}
	assert.False(t, entity.ValidPaymentStatus("CANCELLED"))
}

func TestValidActivityType(t *testing.T) {
	// Muestras representativas de cada familia del catálogo.
	for _, s := range []string{
		entity.ActLogin, entity.ActCheckIn, entity.ActLeaveRequested,
		entity.ActSaleCreated, entity.ActPaymentVerified, entity.ActClientVisit,
		entity.ActGroupAssigned, entity.ActSyncCompleted, entity.ActSalaryDisbursed,
	} {
		assert.True(t, entity.ValidActivityType(s), s)
	}
	assert.False(t, entity.ValidActivityType("UNKNOWN_EVENT"))
	assert.False(t, entity.ValidActivityType(""))
}

func TestValidActivityStatus(t *testing.T) {
	for _, s := range []string{"ACTIVE", "ARCHIVED", "DELETED"} {
		assert.True(t, entity.ValidActivityStatus(s), s)
	}
	assert.False(t, entity.ValidActivityStatus("HIDDEN"))
}

func TestDefaultsDeOnboarding(t *testing.T) {
	// El empleado recién creado arranca con 0 de 3 licencias tomadas y un
	// salario base sin comisión; ambos backends insertan estos valores.
	assert.Equal(t, 3, entity.DefaultLeaveTotal)
	assert.Equal(t, 30000, entity.DefaultSalaryBase)
}

func TestEmployeePatch_SemanticaDeNil(t *testing.T) {
	// nil en SalesGroupID significa "no tocar"; quitar del grupo es un flag aparte.
	var p entity.EmployeePatch
	assert.Nil(t, p.SalesGroupID)
	assert.False(t, p.ClearSalesGroup)
}
