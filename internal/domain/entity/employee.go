package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de un Employee.
const (
	EmployeeOnField     = "ON_FIELD"
	EmployeeOnLeave     = "ON_LEAVE"
	EmployeeSuspended   = "SUSPENDED"
	EmployeeFired       = "FIRED"
	EmployeeNotReported = "NOT_REPORTED"
)

// Valores por defecto al crear un empleado (flujo de onboarding).
const (
	DefaultLeaveTotal = 3
	DefaultSalaryBase = 30000
)

// Employee pertenece a una Organization y opcionalmente a un SalesGroup.
// Sus filas dependientes (Credentials, LeaveBalance, SalaryProfile, SyncProfile)
// se crean juntas en la misma transacción de onboarding: nunca existe un
// empleado sin ellas, ni ellas sin el empleado.
type Employee struct {
	ID             string
	OrganizationID string
	SalesGroupID   *string // nil = sin grupo; se pone en null al borrar el grupo
	FirstName      string
	LastName       string
	Phone          string
	NIC            string // único dentro de la organización
	Status         string // ver constantes Employee*
	RegisteredAt   time.Time
}

// EmployeePatch actualización parcial de Employee. Solo los campos no-nil se
// escriben. ClearSalesGroup pone SalesGroupID en null explícitamente (nil en
// SalesGroupID significa "no tocar", no "quitar del grupo").
type EmployeePatch struct {
	FirstName       *string
	LastName        *string
	Phone           *string
	NIC             *string
	Status          *string
	SalesGroupID    *string
	ClearSalesGroup bool
}

// ValidEmployeeStatus informa si s pertenece al conjunto cerrado de estados.
func ValidEmployeeStatus(s string) bool {
	switch s {
	case EmployeeOnField, EmployeeOnLeave, EmployeeSuspended, EmployeeFired, EmployeeNotReported:
		return true
	}
	return false
}

// Credentials credenciales de acceso, 1:1 con Employee. Se mutan solo por la
// operación dedicada de rotación (aislada de las actualizaciones generales
// para facilitar la revisión de seguridad).
type Credentials struct {
	EmployeeID     string
	OrganizationID string
	Username       string // único global (login)
	PasswordHash   string // bcrypt, nunca plano después de persistir
}

// LeaveBalance saldo de licencias, 1:1 con Employee.
type LeaveBalance struct {
	EmployeeID     string
	OrganizationID string
	Taken          int
	Total          int // default 3
}

// LeaveBalancePatch actualización parcial del saldo de licencias.
type LeaveBalancePatch struct {
	Taken *int
	Total *int
}

// SalaryProfile perfil salarial, 1:1 con Employee.
type SalaryProfile struct {
	EmployeeID     string
	OrganizationID string
	Base           decimal.Decimal
	CommissionPct  decimal.Decimal // porcentaje de comisión sobre ventas, default 0
}

// SalaryProfilePatch actualización parcial del perfil salarial.
type SalaryProfilePatch struct {
	Base          *decimal.Decimal
	CommissionPct *decimal.Decimal
}

// SalaryRecord desembolso individual de salario (muchos por empleado).
type SalaryRecord struct {
	ID             string
	OrganizationID string
	EmployeeID     string
	Amount         decimal.Decimal
	PaidAt         time.Time
}

// SyncProfile marca de última sincronización del cliente offline, 1:1 con Employee.
type SyncProfile struct {
	EmployeeID     string
	OrganizationID string
	LastSyncedAt   time.Time
}
