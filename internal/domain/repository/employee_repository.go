package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// OnboardEmployeeInput entrada del flujo de onboarding. El hash de la
// contraseña llega ya calculado; este contrato no conoce contraseñas planas.
type OnboardEmployeeInput struct {
	FirstName    string
	LastName     string
	Phone        string
	NIC          string
	SalesGroupID *string
	Username     string
	PasswordHash string
}

// EmployeeRepository define el puerto de persistencia para Employee y sus
// filas dependientes (DIP).
//
// OnboardEmployee es transaccional de punta a punta: empleado + credenciales +
// saldo de licencias + perfil salarial + perfil de sync se insertan juntos o
// no se inserta nada. Devuelve solo la fila creada, no la lista completa de
// empleados de la organización (decisión documentada en DESIGN.md).
type EmployeeRepository interface {
	OnboardEmployee(ctx context.Context, orgID string, in OnboardEmployeeInput) (*entity.Employee, error)
	GetEmployeeByID(ctx context.Context, orgID, employeeID string) (*entity.Employee, error)
	ListEmployeesByOrganization(ctx context.Context, orgID string) ([]*entity.Employee, error)
	UpdateEmployeeByID(ctx context.Context, orgID, employeeID string, patch entity.EmployeePatch) (*entity.Employee, error)
	// DeleteEmployeeByID borra el empleado y todas sus filas dependientes en
	// una transacción; devuelve la fila borrada.
	DeleteEmployeeByID(ctx context.Context, orgID, employeeID string) (*entity.Employee, error)

	// RotateCredentials operación dedicada (aislada del update general por revisión de seguridad).
	RotateCredentials(ctx context.Context, orgID, employeeID, username, passwordHash string) error

	GetLeaveBalance(ctx context.Context, orgID, employeeID string) (*entity.LeaveBalance, error)
	UpdateLeaveBalance(ctx context.Context, orgID, employeeID string, patch entity.LeaveBalancePatch) (*entity.LeaveBalance, error)

	GetSalaryProfile(ctx context.Context, orgID, employeeID string) (*entity.SalaryProfile, error)
	UpdateSalaryProfile(ctx context.Context, orgID, employeeID string, patch entity.SalaryProfilePatch) (*entity.SalaryProfile, error)
	AddSalaryRecord(ctx context.Context, orgID string, rec *entity.SalaryRecord) (*entity.SalaryRecord, error)
	ListSalaryRecordsByMonth(ctx context.Context, orgID, employeeID string, year, month int) ([]*entity.SalaryRecord, error)

	// UpsertAttendance crea o acumula los contadores del período (year, month).
	UpsertAttendance(ctx context.Context, orgID string, att *entity.Attendance) (*entity.Attendance, error)
	GetAttendance(ctx context.Context, orgID, employeeID string, year, month int) (*entity.Attendance, error)

	AddActivity(ctx context.Context, orgID string, act *entity.Activity) (*entity.Activity, error)
	ListActivitiesByEmployee(ctx context.Context, orgID, employeeID string, limit int) ([]*entity.Activity, error)

	TouchSyncProfile(ctx context.Context, orgID, employeeID string, at time.Time) (*entity.SyncProfile, error)

	// EmployeeProfile vista agregada consistente (una transacción/snapshot).
	EmployeeProfile(ctx context.Context, orgID, employeeID string) (*EmployeeProfileView, error)
}

// EmployeeProfileView snapshot agregado de un empleado con sus colecciones
// dependientes, armado dentro de una sola transacción.
type EmployeeProfileView struct {
	Employee      *entity.Employee
	Username      string // de Credentials; el hash nunca sale en la vista
	LeaveBalance  *entity.LeaveBalance
	SalaryProfile *entity.SalaryProfile
	Attendance    *entity.Attendance // período actual, nil si aún no hay fila
	Activities    []*entity.Activity
	Sales         []*entity.Sale
}
