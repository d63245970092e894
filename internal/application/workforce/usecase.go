// Package workforce casos de uso de gestión de personal: alta de empleados
// con credenciales, rotación de credenciales y vistas agregadas.
package workforce

import (
	"context"
	"fmt"

	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// OnboardRequest datos de entrada del alta de empleado. Password viaja en
// claro hasta acá y nunca más abajo: solo el hash llega a la persistencia.
type OnboardRequest struct {
	FirstName    string
	LastName     string
	Phone        string
	NIC          string
	SalesGroupID *string
	Username     string
	Password     string
}

// UseCase casos de uso de personal sobre el contrato de persistencia.
type UseCase struct {
	store repository.Store
}

// NewUseCase construye el caso de uso de personal.
func NewUseCase(store repository.Store) *UseCase {
	return &UseCase{store: store}
}

// OnboardEmployee valida la entrada, hashea el password con bcrypt y delega
// el alta transaccional al backend. Devuelve solo el empleado creado; las
// filas dependientes (credenciales, licencias, salario, sync) se consultan
// por sus operaciones propias.
func (uc *UseCase) OnboardEmployee(ctx context.Context, orgID string, in OnboardRequest) (*entity.Employee, error) {
	if orgID == "" || in.FirstName == "" || in.NIC == "" || in.Username == "" {
		return nil, fmt.Errorf("onboard: %w", domain.ErrInvalidInput)
	}
	if len(in.Password) < 8 {
		return nil, fmt.Errorf("onboard: password demasiado corto: %w", domain.ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return uc.store.OnboardEmployee(ctx, orgID, repository.OnboardEmployeeInput{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        in.Phone,
		NIC:          in.NIC,
		SalesGroupID: in.SalesGroupID,
		Username:     in.Username,
		PasswordHash: string(hash),
	})
}

// RotateCredentials reemplaza usuario y password del empleado.
func (uc *UseCase) RotateCredentials(ctx context.Context, orgID, employeeID, username, password string) error {
	if len(password) < 8 {
		return fmt.Errorf("rotate credentials: password demasiado corto: %w", domain.ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return uc.store.RotateCredentials(ctx, orgID, employeeID, username, string(hash))
}

// EmployeeProfile vista agregada del empleado (snapshot consistente del backend).
func (uc *UseCase) EmployeeProfile(ctx context.Context, orgID, employeeID string) (*repository.EmployeeProfileView, error) {
	return uc.store.EmployeeProfile(ctx, orgID, employeeID)
}

// SalesGroupDetail vista agregada del grupo de ventas.
func (uc *UseCase) SalesGroupDetail(ctx context.Context, orgID, groupID string) (*repository.SalesGroupDetailView, error) {
	return uc.store.SalesGroupDetail(ctx, orgID, groupID)
}
