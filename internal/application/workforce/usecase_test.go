package workforce

import (
	"context"
	"testing"

	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakeStore implementa solo las operaciones que el caso de uso toca; el resto
// del contrato viene del embed y entra en pánico si algo inesperado lo llama.
type fakeStore struct {
	repository.Store

	gotOrgID   string
	gotOnboard repository.OnboardEmployeeInput
	gotRotate  struct{ username, hash string }
}

func (f *fakeStore) OnboardEmployee(_ context.Context, orgID string, in repository.OnboardEmployeeInput) (*entity.Employee, error) {
	f.gotOrgID = orgID
	f.gotOnboard = in
	return &entity.Employee{
		ID:             "emp-1",
		OrganizationID: orgID,
		FirstName:      in.FirstName,
		NIC:            in.NIC,
		Status:         entity.EmployeeNotReported,
	}, nil
}

func (f *fakeStore) RotateCredentials(_ context.Context, orgID, employeeID, username, passwordHash string) error {
	f.gotRotate.username = username
	f.gotRotate.hash = passwordHash
	return nil
}

func TestOnboardEmployee_HasheaElPassword(t *testing.T) {
	st := &fakeStore{}
	uc := NewUseCase(st)

	emp, err := uc.OnboardEmployee(context.Background(), "org-1", OnboardRequest{
		FirstName: "Laura",
		NIC:       "900123",
		Username:  "laura.v",
		Password:  "super-secreto",
	})
	require.NoError(t, err)
	assert.Equal(t, "org-1", st.gotOrgID)
	assert.Equal(t, entity.EmployeeNotReported, emp.Status)

	// El password en claro nunca baja a la persistencia: solo el hash bcrypt.
	assert.NotEqual(t, "super-secreto", st.gotOnboard.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(st.gotOnboard.PasswordHash), []byte("super-secreto")))
}

func TestOnboardEmployee_RechazaEntradaInvalida(t *testing.T) {
	uc := NewUseCase(&fakeStore{})
	ctx := context.Background()

	casos := []OnboardRequest{
		{NIC: "900123", Username: "u", Password: "12345678"},              // sin nombre
		{FirstName: "Laura", Username: "u", Password: "12345678"},        // sin NIC
		{FirstName: "Laura", NIC: "900123", Password: "12345678"},        // sin username
		{FirstName: "Laura", NIC: "900123", Username: "u", Password: ""}, // password corto
	}
	for _, in := range casos {
		_, err := uc.OnboardEmployee(ctx, "org-1", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}

	_, err := uc.OnboardEmployee(ctx, "", OnboardRequest{
		FirstName: "Laura", NIC: "900123", Username: "u", Password: "12345678",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin organización")
}

func TestRotateCredentials_HasheaElPassword(t *testing.T) {
	st := &fakeStore{}
	uc := NewUseCase(st)

	err := uc.RotateCredentials(context.Background(), "org-1", "emp-1", "nuevo.user", "otro-secreto")
	require.NoError(t, err)
	assert.Equal(t, "nuevo.user", st.gotRotate.username)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(st.gotRotate.hash), []byte("otro-secreto")))
}

func TestRotateCredentials_PasswordCorto(t *testing.T) {
	uc := NewUseCase(&fakeStore{})
	err := uc.RotateCredentials(context.Background(), "org-1", "emp-1", "u", "corto")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
