package repository

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client y sus pagos (DIP).
type ClientRepository interface {
	AddClient(ctx context.Context, orgID string, client *entity.Client) (*entity.Client, error)
	GetClientByID(ctx context.Context, orgID, clientID string) (*entity.Client, error)
	ListClientsByOrganization(ctx context.Context, orgID string) ([]*entity.Client, error)
	UpdateClientByID(ctx context.Context, orgID, clientID string, patch entity.ClientPatch) (*entity.Client, error)
	DeleteClientByID(ctx context.Context, orgID, clientID string) (*entity.Client, error)

	AddClientPayment(ctx context.Context, orgID string, payment *entity.ClientPayment) (*entity.ClientPayment, error)
	GetClientPaymentByID(ctx context.Context, orgID, paymentID string) (*entity.ClientPayment, error)
	ListClientPaymentsByClient(ctx context.Context, orgID, clientID string) ([]*entity.ClientPayment, error)
	UpdateClientPaymentByID(ctx context.Context, orgID, paymentID string, patch entity.ClientPaymentPatch) (*entity.ClientPayment, error)
}
