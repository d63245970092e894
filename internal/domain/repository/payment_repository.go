package repository

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// OrganizationPaymentRepository define el puerto de persistencia para los
// pagos de suscripción de la propia organización (DIP).
type OrganizationPaymentRepository interface {
	AddOrganizationPayment(ctx context.Context, orgID string, payment *entity.OrganizationPayment) (*entity.OrganizationPayment, error)
	ListOrganizationPaymentsByOrganization(ctx context.Context, orgID string) ([]*entity.OrganizationPayment, error)
	UpdateOrganizationPaymentStatus(ctx context.Context, orgID, paymentID, status string) (*entity.OrganizationPayment, error)
}
