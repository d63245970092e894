package repository

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// OrganizationRepository define el puerto de persistencia para Organization (DIP).
// El id de organización viaja siempre como argumento explícito y separado:
// omitirlo debe ser un defecto visible en revisión de código, no un default silencioso.
type OrganizationRepository interface {
	AddOrganization(ctx context.Context, org *entity.Organization) (*entity.Organization, error)
	GetOrganizationByID(ctx context.Context, orgID string) (*entity.Organization, error)
	UpdateOrganizationByID(ctx context.Context, orgID string, patch entity.OrganizationPatch) (*entity.Organization, error)
}
