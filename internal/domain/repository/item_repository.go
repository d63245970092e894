package repository

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia para Item (DIP).
// El id de organización viaja como argumento explícito también en el alta:
// omitirlo es un error de compilación, no un default silencioso.
type ItemRepository interface {
	AddItem(ctx context.Context, orgID string, item *entity.Item) (*entity.Item, error)
	GetItemByID(ctx context.Context, orgID, itemID string) (*entity.Item, error)
	ListItemsByOrganization(ctx context.Context, orgID string) ([]*entity.Item, error)
	UpdateItemByID(ctx context.Context, orgID, itemID string, patch entity.ItemPatch) (*entity.Item, error)
	DeleteItemByID(ctx context.Context, orgID, itemID string) (*entity.Item, error)
}
