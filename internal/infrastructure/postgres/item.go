package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

const itemColumns = `id, organization_id, name, stock_units, created_at`

// AddItem persiste un artículo en la organización indicada.
func (s *Store) AddItem(ctx context.Context, orgID string, item *entity.Item) (*entity.Item, error) {
	const op = "AddItem"
	if orgID == "" {
		return nil, s.finish(op, domain.ErrInvalidInput)
	}
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.OrganizationID = orgID
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO items (`+itemColumns+`)
		VALUES ($1, $2, $3, $4, $5)`,
		item.ID, item.OrganizationID, item.Name, item.StockUnits, item.CreatedAt,
	)
	if err != nil {
		return nil, s.finish(op, err)
	}
	return item, s.finish(op, nil)
}

// GetItemByID obtiene un artículo.
func (s *Store) GetItemByID(ctx context.Context, orgID, itemID string) (*entity.Item, error) {
	const op = "GetItemByID"
	it, err := scanItem(s.pool.QueryRow(ctx,
		`SELECT `+itemColumns+` FROM items WHERE organization_id = $1 AND id = $2`,
		orgID, itemID))
	if err != nil {
		return nil, s.finish(op, err)
	}
	return it, s.finish(op, nil)
}

// ListItemsByOrganization devuelve los artículos de la organización.
func (s *Store) ListItemsByOrganization(ctx context.Context, orgID string) ([]*entity.Item, error) {
	const op = "ListItemsByOrganization"
	rows, err := s.pool.Query(ctx,
		`SELECT `+itemColumns+` FROM items WHERE organization_id = $1 ORDER BY name`,
		orgID)
	if err != nil {
		return nil, s.finish(op, err)
	}
	defer rows.Close()

	var list []*entity.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, s.finish(op, err)
		}
		list = append(list, it)
	}
	return list, s.finish(op, rows.Err())
}

// UpdateItemByID aplica una actualización parcial.
func (s *Store) UpdateItemByID(ctx context.Context, orgID, itemID string, patch entity.ItemPatch) (*entity.Item, error) {
	const op = "UpdateItemByID"
	set, args := newSetClause(orgID, itemID)
	addSet(set, "name", patch.Name)
	addSet(set, "stock_units", patch.StockUnits)
	if set.empty() {
		return s.GetItemByID(ctx, orgID, itemID)
	}
	query := fmt.Sprintf(`UPDATE items SET %s WHERE organization_id = $1 AND id = $2 RETURNING `+itemColumns, set.sql())
	it, err := scanItem(s.pool.QueryRow(ctx, query, args()...))
	if err != nil {
		return nil, s.finish(op, err)
	}
	return it, s.finish(op, nil)
}

// DeleteItemByID borra un artículo y devuelve la fila borrada.
func (s *Store) DeleteItemByID(ctx context.Context, orgID, itemID string) (*entity.Item, error) {
	const op = "DeleteItemByID"
	it, err := scanItem(s.pool.QueryRow(ctx,
		`DELETE FROM items WHERE organization_id = $1 AND id = $2 RETURNING `+itemColumns,
		orgID, itemID))
	if err != nil {
		return nil, s.finish(op, err)
	}
	return it, s.finish(op, nil)
}

func scanItem(row rowScanner) (*entity.Item, error) {
	var it entity.Item
	err := row.Scan(&it.ID, &it.OrganizationID, &it.Name, &it.StockUnits, &it.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &it, nil
}
