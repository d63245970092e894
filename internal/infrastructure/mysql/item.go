package mysql

import (
	"context"
	"database/sql"
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
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO items (`+itemColumns+`)
		VALUES (?, ?, ?, ?, ?)`,
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
	it, err := getItem(ctx, s.db, orgID, itemID)
	if err != nil {
		return nil, s.finish(op, err)
	}
	return it, s.finish(op, nil)
}

// ListItemsByOrganization devuelve los artículos de la organización.
func (s *Store) ListItemsByOrganization(ctx context.Context, orgID string) ([]*entity.Item, error) {
	const op = "ListItemsByOrganization"
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE organization_id = ? ORDER BY name`,
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

// UpdateItemByID aplica una actualización parcial (update + re-lectura en una tx).
func (s *Store) UpdateItemByID(ctx context.Context, orgID, itemID string, patch entity.ItemPatch) (*entity.Item, error) {
	const op = "UpdateItemByID"
	set := newSetClause()
	addSet(set, "name", patch.Name)
	addSet(set, "stock_units", patch.StockUnits)
	if set.empty() {
		return s.GetItemByID(ctx, orgID, itemID)
	}
	var it *entity.Item
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		query := fmt.Sprintf(`UPDATE items SET %s WHERE organization_id = ? AND id = ?`, set.sql())
		if _, err := tx.ExecContext(ctx, query, set.withWhere(orgID, itemID)...); err != nil {
			return err
		}
		var err error
		it, err = getItem(ctx, tx, orgID, itemID)
		return err
	})
	if err != nil {
		return nil, s.finish(op, err)
	}
	return it, s.finish(op, nil)
}

// DeleteItemByID borra un artículo y devuelve la fila borrada (lectura +
// borrado en una tx, MySQL no soporta DELETE ... RETURNING).
func (s *Store) DeleteItemByID(ctx context.Context, orgID, itemID string) (*entity.Item, error) {
	const op = "DeleteItemByID"
	var it *entity.Item
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		it, err = getItem(ctx, tx, orgID, itemID)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`DELETE FROM items WHERE organization_id = ? AND id = ?`,
			orgID, itemID)
		return err
	})
	if err != nil {
		return nil, s.finish(op, err)
	}
	return it, s.finish(op, nil)
}

func getItem(ctx context.Context, q querier, orgID, itemID string) (*entity.Item, error) {
	return scanItem(q.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE organization_id = ? AND id = ?`,
		orgID, itemID))
}

func scanItem(row rowScanner) (*entity.Item, error) {
	var it entity.Item
	err := row.Scan(&it.ID, &it.OrganizationID, &it.Name, &it.StockUnits, &it.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &it, nil
}
