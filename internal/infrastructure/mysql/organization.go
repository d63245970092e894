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

const orgColumns = `id, admin_id, billing_customer_id, name, status, subscription_status, subscription_ends_at, registered_at`

// AddOrganization persiste el tenant raíz. Status por defecto: TRIAL.
func (s *Store) AddOrganization(ctx context.Context, org *entity.Organization) (*entity.Organization, error) {
	const op = "AddOrganization"
	if org.ID == "" {
		org.ID = uuid.New().String()
	}
	if org.Status == "" {
		org.Status = entity.OrgStatusTrial
	}
	if org.SubscriptionStatus == "" {
		org.SubscriptionStatus = entity.SubscriptionValid
	}
	if !entity.ValidOrganizationStatus(org.Status) || !entity.ValidSubscriptionStatus(org.SubscriptionStatus) {
		return nil, s.finish(op, domain.ErrInvalidStatus)
	}
	if org.RegisteredAt.IsZero() {
		org.RegisteredAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO organizations (`+orgColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		org.ID, org.AdminID, org.BillingCustomerID, org.Name,
		org.Status, org.SubscriptionStatus, org.SubscriptionEndsAt, org.RegisteredAt,
	)
	if err != nil {
		return nil, s.finish(op, err)
	}
	return org, s.finish(op, nil)
}

// GetOrganizationByID obtiene una organización por ID.
func (s *Store) GetOrganizationByID(ctx context.Context, orgID string) (*entity.Organization, error) {
	const op = "GetOrganizationByID"
	org, err := getOrganization(ctx, s.db, orgID)
	if err != nil {
		return nil, s.finish(op, err)
	}
	return org, s.finish(op, nil)
}

// UpdateOrganizationByID aplica una actualización parcial: solo los campos
// no-nil del patch se escriben. Update + re-lectura en la misma transacción
// (MySQL no tiene RETURNING).
func (s *Store) UpdateOrganizationByID(ctx context.Context, orgID string, patch entity.OrganizationPatch) (*entity.Organization, error) {
	const op = "UpdateOrganizationByID"
	if patch.Status != nil && !entity.ValidOrganizationStatus(*patch.Status) {
		return nil, s.finish(op, domain.ErrInvalidStatus)
	}
	if patch.SubscriptionStatus != nil && !entity.ValidSubscriptionStatus(*patch.SubscriptionStatus) {
		return nil, s.finish(op, domain.ErrInvalidStatus)
	}

	set := newSetClause()
	addSet(set, "admin_id", patch.AdminID)
	addSet(set, "billing_customer_id", patch.BillingCustomerID)
	addSet(set, "name", patch.Name)
	addSet(set, "status", patch.Status)
	addSet(set, "subscription_status", patch.SubscriptionStatus)
	addSet(set, "subscription_ends_at", patch.SubscriptionEndsAt)
	if set.empty() {
		return s.GetOrganizationByID(ctx, orgID)
	}

	var org *entity.Organization
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		query := fmt.Sprintf(`UPDATE organizations SET %s WHERE id = ?`, set.sql())
		if _, err := tx.ExecContext(ctx, query, set.withWhere(orgID)...); err != nil {
			return err
		}
		var err error
		org, err = getOrganization(ctx, tx, orgID)
		return err
	})
	if err != nil {
		return nil, s.finish(op, err)
	}
	return org, s.finish(op, nil)
}

func getOrganization(ctx context.Context, q querier, orgID string) (*entity.Organization, error) {
	var o entity.Organization
	err := q.QueryRowContext(ctx,
		`SELECT `+orgColumns+` FROM organizations WHERE id = ?`, orgID,
	).Scan(&o.ID, &o.AdminID, &o.BillingCustomerID, &o.Name,
		&o.Status, &o.SubscriptionStatus, &o.SubscriptionEndsAt, &o.RegisteredAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
