package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

const clientColumns = `id, organization_id, billing_customer_id, name, nic, email, phone, status, created_at`
const clientPaymentColumns = `id, organization_id, client_id, amount, status, date`

// AddClient persiste un cliente en la organización indicada. Status por
// defecto: UNVERIFIED.
func (s *Store) AddClient(ctx context.Context, orgID string, client *entity.Client) (*entity.Client, error) {
	const op = "AddClient"
	if orgID == "" {
		return nil, s.finish(op, domain.ErrInvalidInput)
	}
	if client.ID == "" {
		client.ID = uuid.New().String()
	}
	client.OrganizationID = orgID
	if client.Status == "" {
		client.Status = entity.ClientUnverified
	}
	if !entity.ValidClientStatus(client.Status) {
		return nil, s.finish(op, domain.ErrInvalidStatus)
	}
	if client.CreatedAt.IsZero() {
		client.CreatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO clients (`+clientColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		client.ID, client.OrganizationID, client.BillingCustomerID, client.Name,
		client.NIC, client.Email, client.Phone, client.Status, client.CreatedAt,
	)
	if err != nil {
		return nil, s.finish(op, err)
	}
	return client, s.finish(op, nil)
}

// GetClientByID obtiene un cliente.
func (s *Store) GetClientByID(ctx context.Context, orgID, clientID string) (*entity.Client, error) {
	const op = "GetClientByID"
	c, err := getClient(ctx, s.db, orgID, clientID)
	if err != nil {
		return nil, s.finish(op, err)
	}
	return c, s.finish(op, nil)
}

// ListClientsByOrganization devuelve los clientes de la organización.
func (s *Store) ListClientsByOrganization(ctx context.Context, orgID string) ([]*entity.Client, error) {
	const op = "ListClientsByOrganization"
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE organization_id = ? ORDER BY name`,
		orgID)
	if err != nil {
		return nil, s.finish(op, err)
	}
	defer rows.Close()

	var list []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, s.finish(op, err)
		}
		list = append(list, c)
	}
	return list, s.finish(op, rows.Err())
}

// UpdateClientByID aplica una actualización parcial (update + re-lectura en una tx).
func (s *Store) UpdateClientByID(ctx context.Context, orgID, clientID string, patch entity.ClientPatch) (*entity.Client, error) {
	const op = "UpdateClientByID"
	if patch.Status != nil && !entity.ValidClientStatus(*patch.Status) {
		return nil, s.finish(op, domain.ErrInvalidStatus)
	}
	set := newSetClause()
	addSet(set, "billing_customer_id", patch.BillingCustomerID)
	addSet(set, "name", patch.Name)
	addSet(set, "nic", patch.NIC)
	addSet(set, "email", patch.Email)
	addSet(set, "phone", patch.Phone)
	addSet(set, "status", patch.Status)
	if set.empty() {
		return s.GetClientByID(ctx, orgID, clientID)
	}
	var c *entity.Client
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		query := fmt.Sprintf(`UPDATE clients SET %s WHERE organization_id = ? AND id = ?`, set.sql())
		if _, err := tx.ExecContext(ctx, query, set.withWhere(orgID, clientID)...); err != nil {
			return err
		}
		var err error
		c, err = getClient(ctx, tx, orgID, clientID)
		return err
	})
	if err != nil {
		return nil, s.finish(op, err)
	}
	return c, s.finish(op, nil)
}

// DeleteClientByID borra un cliente y devuelve la fila borrada.
func (s *Store) DeleteClientByID(ctx context.Context, orgID, clientID string) (*entity.Client, error) {
	const op = "DeleteClientByID"
	var c *entity.Client
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		c, err = getClient(ctx, tx, orgID, clientID)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`DELETE FROM clients WHERE organization_id = ? AND id = ?`,
			orgID, clientID)
		return err
	})
	if err != nil {
		return nil, s.finish(op, err)
	}
	return c, s.finish(op, nil)
}

// AddClientPayment registra un pago de cliente. Status por defecto: PENDING.
func (s *Store) AddClientPayment(ctx context.Context, orgID string, payment *entity.ClientPayment) (*entity.ClientPayment, error) {
	const op = "AddClientPayment"
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	payment.OrganizationID = orgID
	if payment.Status == "" {
		payment.Status = entity.PaymentPending
	}
	if !entity.ValidPaymentStatus(payment.Status) {
		return nil, s.finish(op, domain.ErrInvalidStatus)
	}
	if payment.Date.IsZero() {
		payment.Date = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO client_payments (`+clientPaymentColumns+`)
		VALUES (?, ?, ?, ?, ?, ?)`,
		payment.ID, payment.OrganizationID, payment.ClientID,
		payment.Amount.InexactFloat64(), payment.Status, payment.Date,
	)
	if err != nil {
		return nil, s.finish(op, err)
	}
	return payment, s.finish(op, nil)
}

// GetClientPaymentByID obtiene un pago de cliente.
func (s *Store) GetClientPaymentByID(ctx context.Context, orgID, paymentID string) (*entity.ClientPayment, error) {
	const op = "GetClientPaymentByID"
	p, err := getClientPayment(ctx, s.db, orgID, paymentID)
	if err != nil {
		return nil, s.finish(op, err)
	}
	return p, s.finish(op, nil)
}

// ListClientPaymentsByClient devuelve los pagos de un cliente.
func (s *Store) ListClientPaymentsByClient(ctx context.Context, orgID, clientID string) ([]*entity.ClientPayment, error) {
	const op = "ListClientPaymentsByClient"
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+clientPaymentColumns+` FROM client_payments WHERE organization_id = ? AND client_id = ? ORDER BY date DESC`,
		orgID, clientID)
	if err != nil {
		return nil, s.finish(op, err)
	}
	defer rows.Close()

	var list []*entity.ClientPayment
	for rows.Next() {
		p, err := scanClientPayment(rows)
		if err != nil {
			return nil, s.finish(op, err)
		}
		list = append(list, p)
	}
	return list, s.finish(op, rows.Err())
}

// UpdateClientPaymentByID aplica una actualización parcial (monto y/o estado).
func (s *Store) UpdateClientPaymentByID(ctx context.Context, orgID, paymentID string, patch entity.ClientPaymentPatch) (*entity.ClientPayment, error) {
	const op = "UpdateClientPaymentByID"
	if patch.Status != nil && !entity.ValidPaymentStatus(*patch.Status) {
		return nil, s.finish(op, domain.ErrInvalidStatus)
	}
	set := newSetClause()
	if patch.Amount != nil {
		amount := patch.Amount.InexactFloat64()
		addSet(set, "amount", &amount)
	}
	addSet(set, "status", patch.Status)
	if set.empty() {
		return s.GetClientPaymentByID(ctx, orgID, paymentID)
	}
	var p *entity.ClientPayment
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		query := fmt.Sprintf(`UPDATE client_payments SET %s WHERE organization_id = ? AND id = ?`, set.sql())
		if _, err := tx.ExecContext(ctx, query, set.withWhere(orgID, paymentID)...); err != nil {
			return err
		}
		var err error
		p, err = getClientPayment(ctx, tx, orgID, paymentID)
		return err
	})
	if err != nil {
		return nil, s.finish(op, err)
	}
	return p, s.finish(op, nil)
}

func getClient(ctx context.Context, q querier, orgID, clientID string) (*entity.Client, error) {
	return scanClient(q.QueryRowContext(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE organization_id = ? AND id = ?`,
		orgID, clientID))
}

func getClientPayment(ctx context.Context, q querier, orgID, paymentID string) (*entity.ClientPayment, error) {
	return scanClientPayment(q.QueryRowContext(ctx,
		`SELECT `+clientPaymentColumns+` FROM client_payments WHERE organization_id = ? AND id = ?`,
		orgID, paymentID))
}

func scanClient(row rowScanner) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(&c.ID, &c.OrganizationID, &c.BillingCustomerID, &c.Name,
		&c.NIC, &c.Email, &c.Phone, &c.Status, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanClientPayment(row rowScanner) (*entity.ClientPayment, error) {
	var p entity.ClientPayment
	var amount float64
	err := row.Scan(&p.ID, &p.OrganizationID, &p.ClientID, &amount, &p.Status, &p.Date)
	if err != nil {
		return nil, err
	}
	p.Amount = decimal.NewFromFloat(amount)
	return &p, nil
}
