package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
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
	_, err := s.pool.Exec(ctx, `
		INSERT INTO clients (`+clientColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
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
	c, err := scanClient(s.pool.QueryRow(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE organization_id = $1 AND id = $2`,
		orgID, clientID))
	if err != nil {
		return nil, s.finish(op, err)
	}
	return c, s.finish(op, nil)
}

// ListClientsByOrganization devuelve los clientes de la organización.
func (s *Store) ListClientsByOrganization(ctx context.Context, orgID string) ([]*entity.Client, error) {
	const op = "ListClientsByOrganization"
	rows, err := s.pool.Query(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE organization_id = $1 ORDER BY name`,
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

// UpdateClientByID aplica una actualización parcial.
func (s *Store) UpdateClientByID(ctx context.Context, orgID, clientID string, patch entity.ClientPatch) (*entity.Client, error) {
	const op = "UpdateClientByID"
	if patch.Status != nil && !entity.ValidClientStatus(*patch.Status) {
		return nil, s.finish(op, domain.ErrInvalidStatus)
	}
	set, args := newSetClause(orgID, clientID)
	addSet(set, "billing_customer_id", patch.BillingCustomerID)
	addSet(set, "name", patch.Name)
	addSet(set, "nic", patch.NIC)
	addSet(set, "email", patch.Email)
	addSet(set, "phone", patch.Phone)
	addSet(set, "status", patch.Status)
	if set.empty() {
		return s.GetClientByID(ctx, orgID, clientID)
	}
	query := fmt.Sprintf(`UPDATE clients SET %s WHERE organization_id = $1 AND id = $2 RETURNING `+clientColumns, set.sql())
	c, err := scanClient(s.pool.QueryRow(ctx, query, args()...))
	if err != nil {
		return nil, s.finish(op, err)
	}
	return c, s.finish(op, nil)
}

// DeleteClientByID borra un cliente y devuelve la fila borrada.
func (s *Store) DeleteClientByID(ctx context.Context, orgID, clientID string) (*entity.Client, error) {
	const op = "DeleteClientByID"
	c, err := scanClient(s.pool.QueryRow(ctx,
		`DELETE FROM clients WHERE organization_id = $1 AND id = $2 RETURNING `+clientColumns,
		orgID, clientID))
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
	_, err := s.pool.Exec(ctx, `
		INSERT INTO client_payments (`+clientPaymentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		payment.ID, payment.OrganizationID, payment.ClientID,
		payment.Amount, payment.Status, payment.Date,
	)
	if err != nil {
		return nil, s.finish(op, err)
	}
	return payment, s.finish(op, nil)
}

// GetClientPaymentByID obtiene un pago de cliente.
func (s *Store) GetClientPaymentByID(ctx context.Context, orgID, paymentID string) (*entity.ClientPayment, error) {
	const op = "GetClientPaymentByID"
	p, err := scanClientPayment(s.pool.QueryRow(ctx,
		`SELECT `+clientPaymentColumns+` FROM client_payments WHERE organization_id = $1 AND id = $2`,
		orgID, paymentID))
	if err != nil {
		return nil, s.finish(op, err)
	}
	return p, s.finish(op, nil)
}

// ListClientPaymentsByClient devuelve los pagos de un cliente.
func (s *Store) ListClientPaymentsByClient(ctx context.Context, orgID, clientID string) ([]*entity.ClientPayment, error) {
	const op = "ListClientPaymentsByClient"
	rows, err := s.pool.Query(ctx,
		`SELECT `+clientPaymentColumns+` FROM client_payments WHERE organization_id = $1 AND client_id = $2 ORDER BY date DESC`,
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
	set, args := newSetClause(orgID, paymentID)
	addSet(set, "amount", patch.Amount)
	addSet(set, "status", patch.Status)
	if set.empty() {
		return s.GetClientPaymentByID(ctx, orgID, paymentID)
	}
	query := fmt.Sprintf(`UPDATE client_payments SET %s WHERE organization_id = $1 AND id = $2 RETURNING `+clientPaymentColumns, set.sql())
	p, err := scanClientPayment(s.pool.QueryRow(ctx, query, args()...))
	if err != nil {
		return nil, s.finish(op, err)
	}
	return p, s.finish(op, nil)
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
	err := row.Scan(&p.ID, &p.OrganizationID, &p.ClientID, &p.Amount, &p.Status, &p.Date)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
