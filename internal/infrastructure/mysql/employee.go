package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

const employeeColumns = `id, organization_id, sales_group_id, first_name, last_name, phone, nic, status, registered_at`

// OnboardEmployee crea el empleado y todas sus filas dependientes en una sola
// transacción. Cualquier fallo revierte todo; nunca queda un empleado parcial
// visible.
func (s *Store) OnboardEmployee(ctx context.Context, orgID string, in repository.OnboardEmployeeInput) (*entity.Employee, error) {
	const op = "OnboardEmployee"
	if orgID == "" || in.NIC == "" || in.Username == "" || in.PasswordHash == "" {
		return nil, s.finish(op, domain.ErrInvalidInput)
	}

	now := time.Now()
	emp := newEmployee(orgID, in, now)

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO employees (`+employeeColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			emp.ID, emp.OrganizationID, emp.SalesGroupID, emp.FirstName,
			emp.LastName, emp.Phone, emp.NIC, emp.Status, emp.RegisteredAt,
		)
		if err != nil {
			return fmt.Errorf("insert employee: %w", err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO credentials (employee_id, organization_id, username, password_hash)
			VALUES (?, ?, ?, ?)`,
			emp.ID, orgID, in.Username, in.PasswordHash,
		)
		if err != nil {
			return fmt.Errorf("insert credentials: %w", err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO leave_balances (employee_id, organization_id, taken, total)
			VALUES (?, ?, 0, ?)`,
			emp.ID, orgID, entity.DefaultLeaveTotal,
		)
		if err != nil {
			return fmt.Errorf("insert leave balance: %w", err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO salary_profiles (employee_id, organization_id, base, commission_pct)
			VALUES (?, ?, ?, 0)`,
			emp.ID, orgID, float64(entity.DefaultSalaryBase),
		)
		if err != nil {
			return fmt.Errorf("insert salary profile: %w", err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO sync_profiles (employee_id, organization_id, last_synced_at)
			VALUES (?, ?, ?)`,
			emp.ID, orgID, now,
		)
		if err != nil {
			return fmt.Errorf("insert sync profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, s.finish(op, err)
	}
	return emp, s.finish(op, nil)
}

// newEmployee arma la fila de empleado del onboarding con sus valores por defecto.
func newEmployee(orgID string, in repository.OnboardEmployeeInput, now time.Time) *entity.Employee {
	return &entity.Employee{
		ID:             uuid.New().String(),
		OrganizationID: orgID,
		SalesGroupID:   in.SalesGroupID,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Phone:          in.Phone,
		NIC:            in.NIC,
		Status:         entity.EmployeeNotReported,
		RegisteredAt:   now,
	}
}

// GetEmployeeByID obtiene un empleado. Un id existente de otra organización
// es ErrNotFound, no se distingue.
func (s *Store) GetEmployeeByID(ctx context.Context, orgID, employeeID string) (*entity.Employee, error) {
	const op = "GetEmployeeByID"
	emp, err := getEmployee(ctx, s.db, orgID, employeeID)
	if err != nil {
		return nil, s.finish(op, err)
	}
	return emp, s.finish(op, nil)
}

// ListEmployeesByOrganization devuelve todos los empleados de la organización.
func (s *Store) ListEmployeesByOrganization(ctx context.Context, orgID string) ([]*entity.Employee, error) {
	const op = "ListEmployeesByOrganization"
	list, err := queryEmployees(ctx, s.db,
		`SELECT `+employeeColumns+` FROM employees WHERE organization_id = ? ORDER BY registered_at`,
		orgID)
	if err != nil {
		return nil, s.finish(op, err)
	}
	return list, s.finish(op, nil)
}

// UpdateEmployeeByID aplica una actualización parcial (update + re-lectura en una tx).
func (s *Store) UpdateEmployeeByID(ctx context.Context, orgID, employeeID string, patch entity.EmployeePatch) (*entity.Employee, error) {
	const op = "UpdateEmployeeByID"
	if patch.Status != nil && !entity.ValidEmployeeStatus(*patch.Status) {
		return nil, s.finish(op, domain.ErrInvalidStatus)
	}

	set := newSetClause()
	addSet(set, "first_name", patch.FirstName)
	addSet(set, "last_name", patch.LastName)
	addSet(set, "phone", patch.Phone)
	addSet(set, "nic", patch.NIC)
	addSet(set, "status", patch.Status)
	if patch.ClearSalesGroup {
		set.addNull("sales_group_id")
	} else {
		addSet(set, "sales_group_id", patch.SalesGroupID)
	}
	if set.empty() {
		return s.GetEmployeeByID(ctx, orgID, employeeID)
	}

	var emp *entity.Employee
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		query := fmt.Sprintf(`UPDATE employees SET %s WHERE organization_id = ? AND id = ?`, set.sql())
		if _, err := tx.ExecContext(ctx, query, set.withWhere(orgID, employeeID)...); err != nil {
			return err
		}
		var err error
		emp, err = getEmployee(ctx, tx, orgID, employeeID)
		return err
	})
	if err != nil {
		return nil, s.finish(op, err)
	}
	return emp, s.finish(op, nil)
}

// DeleteEmployeeByID borra el empleado y sus filas dependientes en una
// transacción; devuelve la fila borrada.
func (s *Store) DeleteEmployeeByID(ctx context.Context, orgID, employeeID string) (*entity.Employee, error) {
	const op = "DeleteEmployeeByID"
	var emp *entity.Employee
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		emp, err = getEmployee(ctx, tx, orgID, employeeID)
		if err != nil {
			return err
		}
		for _, table := range []string{"activities", "attendance", "salary_records", "sync_profiles", "salary_profiles", "leave_balances", "credentials"} {
			if _, err := tx.ExecContext(ctx,
				fmt.Sprintf(`DELETE FROM %s WHERE organization_id = ? AND employee_id = ?`, table),
				orgID, employeeID); err != nil {
				return fmt.Errorf("delete %s: %w", table, err)
			}
		}
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM employees WHERE organization_id = ? AND id = ?`,
			orgID, employeeID); err != nil {
			return fmt.Errorf("delete employee: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, s.finish(op, err)
	}
	return emp, s.finish(op, nil)
}

// RotateCredentials reemplaza username y hash en una operación dedicada.
// Verifica existencia dentro de la tx: un UPDATE sin cambios reporta 0 filas
// afectadas en MySQL y no sirve para distinguir "no existe".
func (s *Store) RotateCredentials(ctx context.Context, orgID, employeeID, username, passwordHash string) error {
	const op = "RotateCredentials"
	if username == "" || passwordHash == "" {
		return s.finish(op, domain.ErrInvalidInput)
	}
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var one int
		err := tx.QueryRowContext(ctx,
			`SELECT 1 FROM credentials WHERE organization_id = ? AND employee_id = ?`,
			orgID, employeeID).Scan(&one)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			UPDATE credentials SET username = ?, password_hash = ?
			WHERE organization_id = ? AND employee_id = ?`,
			username, passwordHash, orgID, employeeID)
		return err
	})
	return s.finish(op, err)
}

// GetLeaveBalance obtiene el saldo de licencias del empleado.
func (s *Store) GetLeaveBalance(ctx context.Context, orgID, employeeID string) (*entity.LeaveBalance, error) {
	const op = "GetLeaveBalance"
	lb, err := getLeaveBalance(ctx, s.db, orgID, employeeID)
	if err != nil {
		return nil, s.finish(op, err)
	}
	return lb, s.finish(op, nil)
}

// UpdateLeaveBalance aplica una actualización parcial del saldo.
func (s *Store) UpdateLeaveBalance(ctx context.Context, orgID, employeeID string, patch entity.LeaveBalancePatch) (*entity.LeaveBalance, error) {
	const op = "UpdateLeaveBalance"
	set := newSetClause()
	addSet(set, "taken", patch.Taken)
	addSet(set, "total", patch.Total)
	if set.empty() {
		return s.GetLeaveBalance(ctx, orgID, employeeID)
	}
	var lb *entity.LeaveBalance
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		query := fmt.Sprintf(`UPDATE leave_balances SET %s WHERE organization_id = ? AND employee_id = ?`, set.sql())
		if _, err := tx.ExecContext(ctx, query, set.withWhere(orgID, employeeID)...); err != nil {
			return err
		}
		var err error
		lb, err = getLeaveBalance(ctx, tx, orgID, employeeID)
		return err
	})
	if err != nil {
		return nil, s.finish(op, err)
	}
	return lb, s.finish(op, nil)
}

// GetSalaryProfile obtiene el perfil salarial del empleado.
func (s *Store) GetSalaryProfile(ctx context.Context, orgID, employeeID string) (*entity.SalaryProfile, error) {
	const op = "GetSalaryProfile"
	sp, err := getSalaryProfile(ctx, s.db, orgID, employeeID)
	if err != nil {
		return nil, s.finish(op, err)
	}
	return sp, s.finish(op, nil)
}

// UpdateSalaryProfile aplica una actualización parcial del perfil salarial.
func (s *Store) UpdateSalaryProfile(ctx context.Context, orgID, employeeID string, patch entity.SalaryProfilePatch) (*entity.SalaryProfile, error) {
	const op = "UpdateSalaryProfile"
	set := newSetClause()
	if patch.Base != nil {
		base := patch.Base.InexactFloat64()
		addSet(set, "base", &base)
	}
	if patch.CommissionPct != nil {
		pct := patch.CommissionPct.InexactFloat64()
		addSet(set, "commission_pct", &pct)
	}
	if set.empty() {
		return s.GetSalaryProfile(ctx, orgID, employeeID)
	}
	var sp *entity.SalaryProfile
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		query := fmt.Sprintf(`UPDATE salary_profiles SET %s WHERE organization_id = ? AND employee_id = ?`, set.sql())
		if _, err := tx.ExecContext(ctx, query, set.withWhere(orgID, employeeID)...); err != nil {
			return err
		}
		var err error
		sp, err = getSalaryProfile(ctx, tx, orgID, employeeID)
		return err
	})
	if err != nil {
		return nil, s.finish(op, err)
	}
	return sp, s.finish(op, nil)
}

// AddSalaryRecord registra un desembolso individual.
func (s *Store) AddSalaryRecord(ctx context.Context, orgID string, rec *entity.SalaryRecord) (*entity.SalaryRecord, error) {
	const op = "AddSalaryRecord"
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	rec.OrganizationID = orgID
	if rec.PaidAt.IsZero() {
		rec.PaidAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO salary_records (id, organization_id, employee_id, amount, paid_at)
		VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.OrganizationID, rec.EmployeeID, rec.Amount.InexactFloat64(), rec.PaidAt,
	)
	if err != nil {
		return nil, s.finish(op, err)
	}
	return rec, s.finish(op, nil)
}

// ListSalaryRecordsByMonth devuelve los desembolsos del mes calendario indicado.
func (s *Store) ListSalaryRecordsByMonth(ctx context.Context, orgID, employeeID string, year, month int) ([]*entity.SalaryRecord, error) {
	const op = "ListSalaryRecordsByMonth"
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, organization_id, employee_id, amount, paid_at
		FROM salary_records
		WHERE organization_id = ? AND employee_id = ? AND paid_at >= ? AND paid_at < ?
		ORDER BY paid_at`,
		orgID, employeeID, from, to,
	)
	if err != nil {
		return nil, s.finish(op, err)
	}
	defer rows.Close()

	var list []*entity.SalaryRecord
	for rows.Next() {
		var r entity.SalaryRecord
		var amount float64
		if err := rows.Scan(&r.ID, &r.OrganizationID, &r.EmployeeID, &amount, &r.PaidAt); err != nil {
			return nil, s.finish(op, err)
		}
		r.Amount = decimal.NewFromFloat(amount)
		list = append(list, &r)
	}
	return list, s.finish(op, rows.Err())
}

// UpsertAttendance crea la fila del período o acumula los contadores sobre la
// existente (INSERT ... ON DUPLICATE KEY UPDATE + re-lectura en una tx).
func (s *Store) UpsertAttendance(ctx context.Context, orgID string, att *entity.Attendance) (*entity.Attendance, error) {
	const op = "UpsertAttendance"
	if att.Month < 1 || att.Month > 12 {
		return nil, s.finish(op, domain.ErrInvalidInput)
	}
	att.OrganizationID = orgID
	var out *entity.Attendance
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO attendance (organization_id, employee_id, year, month, reported, non_reported, half_days, day_offs)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON DUPLICATE KEY UPDATE
				reported     = reported + VALUES(reported),
				non_reported = non_reported + VALUES(non_reported),
				half_days    = half_days + VALUES(half_days),
				day_offs     = day_offs + VALUES(day_offs)`,
			att.OrganizationID, att.EmployeeID, att.Year, att.Month,
			att.Reported, att.NonReported, att.HalfDays, att.DayOffs,
		)
		if err != nil {
			return err
		}
		out, err = getAttendance(ctx, tx, orgID, att.EmployeeID, att.Year, att.Month)
		return err
	})
	if err != nil {
		return nil, s.finish(op, err)
	}
	return out, s.finish(op, nil)
}

// GetAttendance obtiene los contadores del período (year, month).
func (s *Store) GetAttendance(ctx context.Context, orgID, employeeID string, year, month int) (*entity.Attendance, error) {
	const op = "GetAttendance"
	att, err := getAttendance(ctx, s.db, orgID, employeeID, year, month)
	if err != nil {
		return nil, s.finish(op, err)
	}
	return att, s.finish(op, nil)
}

func getAttendance(ctx context.Context, q querier, orgID, employeeID string, year, month int) (*entity.Attendance, error) {
	var a entity.Attendance
	err := q.QueryRowContext(ctx, `
		SELECT organization_id, employee_id, year, month, reported, non_reported, half_days, day_offs
		FROM attendance
		WHERE organization_id = ? AND employee_id = ? AND year = ? AND month = ?`,
		orgID, employeeID, year, month,
	).Scan(&a.OrganizationID, &a.EmployeeID, &a.Year, &a.Month,
		&a.Reported, &a.NonReported, &a.HalfDays, &a.DayOffs)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// AddActivity agrega una entrada al log append-only del empleado.
func (s *Store) AddActivity(ctx context.Context, orgID string, act *entity.Activity) (*entity.Activity, error) {
	const op = "AddActivity"
	if !entity.ValidActivityType(act.Type) {
		return nil, s.finish(op, domain.ErrInvalidInput)
	}
	if act.Status == "" {
		act.Status = entity.ActivityActive
	}
	if !entity.ValidActivityStatus(act.Status) {
		return nil, s.finish(op, domain.ErrInvalidStatus)
	}
	if act.ID == "" {
		act.ID = uuid.New().String()
	}
	act.OrganizationID = orgID
	if act.OccurredAt.IsZero() {
		act.OccurredAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO activities (id, organization_id, employee_id, type, message, latitude, longitude, ip, status, occurred_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		act.ID, act.OrganizationID, act.EmployeeID, act.Type, act.Message,
		act.Latitude, act.Longitude, act.IP, act.Status, act.OccurredAt,
	)
	if err != nil {
		return nil, s.finish(op, err)
	}
	return act, s.finish(op, nil)
}

// ListActivitiesByEmployee devuelve las actividades más recientes (limit <= 0 usa 50).
func (s *Store) ListActivitiesByEmployee(ctx context.Context, orgID, employeeID string, limit int) ([]*entity.Activity, error) {
	const op = "ListActivitiesByEmployee"
	if limit <= 0 {
		limit = 50
	}
	list, err := queryActivities(ctx, s.db, `
		SELECT id, organization_id, employee_id, type, message, latitude, longitude, ip, status, occurred_at
		FROM activities
		WHERE organization_id = ? AND employee_id = ?
		ORDER BY occurred_at DESC LIMIT ?`,
		orgID, employeeID, limit)
	if err != nil {
		return nil, s.finish(op, err)
	}
	return list, s.finish(op, nil)
}

// TouchSyncProfile actualiza la marca de última sincronización del cliente offline.
func (s *Store) TouchSyncProfile(ctx context.Context, orgID, employeeID string, at time.Time) (*entity.SyncProfile, error) {
	const op = "TouchSyncProfile"
	var sp entity.SyncProfile
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			UPDATE sync_profiles SET last_synced_at = ?
			WHERE organization_id = ? AND employee_id = ?`,
			at, orgID, employeeID); err != nil {
			return err
		}
		return tx.QueryRowContext(ctx, `
			SELECT employee_id, organization_id, last_synced_at
			FROM sync_profiles WHERE organization_id = ? AND employee_id = ?`,
			orgID, employeeID).Scan(&sp.EmployeeID, &sp.OrganizationID, &sp.LastSyncedAt)
	})
	if err != nil {
		return nil, s.finish(op, err)
	}
	return &sp, s.finish(op, nil)
}

// EmployeeProfile arma la vista agregada del empleado en un snapshot único
// (REPEATABLE READ).
func (s *Store) EmployeeProfile(ctx context.Context, orgID, employeeID string) (*repository.EmployeeProfileView, error) {
	const op = "EmployeeProfile"
	view := &repository.EmployeeProfileView{}
	now := time.Now()

	err := s.withSnapshot(ctx, func(tx *sql.Tx) error {
		var err error
		view.Employee, err = getEmployee(ctx, tx, orgID, employeeID)
		if err != nil {
			return err
		}
		if err := tx.QueryRowContext(ctx,
			`SELECT username FROM credentials WHERE organization_id = ? AND employee_id = ?`,
			orgID, employeeID).Scan(&view.Username); err != nil {
			return fmt.Errorf("profile credentials: %w", err)
		}
		view.LeaveBalance, err = getLeaveBalance(ctx, tx, orgID, employeeID)
		if err != nil {
			return fmt.Errorf("profile leave balance: %w", err)
		}
		view.SalaryProfile, err = getSalaryProfile(ctx, tx, orgID, employeeID)
		if err != nil {
			return fmt.Errorf("profile salary: %w", err)
		}
		// La asistencia del período actual puede no existir todavía.
		att, err := getAttendance(ctx, tx, orgID, employeeID, now.Year(), int(now.Month()))
		if err == nil {
			view.Attendance = att
		} else if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("profile attendance: %w", err)
		}
		view.Activities, err = queryActivities(ctx, tx, `
			SELECT id, organization_id, employee_id, type, message, latitude, longitude, ip, status, occurred_at
			FROM activities WHERE organization_id = ? AND employee_id = ?
			ORDER BY occurred_at DESC LIMIT 20`,
			orgID, employeeID)
		if err != nil {
			return fmt.Errorf("profile activities: %w", err)
		}
		view.Sales, err = querySales(ctx, tx,
			`SELECT `+saleColumns+` FROM sales WHERE organization_id = ? AND employee_id = ? ORDER BY date DESC`,
			orgID, employeeID)
		if err != nil {
			return fmt.Errorf("profile sales: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, s.finish(op, err)
	}
	return view, s.finish(op, nil)
}

func getEmployee(ctx context.Context, q querier, orgID, employeeID string) (*entity.Employee, error) {
	return scanEmployee(q.QueryRowContext(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE organization_id = ? AND id = ?`,
		orgID, employeeID))
}

func getLeaveBalance(ctx context.Context, q querier, orgID, employeeID string) (*entity.LeaveBalance, error) {
	var lb entity.LeaveBalance
	err := q.QueryRowContext(ctx, `
		SELECT employee_id, organization_id, taken, total
		FROM leave_balances WHERE organization_id = ? AND employee_id = ?`,
		orgID, employeeID,
	).Scan(&lb.EmployeeID, &lb.OrganizationID, &lb.Taken, &lb.Total)
	if err != nil {
		return nil, err
	}
	return &lb, nil
}

func getSalaryProfile(ctx context.Context, q querier, orgID, employeeID string) (*entity.SalaryProfile, error) {
	var sp entity.SalaryProfile
	var base, pct float64
	err := q.QueryRowContext(ctx, `
		SELECT employee_id, organization_id, base, commission_pct
		FROM salary_profiles WHERE organization_id = ? AND employee_id = ?`,
		orgID, employeeID,
	).Scan(&sp.EmployeeID, &sp.OrganizationID, &base, &pct)
	if err != nil {
		return nil, err
	}
	sp.Base = decimal.NewFromFloat(base)
	sp.CommissionPct = decimal.NewFromFloat(pct)
	return &sp, nil
}

func scanEmployee(row rowScanner) (*entity.Employee, error) {
	var e entity.Employee
	err := row.Scan(&e.ID, &e.OrganizationID, &e.SalesGroupID, &e.FirstName,
		&e.LastName, &e.Phone, &e.NIC, &e.Status, &e.RegisteredAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func queryEmployees(ctx context.Context, q querier, query string, args ...any) ([]*entity.Employee, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*entity.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func queryActivities(ctx context.Context, q querier, query string, args ...any) ([]*entity.Activity, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*entity.Activity
	for rows.Next() {
		var a entity.Activity
		if err := rows.Scan(&a.ID, &a.OrganizationID, &a.EmployeeID, &a.Type, &a.Message,
			&a.Latitude, &a.Longitude, &a.IP, &a.Status, &a.OccurredAt); err != nil {
			return nil, err
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
