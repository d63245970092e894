package entity

// Attendance contadores de asistencia por empleado y período (año, mes).
// Una fila por (organization, employee, year, month).
type Attendance struct {
	OrganizationID string
	EmployeeID     string
	Year           int
	Month          int // 1..12
	Reported       int
	NonReported    int
	HalfDays       int
	DayOffs        int
}
