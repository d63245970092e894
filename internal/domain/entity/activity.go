package entity

import "time"

// Estados de una Activity.
const (
	ActivityActive   = "ACTIVE"
	ActivityArchived = "ARCHIVED"
	ActivityDeleted  = "DELETED"
)

// Tipos de evento del log de actividades (conjunto cerrado).
// Deben coincidir con el CHECK de la tabla activities.
const (
	ActLogin               = "LOGIN"
	ActLogout              = "LOGOUT"
	ActCheckIn             = "CHECK_IN"
	ActCheckOut            = "CHECK_OUT"
	ActDayStart            = "DAY_START"
	ActDayEnd              = "DAY_END"
	ActHalfDay             = "HALF_DAY"
	ActDayOff              = "DAY_OFF"
	ActNotReported         = "NOT_REPORTED"
	ActLeaveRequested      = "LEAVE_REQUESTED"
	ActLeaveApproved       = "LEAVE_APPROVED"
	ActLeaveRejected       = "LEAVE_REJECTED"
	ActLeaveStarted        = "LEAVE_STARTED"
	ActLeaveEnded          = "LEAVE_ENDED"
	ActSaleCreated         = "SALE_CREATED"
	ActSaleCancelled       = "SALE_CANCELLED"
	ActPaymentCollected    = "PAYMENT_COLLECTED"
	ActPaymentVerified     = "PAYMENT_VERIFIED"
	ActPaymentRefunded     = "PAYMENT_REFUNDED"
	ActClientVisit         = "CLIENT_VISIT"
	ActClientRegistered    = "CLIENT_REGISTERED"
	ActClientUpdated       = "CLIENT_UPDATED"
	ActGroupAssigned       = "GROUP_ASSIGNED"
	ActGroupRemoved        = "GROUP_REMOVED"
	ActLocationPing        = "LOCATION_PING"
	ActSyncStarted         = "SYNC_STARTED"
	ActSyncCompleted       = "SYNC_COMPLETED"
	ActSyncFailed          = "SYNC_FAILED"
	ActCredentialsRotated  = "CREDENTIALS_ROTATED"
	ActStatusChanged       = "STATUS_CHANGED"
	ActSalaryDisbursed     = "SALARY_DISBURSED"
	ActCommissionAdjusted  = "COMMISSION_ADJUSTED"
)

var activityTypes = map[string]struct{}{
	ActLogin: {}, ActLogout: {}, ActCheckIn: {}, ActCheckOut: {},
	ActDayStart: {}, ActDayEnd: {}, ActHalfDay: {}, ActDayOff: {},
	ActNotReported: {}, ActLeaveRequested: {}, ActLeaveApproved: {},
	ActLeaveRejected: {}, ActLeaveStarted: {}, ActLeaveEnded: {},
	ActSaleCreated: {}, ActSaleCancelled: {}, ActPaymentCollected: {},
	ActPaymentVerified: {}, ActPaymentRefunded: {}, ActClientVisit: {},
	ActClientRegistered: {}, ActClientUpdated: {}, ActGroupAssigned: {},
	ActGroupRemoved: {}, ActLocationPing: {}, ActSyncStarted: {},
	ActSyncCompleted: {}, ActSyncFailed: {}, ActCredentialsRotated: {},
	ActStatusChanged: {}, ActSalaryDisbursed: {}, ActCommissionAdjusted: {},
}

// ValidActivityType informa si t es un tipo de evento conocido.
func ValidActivityType(t string) bool {
	_, ok := activityTypes[t]
	return ok
}

// ValidActivityStatus informa si s es un estado de actividad válido.
func ValidActivityStatus(s string) bool {
	return s == ActivityActive || s == ActivityArchived || s == ActivityDeleted
}

// Activity entrada append-only del log de eventos de un empleado.
type Activity struct {
	ID             string
	OrganizationID string
	EmployeeID     string
	Type           string // ver constantes Act*
	Message        string
	Latitude       *float64
	Longitude      *float64
	IP             *string
	Status         string // ACTIVE, ARCHIVED, DELETED
	OccurredAt     time.Time
}
