package loan

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
	StatusClosed   = "CLOSED"
)

// Loan is an employee loan repaid through payroll. MonthlyEMI is fixed at
// request time (round(amount/termMonths)) and never recomputed. PaidAmount
// and RemainingAmount are advanced exclusively by the amortization ledger on
// payroll commit; invariant RemainingAmount = Amount - PaidAmount, clamped
// at zero.
type Loan struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_loans_employee_status"`

	Amount     int64 `gorm:"type:bigint;not null"`
	TermMonths int   `gorm:"type:int;not null"`
	MonthlyEMI int64 `gorm:"type:bigint;not null"`

	Status          string `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_loans_employee_status"`
	PaidAmount      int64  `gorm:"type:bigint;not null;default:0"`
	RemainingAmount int64  `gorm:"type:bigint;not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
	ClosedOn  *time.Time
}
