package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalaryRecord is the computed payroll ledger line for one (employee, month).
// At most one row per pair; a re-run overwrites the row in place. All money
// columns are whole currency units.
type SalaryRecord struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_salary_employee_month,unique"`
	Month      string    `gorm:"type:varchar(7);not null;index:idx_salary_employee_month,unique"`

	BasicSalary    int64 `gorm:"type:bigint;not null;default:0"`
	HRA            int64 `gorm:"type:bigint;not null;default:0"`
	DA             int64 `gorm:"type:bigint;not null;default:0"`
	Travel         int64 `gorm:"type:bigint;not null;default:0"`
	Medical        int64 `gorm:"type:bigint;not null;default:0"`
	OtherAllowance int64 `gorm:"type:bigint;not null;default:0"`

	PF             int64 `gorm:"type:bigint;not null;default:0"`
	Tax            int64 `gorm:"type:bigint;not null;default:0"`
	Insurance      int64 `gorm:"type:bigint;not null;default:0"`
	LoanEMI        int64 `gorm:"type:bigint;not null;default:0"`
	LeaveDeduction int64 `gorm:"type:bigint;not null;default:0"`

	Gross           int64 `gorm:"type:bigint;not null;default:0"`
	TotalDeductions int64 `gorm:"type:bigint;not null;default:0"`
	Net             int64 `gorm:"type:bigint;not null;default:0"`

	AttendanceDays decimal.Decimal `gorm:"type:numeric(5,1);not null;default:0"`
	LeavesTaken    decimal.Decimal `gorm:"type:numeric(5,1);not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
