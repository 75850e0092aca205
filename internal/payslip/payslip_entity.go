package payslip

import (
	"time"

	"github.com/google/uuid"
)

// Artifact tracks the generated payslip document and its delivery state for
// one (employee, month). Regenerated in place on re-commit, never
// duplicated.
type Artifact struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_payslips_employee_month,unique"`
	Month      string    `gorm:"type:varchar(7);not null;index:idx_payslips_employee_month,unique"`

	FilePath    string    `gorm:"type:text;not null"`
	GeneratedAt time.Time `gorm:"not null"`

	EmailSent bool `gorm:"not null;default:false"`
	SentOn    *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
