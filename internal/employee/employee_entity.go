package employee

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// Employee is owned by the HR management surface; the payroll engine only
// ever reads it. Money columns are whole currency units.
//
// Override columns default to 0, and 0 means "no override, use the
// organization default". An employee cannot explicitly zero out a component
// this way; that quirk is inherited policy, see payroll.ResolveCompensation.
type Employee struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName string    `gorm:"type:varchar(120);not null"`
	Email    string    `gorm:"uniqueIndex"`
	Role     string    `gorm:"type:varchar(40);not null;index:idx_employees_role_status"`
	Status   string    `gorm:"type:varchar(20);not null;default:'ACTIVE';index:idx_employees_role_status"`

	BaseSalary int64 `gorm:"type:bigint;not null;default:0"`

	// Allowance overrides
	HRA            int64 `gorm:"type:bigint;not null;default:0"`
	DA             int64 `gorm:"type:bigint;not null;default:0"`
	Travel         int64 `gorm:"type:bigint;not null;default:0"`
	Medical        int64 `gorm:"type:bigint;not null;default:0"`
	OtherAllowance int64 `gorm:"type:bigint;not null;default:0"`

	// Deduction overrides
	PF        int64 `gorm:"type:bigint;not null;default:0"`
	Tax       int64 `gorm:"type:bigint;not null;default:0"`
	Insurance int64 `gorm:"type:bigint;not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
