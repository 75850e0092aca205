package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent       = "PRESENT"
	StatusAbsent        = "ABSENT"
	StatusLeave         = "LEAVE"
	StatusHalfDay       = "HALFDAY"
	StatusOfficialLeave = "OFFICIAL_LEAVE"
)

// Attendance is one employee's status for one calendar day. At most one row
// per (employee, date). Marked by the attendance surface; read-only here.
type Attendance struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_attendance_employee_date,unique"`
	Date       time.Time `gorm:"type:date;not null;index:idx_attendance_employee_date,unique"`
	Status     string    `gorm:"type:varchar(20);not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
