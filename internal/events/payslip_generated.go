package events

import "time"

const PayslipGeneratedTopic = "payroll.payslip.generated.v1"

// PayslipGeneratedEvent is enqueued on the outbox once a commit has written
// the salary record and rendered the payslip. The consumer delivers the
// email; delivery is best-effort notification, never part of the ledger.
type PayslipGeneratedEvent struct {
	EventType     string    `json:"event_type"`
	EmployeeID    string    `json:"employee_id"`
	EmployeeName  string    `json:"employee_name"`
	EmployeeEmail string    `json:"employee_email"`
	Month         string    `json:"month"`
	FilePath      string    `json:"file_path"`
	OccurredAt    time.Time `json:"occurred_at"`
}
