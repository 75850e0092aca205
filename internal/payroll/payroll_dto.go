package payroll

import "time"

// SalaryResponse mirrors one SalaryRecord. Day counts are decimal strings at
// half-day granularity ("28.5").
type SalaryResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Month      string `json:"month"`

	BasicSalary int64      `json:"basic_salary"`
	Allowances  Allowances `json:"allowances"`
	Deductions  Deductions `json:"deductions"`

	Gross           int64 `json:"gross"`
	TotalDeductions int64 `json:"total_deductions"`
	Net             int64 `json:"net"`

	AttendanceDays string `json:"attendance_days"`
	LeavesTaken    string `json:"leaves_taken"`

	UpdatedAt string `json:"updated_at"`
}

// PreviewResponse is the calculator result for display. Nothing is persisted
// on preview.
type PreviewResponse struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Month        string `json:"month"`

	BasicSalary int64      `json:"basic_salary"`
	Allowances  Allowances `json:"allowances"`
	Deductions  Deductions `json:"deductions"`

	Gross           int64 `json:"gross"`
	TotalDeductions int64 `json:"total_deductions"`
	Net             int64 `json:"net"`

	AttendanceDays string `json:"attendance_days"`
	LeavesTaken    string `json:"leaves_taken"`

	// Loans a commit would amortize, with this cycle's installment.
	LoanLines []LoanLineResponse `json:"loan_lines"`
}

type LoanLineResponse struct {
	LoanID    string `json:"loan_id"`
	EMIDue    int64  `json:"emi_due"`
	Remaining int64  `json:"remaining"`
}

const (
	GenerateStatusCreated = "created"
	GenerateStatusUpdated = "updated"
)

type GenerateRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	Month      string `json:"month" binding:"required"`
}

type GenerateResponse struct {
	Status       string         `json:"status"` // created | updated
	EmployeeName string         `json:"employee_name"`
	PayslipID    string         `json:"payslip_id"`
	Salary       SalaryResponse `json:"salary"`
}

type GenerateAllRequest struct {
	Month string `json:"month" binding:"required"`
	Role  string `json:"role"`
}

type BatchFailure struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Error        string `json:"error"`
}

// BatchResponse reports one batch run. TotalEmployees distinguishes an empty
// population from a batch where every employee failed.
type BatchResponse struct {
	Month          string             `json:"month"`
	TotalEmployees int                `json:"total_employees"`
	ProcessedCount int                `json:"processed_count"`
	FailedCount    int                `json:"failed_count"`
	Processed      []GenerateResponse `json:"processed"`
	Failures       []BatchFailure     `json:"failures"`
}

func mapToSalaryResponse(rec SalaryRecord) SalaryResponse {
	return SalaryResponse{
		ID:          rec.ID.String(),
		EmployeeID:  rec.EmployeeID.String(),
		Month:       rec.Month,
		BasicSalary: rec.BasicSalary,
		Allowances: Allowances{
			HRA:     rec.HRA,
			DA:      rec.DA,
			Travel:  rec.Travel,
			Medical: rec.Medical,
			Other:   rec.OtherAllowance,
		},
		Deductions: Deductions{
			PF:             rec.PF,
			Tax:            rec.Tax,
			Insurance:      rec.Insurance,
			LoanEMI:        rec.LoanEMI,
			LeaveDeduction: rec.LeaveDeduction,
		},
		Gross:           rec.Gross,
		TotalDeductions: rec.TotalDeductions,
		Net:             rec.Net,
		AttendanceDays:  rec.AttendanceDays.StringFixed(1),
		LeavesTaken:     rec.LeavesTaken.StringFixed(1),
		UpdatedAt:       rec.UpdatedAt.Format(time.RFC3339),
	}
}
