package payroll

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"go-payroll/internal/attendance"
	"go-payroll/internal/employee"
	"go-payroll/internal/leave"
	"go-payroll/internal/loan"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/settings"
)

// Calculation is the side-effect-free result of running payroll math for one
// employee and month. It backs the preview endpoint and is the sole input to
// a commit, so calling Calculate any number of times observes nothing and
// changes nothing.
type Calculation struct {
	Employee employee.Employee
	Month    string

	BasicSalary int64
	Allowances  Allowances
	Deductions  Deductions

	Gross           int64
	TotalDeductions int64
	Net             int64

	AttendanceDays decimal.Decimal
	LeavesTaken    decimal.Decimal

	// Loans that a commit would amortize, as loaded for this calculation.
	Loans []loan.Loan
}

// Calculator derives gross, deductions and net pay for one employee/month
// from the read-only CRUD stores. Pure orchestration; all writes live in the
// commit service.
type Calculator struct {
	employees  employee.Repository
	settings   settings.Repository
	attendance attendance.Repository
	leaves     leave.Repository
	loans      loan.Repository
}

func NewCalculator(
	employees employee.Repository,
	settings settings.Repository,
	attendanceRepo attendance.Repository,
	leaves leave.Repository,
	loans loan.Repository,
) *Calculator {
	return &Calculator{
		employees:  employees,
		settings:   settings,
		attendance: attendanceRepo,
		leaves:     leaves,
		loans:      loans,
	}
}

func (c *Calculator) Calculate(ctx context.Context, employeeID, month string) (Calculation, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return Calculation{}, payrollerrors.ErrInvalidEmployeeID
	}

	window, err := attendance.WindowForMonth(month)
	if err != nil {
		return Calculation{}, payrollerrors.ErrInvalidMonthFormat
	}

	var (
		emp *employee.Employee
		cfg settings.PayrollSettings
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		emp, err = c.employees.FindByID(gctx, employeeID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return payrollerrors.ErrEmployeeNotFound
		}
		return err
	})
	g.Go(func() error {
		var err error
		cfg, err = c.settings.Get(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Calculation{}, err
	}

	var (
		records  []attendance.Attendance
		approved []leave.Leave
		loans    []loan.Loan
	)

	g, gctx = errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = c.attendance.FindByEmployeeBetween(gctx, employeeID, window.Start, window.End)
		return err
	})
	g.Go(func() error {
		var err error
		approved, err = c.leaves.FindApprovedOverlapping(gctx, employeeID, window.Start, window.End)
		return err
	})
	g.Go(func() error {
		var err error
		loans, err = c.loans.FindApprovedByEmployee(gctx, employeeID)
		return err
	})
	if err := g.Wait(); err != nil {
		return Calculation{}, err
	}

	summary := attendance.Summarize(records, window)
	lop := ResolveLOP(summary, records, approved)
	allowances, deductions := ResolveCompensation(*emp, cfg)

	deductions.LoanEMI = loan.TotalEMIDue(loans)
	// LOP is tracked but not charged under current policy. Explicit zero,
	// not an omission: a future policy wires dailyRate * lopDays back in.
	deductions.LeaveDeduction = 0

	gross := emp.BaseSalary + allowances.Total()
	totalDeductions := deductions.Total()

	// Net pay is floored at zero; payroll never produces a negative ledger
	// line.
	net := gross - totalDeductions
	if net < 0 {
		net = 0
	}

	return Calculation{
		Employee:        *emp,
		Month:           window.Month,
		BasicSalary:     emp.BaseSalary,
		Allowances:      allowances,
		Deductions:      deductions,
		Gross:           gross,
		TotalDeductions: totalDeductions,
		Net:             net,
		AttendanceDays:  lop.AttendanceDays,
		LeavesTaken:     lop.LOPDays,
		Loans:           loans,
	}, nil
}
