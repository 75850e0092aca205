package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-payroll/internal/employee"
	"go-payroll/internal/events"
	"go-payroll/internal/loan"
	"go-payroll/internal/messaging/kafka"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/payslip"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/contextutil"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Preview(ctx context.Context, employeeID, month string) (PreviewResponse, error)
	Generate(ctx context.Context, employeeID, month string) (GenerateResponse, error)
	GenerateAll(ctx context.Context, month, role string) (BatchResponse, error)
	GetSalary(ctx context.Context, employeeID, month string) (SalaryResponse, error)
	PayslipFile(ctx context.Context, employeeID, month string) (string, error)
}

type service struct {
	db        *sql.DB
	calc      *Calculator
	salaries  Repository
	ledger    *loan.Ledger
	employees employee.Repository
	artifacts payslip.Repository
	renderer  payslip.Renderer
	outbox    kafka.OutboxRepository
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	calc *Calculator,
	salaries Repository,
	ledger *loan.Ledger,
	employees employee.Repository,
	artifacts payslip.Repository,
	renderer payslip.Renderer,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:        db,
		calc:      calc,
		salaries:  salaries,
		ledger:    ledger,
		employees: employees,
		artifacts: artifacts,
		renderer:  renderer,
		outbox:    outbox,
		logger:    l,
	}
}

func (s *service) Preview(ctx context.Context, employeeID, month string) (PreviewResponse, error) {
	calc, err := s.calc.Calculate(ctx, employeeID, month)
	if err != nil {
		return PreviewResponse{}, err
	}

	loanLines := make([]LoanLineResponse, 0, len(calc.Loans))
	for _, l := range calc.Loans {
		if due := loan.EMIDue(l); due > 0 {
			loanLines = append(loanLines, LoanLineResponse{
				LoanID:    l.ID.String(),
				EMIDue:    due,
				Remaining: l.Amount - l.PaidAmount,
			})
		}
	}

	return PreviewResponse{
		EmployeeID:      calc.Employee.ID.String(),
		EmployeeName:    calc.Employee.FullName,
		Month:           calc.Month,
		BasicSalary:     calc.BasicSalary,
		Allowances:      calc.Allowances,
		Deductions:      calc.Deductions,
		Gross:           calc.Gross,
		TotalDeductions: calc.TotalDeductions,
		Net:             calc.Net,
		AttendanceDays:  calc.AttendanceDays.StringFixed(1),
		LeavesTaken:     calc.LeavesTaken.StringFixed(1),
		LoanLines:       loanLines,
	}, nil
}

// Generate commits one employee's month: upsert the salary record, advance
// the loan ledgers, render the payslip, upsert the artifact, and queue the
// email notification. The three writes are deliberately NOT wrapped in one
// transaction — the ledger is best-effort sequential, and a half-committed
// month is repaired by re-invoking Generate (it is idempotent on the salary
// record and artifact).
func (s *service) Generate(ctx context.Context, employeeID, month string) (GenerateResponse, error) {
	s.logger.Debug("generate salary requested",
		zap.String("employee_id", employeeID),
		zap.String("month", month),
	)

	calc, err := s.calc.Calculate(ctx, employeeID, month)
	if err != nil {
		s.logger.Warn("generate salary calculation failed",
			zap.String("employee_id", employeeID),
			zap.String("month", month),
			zap.Error(err),
		)
		return GenerateResponse{}, err
	}

	rec, status, err := s.upsertSalaryRecord(ctx, calc)
	if err != nil {
		s.logger.Error("generate salary persist failed",
			zap.String("employee_id", employeeID),
			zap.String("month", month),
			zap.Error(err),
		)
		return GenerateResponse{}, err
	}

	// Loan ledgers advance after the salary line exists. Note there is no
	// per-month amortization guard: a second Generate for the same month
	// charges the EMIs again (see loan.Ledger.ApplyEMIs).
	s.ledger.ApplyEMIs(ctx, calc.Loans)

	filePath, err := s.renderer.Render(payslipData(calc, *rec))
	if err != nil {
		// The salary record is already written. Accepted inconsistency
		// window: callers retry by re-invoking Generate.
		s.logger.Error("payslip render failed",
			zap.String("employee_id", employeeID),
			zap.String("month", month),
			zap.Error(err),
		)
		return GenerateResponse{}, apperror.Wrap(err,
			apperror.CodeExternalSink,
			payrollerrors.ErrPayslipRender.Message,
			payrollerrors.ErrPayslipRender.HTTPStatus,
		)
	}

	artifact, err := s.upsertArtifact(ctx, calc, filePath)
	if err != nil {
		s.logger.Error("payslip artifact persist failed",
			zap.String("employee_id", employeeID),
			zap.String("month", month),
			zap.Error(err),
		)
		return GenerateResponse{}, err
	}

	s.logger.Info("generate salary success",
		zap.String("employee_id", employeeID),
		zap.String("month", month),
		zap.String("status", status),
		zap.Int64("net", rec.Net),
	)

	return GenerateResponse{
		Status:       status,
		EmployeeName: calc.Employee.FullName,
		PayslipID:    artifact.ID.String(),
		Salary:       mapToSalaryResponse(*rec),
	}, nil
}

func (s *service) GetSalary(ctx context.Context, employeeID, month string) (SalaryResponse, error) {
	rec, err := s.salaries.FindByEmployeeAndMonth(ctx, employeeID, month)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SalaryResponse{}, payrollerrors.ErrSalaryNotFound
		}
		return SalaryResponse{}, err
	}
	return mapToSalaryResponse(*rec), nil
}

func (s *service) PayslipFile(ctx context.Context, employeeID, month string) (string, error) {
	a, err := s.artifacts.FindByEmployeeAndMonth(ctx, employeeID, month)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", payrollerrors.ErrPayslipNotFound
		}
		return "", err
	}
	return a.FilePath, nil
}

// upsertSalaryRecord overwrites or creates the month's ledger line. At most
// one record per (employee, month) ever exists.
func (s *service) upsertSalaryRecord(ctx context.Context, calc Calculation) (*SalaryRecord, string, error) {
	status := GenerateStatusCreated

	existing, err := s.salaries.FindByEmployeeAndMonth(ctx, calc.Employee.ID.String(), calc.Month)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	rec := &SalaryRecord{
		ID:         uuid.New(),
		EmployeeID: calc.Employee.ID,
		Month:      calc.Month,
	}
	if err == nil {
		status = GenerateStatusUpdated
		rec = existing
	}

	rec.BasicSalary = calc.BasicSalary
	rec.HRA = calc.Allowances.HRA
	rec.DA = calc.Allowances.DA
	rec.Travel = calc.Allowances.Travel
	rec.Medical = calc.Allowances.Medical
	rec.OtherAllowance = calc.Allowances.Other
	rec.PF = calc.Deductions.PF
	rec.Tax = calc.Deductions.Tax
	rec.Insurance = calc.Deductions.Insurance
	rec.LoanEMI = calc.Deductions.LoanEMI
	rec.LeaveDeduction = calc.Deductions.LeaveDeduction
	rec.Gross = calc.Gross
	rec.TotalDeductions = calc.TotalDeductions
	rec.Net = calc.Net
	rec.AttendanceDays = calc.AttendanceDays
	rec.LeavesTaken = calc.LeavesTaken
	rec.UpdatedAt = time.Now()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, "", err
	}
	defer tx.Rollback()

	qtx := s.salaries.WithTx(tx)
	if status == GenerateStatusCreated {
		err = qtx.Create(ctx, rec)
	} else {
		err = qtx.Update(ctx, rec)
	}
	if err != nil {
		return nil, "", err
	}

	if err := tx.Commit(); err != nil {
		return nil, "", err
	}
	return rec, status, nil
}

// upsertArtifact records the rendered document and queues the notification
// email on the outbox in the same transaction. Actual delivery happens in
// the consumer and is best-effort; only a failure to persist aborts here.
func (s *service) upsertArtifact(ctx context.Context, calc Calculation, filePath string) (*payslip.Artifact, error) {
	artifact := &payslip.Artifact{
		ID:          uuid.New(),
		EmployeeID:  calc.Employee.ID,
		Month:       calc.Month,
		FilePath:    filePath,
		GeneratedAt: time.Now(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.artifacts.WithTx(tx)
	if err := qtx.Upsert(ctx, artifact); err != nil {
		return nil, err
	}

	event := events.PayslipGeneratedEvent{
		EventType:     "payroll.payslip.generated",
		EmployeeID:    calc.Employee.ID.String(),
		EmployeeName:  calc.Employee.FullName,
		EmployeeEmail: calc.Employee.Email,
		Month:         calc.Month,
		FilePath:      filePath,
		OccurredAt:    time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	if s.outbox != nil {
		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     contextutil.GetRequestID(ctx),
			AggregateType: "payslip",
			AggregateID:   artifact.ID.String(),
			EventType:     event.EventType,
			Topic:         events.PayslipGeneratedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("payslip email outbox enqueue failed",
				zap.String("employee_id", event.EmployeeID),
				zap.String("month", event.Month),
				zap.Error(err),
			)
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return artifact, nil
}

func payslipData(calc Calculation, rec SalaryRecord) payslip.Data {
	return payslip.Data{
		EmployeeID:      calc.Employee.ID.String(),
		EmployeeName:    calc.Employee.FullName,
		Month:           calc.Month,
		BasicSalary:     rec.BasicSalary,
		HRA:             rec.HRA,
		DA:              rec.DA,
		Travel:          rec.Travel,
		Medical:         rec.Medical,
		OtherAllowance:  rec.OtherAllowance,
		PF:              rec.PF,
		Tax:             rec.Tax,
		Insurance:       rec.Insurance,
		LoanEMI:         rec.LoanEMI,
		LeaveDeduction:  rec.LeaveDeduction,
		Gross:           rec.Gross,
		TotalDeductions: rec.TotalDeductions,
		Net:             rec.Net,
		AttendanceDays:  rec.AttendanceDays.StringFixed(1),
		LeavesTaken:     rec.LeavesTaken.StringFixed(1),
	}
}
