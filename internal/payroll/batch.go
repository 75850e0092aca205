package payroll

import (
	"context"

	"go.uber.org/zap"

	"go-payroll/internal/attendance"
)

// GenerateAll runs the commit across the active employees of one role (all
// active employees when role is empty), strictly sequentially: one employee
// is fully committed, loans included, before the next starts. One employee's
// failure is collected and never aborts the batch.
func (s *service) GenerateAll(ctx context.Context, month, role string) (BatchResponse, error) {
	if _, err := attendance.WindowForMonth(month); err != nil {
		return BatchResponse{}, err
	}

	employees, err := s.employees.FindActiveByRole(ctx, role)
	if err != nil {
		return BatchResponse{}, err
	}

	result := BatchResponse{
		Month:          month,
		TotalEmployees: len(employees),
		Processed:      make([]GenerateResponse, 0, len(employees)),
		Failures:       make([]BatchFailure, 0),
	}

	for _, emp := range employees {
		generated, err := s.Generate(ctx, emp.ID.String(), month)
		if err != nil {
			s.logger.Warn("batch employee failed",
				zap.String("employee_id", emp.ID.String()),
				zap.String("month", month),
				zap.Error(err),
			)
			result.Failures = append(result.Failures, BatchFailure{
				EmployeeID:   emp.ID.String(),
				EmployeeName: emp.FullName,
				Error:        err.Error(),
			})
			continue
		}
		result.Processed = append(result.Processed, generated)
	}

	result.ProcessedCount = len(result.Processed)
	result.FailedCount = len(result.Failures)

	s.logger.Info("batch run finished",
		zap.String("month", month),
		zap.String("role", role),
		zap.Int("total", result.TotalEmployees),
		zap.Int("processed", result.ProcessedCount),
		zap.Int("failed", result.FailedCount),
	)

	return result, nil
}
