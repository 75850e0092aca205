package loan

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// EMIDue is the installment one approved loan owes this cycle: the fixed
// monthly EMI, capped at the remaining principal so the final installment
// never overshoots.
func EMIDue(l Loan) int64 {
	if l.Status != StatusApproved {
		return 0
	}
	remaining := l.Amount - l.PaidAmount
	if remaining <= 0 {
		return 0
	}
	if l.MonthlyEMI < remaining {
		return l.MonthlyEMI
	}
	return remaining
}

// TotalEMIDue sums the cycle's installments across loans. Pure; safe for
// preview.
func TotalEMIDue(loans []Loan) int64 {
	var total int64
	for _, l := range loans {
		total += EMIDue(l)
	}
	return total
}

// Ledger advances loan balances on payroll commit.
type Ledger struct {
	repo   Repository
	logger *zap.Logger
}

func NewLedger(repo Repository, logger ...*zap.Logger) *Ledger {
	l := zap.L().Named("loan.ledger")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("loan.ledger")
	}
	return &Ledger{repo: repo, logger: l}
}

// ApplyEMIs charges this cycle's installment on every loan in the list,
// persisting each mutated loan individually. A failure on one loan is logged
// and does not prevent the others from being processed; the caller gets the
// total actually charged.
//
// There is no per-month guard here: applying the same month twice charges
// the EMI twice. Only the salary record is deduplicated upstream. Left as-is
// pending product confirmation, since a re-run may be an intentional re-sync
// of a mis-finalized month.
func (lg *Ledger) ApplyEMIs(ctx context.Context, loans []Loan) int64 {
	var applied int64

	for i := range loans {
		l := &loans[i]
		due := EMIDue(*l)
		if due <= 0 {
			continue
		}

		l.PaidAmount += due
		l.RemainingAmount = l.Amount - l.PaidAmount
		if l.RemainingAmount <= 0 {
			l.RemainingAmount = 0
			l.Status = StatusClosed
			now := time.Now()
			l.ClosedOn = &now
		}

		if err := lg.repo.Save(ctx, l); err != nil {
			lg.logger.Error("apply emi persist failed",
				zap.String("loan_id", l.ID.String()),
				zap.String("employee_id", l.EmployeeID.String()),
				zap.Int64("emi_due", due),
				zap.Error(err),
			)
			continue
		}

		applied += due
		lg.logger.Info("emi applied",
			zap.String("loan_id", l.ID.String()),
			zap.Int64("emi_due", due),
			zap.Int64("remaining", l.RemainingAmount),
			zap.String("status", l.Status),
		)
	}

	return applied
}
