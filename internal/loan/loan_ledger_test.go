package loan

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	findApprovedByEmployeeFn func(ctx context.Context, employeeID string) ([]Loan, error)
	saveFn                   func(ctx context.Context, l *Loan) error
}

func (f *fakeRepo) FindApprovedByEmployee(ctx context.Context, employeeID string) ([]Loan, error) {
	return f.findApprovedByEmployeeFn(ctx, employeeID)
}
func (f *fakeRepo) Save(ctx context.Context, l *Loan) error { return f.saveFn(ctx, l) }

func TestEMIDue(t *testing.T) {
	assert.Equal(t, int64(2000), EMIDue(Loan{Status: StatusApproved, Amount: 24000, MonthlyEMI: 2000}))

	// final installment caps at the remaining principal
	assert.Equal(t, int64(100), EMIDue(Loan{Status: StatusApproved, Amount: 1000, PaidAmount: 900, MonthlyEMI: 200}))

	// fully paid
	assert.Equal(t, int64(0), EMIDue(Loan{Status: StatusApproved, Amount: 1000, PaidAmount: 1000, MonthlyEMI: 200}))

	// only approved loans amortize
	assert.Equal(t, int64(0), EMIDue(Loan{Status: StatusPending, Amount: 1000, MonthlyEMI: 200}))
	assert.Equal(t, int64(0), EMIDue(Loan{Status: StatusClosed, Amount: 1000, PaidAmount: 1000, MonthlyEMI: 200}))
}

func TestTotalEMIDue(t *testing.T) {
	loans := []Loan{
		{Status: StatusApproved, Amount: 24000, MonthlyEMI: 2000},
		{Status: StatusApproved, Amount: 1000, PaidAmount: 900, MonthlyEMI: 200},
		{Status: StatusPending, Amount: 5000, MonthlyEMI: 500},
	}
	assert.Equal(t, int64(2100), TotalEMIDue(loans))
}

func TestLedger_ApplyEMIs_AdvancesBalances(t *testing.T) {
	ctx := context.Background()

	var saved []Loan
	repo := &fakeRepo{
		saveFn: func(ctx context.Context, l *Loan) error {
			saved = append(saved, *l)
			return nil
		},
	}
	lg := NewLedger(repo)

	loans := []Loan{
		{ID: uuid.New(), EmployeeID: uuid.New(), Status: StatusApproved, Amount: 24000, PaidAmount: 4000, MonthlyEMI: 2000},
	}

	applied := lg.ApplyEMIs(ctx, loans)

	assert.Equal(t, int64(2000), applied)
	assert.Len(t, saved, 1)
	assert.Equal(t, int64(6000), saved[0].PaidAmount)
	assert.Equal(t, int64(18000), saved[0].RemainingAmount)
	assert.Equal(t, StatusApproved, saved[0].Status)
	assert.Nil(t, saved[0].ClosedOn)
}

func TestLedger_ApplyEMIs_ClosesPaidOffLoan(t *testing.T) {
	ctx := context.Background()

	var saved Loan
	repo := &fakeRepo{
		saveFn: func(ctx context.Context, l *Loan) error {
			saved = *l
			return nil
		},
	}
	lg := NewLedger(repo)

	loans := []Loan{
		{ID: uuid.New(), EmployeeID: uuid.New(), Status: StatusApproved, Amount: 1000, PaidAmount: 900, MonthlyEMI: 200},
	}

	applied := lg.ApplyEMIs(ctx, loans)

	assert.Equal(t, int64(100), applied)
	assert.Equal(t, int64(1000), saved.PaidAmount)
	assert.Equal(t, int64(0), saved.RemainingAmount)
	assert.Equal(t, StatusClosed, saved.Status)
	assert.NotNil(t, saved.ClosedOn)
}

func TestLedger_ApplyEMIs_FailureOnOneLoanDoesNotStopOthers(t *testing.T) {
	ctx := context.Background()

	badID := uuid.New()
	var savedIDs []uuid.UUID
	repo := &fakeRepo{
		saveFn: func(ctx context.Context, l *Loan) error {
			if l.ID == badID {
				return errors.New("connection reset")
			}
			savedIDs = append(savedIDs, l.ID)
			return nil
		},
	}
	lg := NewLedger(repo)

	goodID := uuid.New()
	loans := []Loan{
		{ID: badID, EmployeeID: uuid.New(), Status: StatusApproved, Amount: 10000, MonthlyEMI: 1000},
		{ID: goodID, EmployeeID: uuid.New(), Status: StatusApproved, Amount: 5000, MonthlyEMI: 500},
	}

	applied := lg.ApplyEMIs(ctx, loans)

	// only the persisted installment counts
	assert.Equal(t, int64(500), applied)
	assert.Equal(t, []uuid.UUID{goodID}, savedIDs)
}

func TestLedger_ApplyEMIs_SkipsLoansWithNothingDue(t *testing.T) {
	ctx := context.Background()

	repo := &fakeRepo{
		saveFn: func(ctx context.Context, l *Loan) error {
			t.Fatalf("unexpected save for loan %s", l.ID)
			return nil
		},
	}
	lg := NewLedger(repo)

	loans := []Loan{
		{ID: uuid.New(), Status: StatusPending, Amount: 5000, MonthlyEMI: 500},
		{ID: uuid.New(), Status: StatusApproved, Amount: 1000, PaidAmount: 1000, MonthlyEMI: 200},
	}

	assert.Equal(t, int64(0), lg.ApplyEMIs(ctx, loans))
}
