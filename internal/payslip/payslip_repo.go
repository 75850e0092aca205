package payslip

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payslip_repo.go -destination=mock/payslip_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindByEmployeeAndMonth(ctx context.Context, employeeID, month string) (*Artifact, error)
	Upsert(ctx context.Context, a *Artifact) error
	MarkEmailSent(ctx context.Context, employeeID, month string, at time.Time) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) FindByEmployeeAndMonth(ctx context.Context, employeeID, month string) (*Artifact, error) {
	var a Artifact
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("month = ?", month).
		First(&a).Error
	return &a, err
}

// Upsert creates the (employee, month) artifact or refreshes the existing
// row's path and timestamp. Delivery state resets: a regenerated payslip has
// not been mailed yet.
func (r *repository) Upsert(ctx context.Context, a *Artifact) error {
	existing, err := r.FindByEmployeeAndMonth(ctx, a.EmployeeID.String(), a.Month)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.db.WithContext(ctx).Create(a).Error
		}
		return err
	}

	existing.FilePath = a.FilePath
	existing.GeneratedAt = a.GeneratedAt
	existing.EmailSent = false
	existing.SentOn = nil
	if err := r.db.WithContext(ctx).Save(existing).Error; err != nil {
		return err
	}
	*a = *existing
	return nil
}

func (r *repository) MarkEmailSent(ctx context.Context, employeeID, month string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&Artifact{}).
		Where("employee_id = ?", employeeID).
		Where("month = ?", month).
		Updates(map[string]any{
			"email_sent": true,
			"sent_on":    at,
		}).Error
}
