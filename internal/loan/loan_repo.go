package loan

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=loan_repo.go -destination=mock/loan_repo_mock.go -package=mock
type Repository interface {
	FindApprovedByEmployee(ctx context.Context, employeeID string) ([]Loan, error)
	Save(ctx context.Context, l *Loan) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindApprovedByEmployee(ctx context.Context, employeeID string) ([]Loan, error) {
	var rows []Loan
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("status = ?", StatusApproved).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

// Save overwrites the whole loan row.
func (r *repository) Save(ctx context.Context, l *Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}
