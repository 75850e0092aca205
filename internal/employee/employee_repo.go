package employee

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindActiveByRole(ctx context.Context, role string) ([]Employee, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&e).Error
	return &e, err
}

// FindActiveByRole lists active employees, optionally narrowed to one role.
// Listing order is the batch processing order.
func (r *repository) FindActiveByRole(ctx context.Context, role string) ([]Employee, error) {
	q := r.db.WithContext(ctx).
		Where("status = ?", StatusActive)
	if role != "" {
		q = q.Where("role = ?", role)
	}

	var rows []Employee
	err := q.Order("created_at ASC").Find(&rows).Error
	return rows, err
}
