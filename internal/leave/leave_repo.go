package leave

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	FindApprovedOverlapping(ctx context.Context, employeeID string, from, to time.Time) ([]Leave, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindApprovedOverlapping returns approved requests whose inclusive range
// touches [from, to].
func (r *repository) FindApprovedOverlapping(ctx context.Context, employeeID string, from, to time.Time) ([]Leave, error) {
	var rows []Leave
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("status = ?", StatusApproved).
		Where("from_date <= ? AND to_date >= ?", to.Format("2006-01-02"), from.Format("2006-01-02")).
		Order("from_date ASC").
		Find(&rows).Error
	return rows, err
}
