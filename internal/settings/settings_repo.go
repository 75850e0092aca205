package settings

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=settings_repo.go -destination=mock/settings_repo_mock.go -package=mock
type Repository interface {
	Get(ctx context.Context) (PayrollSettings, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Get returns the singleton settings row, or the documented defaults when
// none has been saved yet.
func (r *repository) Get(ctx context.Context) (PayrollSettings, error) {
	var s PayrollSettings
	err := r.db.WithContext(ctx).Order("id ASC").First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Defaults(), nil
		}
		return PayrollSettings{}, err
	}
	return s, nil
}
