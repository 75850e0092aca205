package settings

import "time"

// Defaults used when no settings row has been saved yet.
const (
	DefaultHRAPercent        = 20
	DefaultPFEmployerPercent = 12
)

// PayrollSettings is the single organization-wide defaults record. It is
// injected into the compensation resolver as a plain value so the calculator
// stays pure.
type PayrollSettings struct {
	ID                uint  `gorm:"primaryKey"`
	HRAPercent        int64 `gorm:"type:int;not null;default:20"`
	PFEmployerPercent int64 `gorm:"type:int;not null;default:12"`
	// Kept for the statutory table even though the engine does not charge it
	// directly yet.
	ProfessionalTax int64 `gorm:"type:bigint;not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func Defaults() PayrollSettings {
	return PayrollSettings{
		HRAPercent:        DefaultHRAPercent,
		PFEmployerPercent: DefaultPFEmployerPercent,
	}
}
