package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-payroll/internal/employee"
	"go-payroll/internal/settings"
)

func TestResolveCompensation_Defaults(t *testing.T) {
	emp := employee.Employee{BaseSalary: 60000}

	allowances, deductions := ResolveCompensation(emp, settings.Defaults())

	assert.Equal(t, int64(12000), allowances.HRA) // 20% of base
	assert.Equal(t, int64(6000), allowances.DA)   // 10% of base
	assert.Equal(t, int64(1500), allowances.Travel)
	assert.Equal(t, int64(1250), allowances.Medical)
	assert.Equal(t, int64(0), allowances.Other)
	assert.Equal(t, int64(20750), allowances.Total())

	assert.Equal(t, int64(7200), deductions.PF) // 12% of base
	assert.Equal(t, int64(3000), deductions.Tax)
	assert.Equal(t, int64(500), deductions.Insurance)
	assert.Equal(t, int64(10700), deductions.Total())
}

func TestResolveCompensation_OverrideWins(t *testing.T) {
	emp := employee.Employee{
		BaseSalary: 60000,
		HRA:        5000, // beats the computed 12000
		Travel:     2000,
		Tax:        1000,
	}

	allowances, deductions := ResolveCompensation(emp, settings.Defaults())

	assert.Equal(t, int64(5000), allowances.HRA)
	assert.Equal(t, int64(2000), allowances.Travel)
	assert.Equal(t, int64(6000), allowances.DA) // untouched, stays default
	assert.Equal(t, int64(1000), deductions.Tax)
	assert.Equal(t, int64(7200), deductions.PF)
}

func TestResolveCompensation_ZeroOverrideFallsBack(t *testing.T) {
	// A stored 0 means "unset", not "explicitly zero". The component falls
	// back to the computed default.
	emp := employee.Employee{BaseSalary: 60000, HRA: 0, Insurance: 0}

	allowances, deductions := ResolveCompensation(emp, settings.Defaults())

	assert.Equal(t, int64(12000), allowances.HRA)
	assert.Equal(t, int64(500), deductions.Insurance)
}

func TestResolveCompensation_SettingsPercentages(t *testing.T) {
	emp := employee.Employee{BaseSalary: 50000}
	cfg := settings.PayrollSettings{HRAPercent: 30, PFEmployerPercent: 10}

	allowances, deductions := ResolveCompensation(emp, cfg)

	assert.Equal(t, int64(15000), allowances.HRA)
	assert.Equal(t, int64(5000), deductions.PF)
}

func TestPercentOf_RoundsToNearestUnit(t *testing.T) {
	// 12% of 33333 = 3999.96, rounds to 4000
	assert.Equal(t, int64(4000), percentOf(33333, 12))
	// 5% of 33330 = 1666.5, half rounds away from zero
	assert.Equal(t, int64(1667), percentOf(33330, 5))
}
