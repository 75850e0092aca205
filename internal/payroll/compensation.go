package payroll

import (
	"github.com/shopspring/decimal"

	"go-payroll/internal/employee"
	"go-payroll/internal/settings"
)

// Organization-wide flat defaults. Percentage defaults come from
// PayrollSettings.
const (
	defaultDAPercent  = 10
	defaultTaxPercent = 5

	defaultTravelAllowance  = 1500
	defaultMedicalAllowance = 1250
	defaultInsurance        = 500
)

// Allowances are the effective monthly earning lines on top of base salary.
type Allowances struct {
	HRA     int64 `json:"hra"`
	DA      int64 `json:"da"`
	Travel  int64 `json:"travel"`
	Medical int64 `json:"medical"`
	Other   int64 `json:"other"`
}

func (a Allowances) Total() int64 {
	return a.HRA + a.DA + a.Travel + a.Medical + a.Other
}

// Deductions are the effective monthly deduction lines.
type Deductions struct {
	PF             int64 `json:"pf"`
	Tax            int64 `json:"tax"`
	Insurance      int64 `json:"insurance"`
	LoanEMI        int64 `json:"loanEmi"`
	LeaveDeduction int64 `json:"leaveDeduction"`
}

func (d Deductions) Total() int64 {
	return d.PF + d.Tax + d.Insurance + d.LoanEMI + d.LeaveDeduction
}

// ResolveCompensation merges the employee's per-component overrides with the
// organization defaults into the effective allowance and deduction set.
//
// An override wins only when strictly greater than zero. A stored 0 means
// "unset" and falls back to the computed default, so a component cannot be
// explicitly zeroed per employee. Known quirk, kept on purpose until the
// override columns become nullable.
func ResolveCompensation(emp employee.Employee, cfg settings.PayrollSettings) (Allowances, Deductions) {
	allowances := Allowances{
		HRA:     override(emp.HRA, percentOf(emp.BaseSalary, cfg.HRAPercent)),
		DA:      override(emp.DA, percentOf(emp.BaseSalary, defaultDAPercent)),
		Travel:  override(emp.Travel, defaultTravelAllowance),
		Medical: override(emp.Medical, defaultMedicalAllowance),
		Other:   override(emp.OtherAllowance, 0),
	}

	deductions := Deductions{
		PF:        override(emp.PF, percentOf(emp.BaseSalary, cfg.PFEmployerPercent)),
		Tax:       override(emp.Tax, percentOf(emp.BaseSalary, defaultTaxPercent)),
		Insurance: override(emp.Insurance, defaultInsurance),
	}

	return allowances, deductions
}

func override(value, fallback int64) int64 {
	if value > 0 {
		return value
	}
	return fallback
}

// percentOf rounds to the nearest whole currency unit.
func percentOf(base, percent int64) int64 {
	return decimal.NewFromInt(base).
		Mul(decimal.NewFromInt(percent)).
		Div(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}
