package payroll

import (
	"github.com/shopspring/decimal"

	"go-payroll/internal/attendance"
	"go-payroll/internal/leave"
)

var halfDay = decimal.New(5, -1) // 0.5

// LOPResult carries the month's leave-without-pay count and the units worked.
type LOPResult struct {
	// LOPDays is fractional at half-day granularity: every half day counts
	// 0.5, every uncompensated leave/absent day counts 1.0.
	LOPDays decimal.Decimal
	// AttendanceDays = present + official leave + half days at 0.5 each.
	AttendanceDays decimal.Decimal
}

// ResolveLOP cross-references the month's missed days against approved leave
// windows. A leave/absent day covered by an approved request of any paid
// type is compensated; every other one is a full LOP day.
//
// The monetary deduction for LOP is fixed at 0 by current policy (see the
// calculator) — the count is still computed because leavesTaken is reported
// on the salary record, and a future policy may charge dailyRate * lopDays.
func ResolveLOP(summary attendance.MonthSummary, records []attendance.Attendance, approved []leave.Leave) LOPResult {
	lopDays := decimal.NewFromInt(int64(summary.HalfDay)).Mul(halfDay)

	for _, rec := range records {
		if rec.Status != attendance.StatusLeave && rec.Status != attendance.StatusAbsent {
			continue
		}
		if coveredByPaidLeave(rec, approved) {
			continue
		}
		lopDays = lopDays.Add(decimal.NewFromInt(1))
	}

	worked := decimal.NewFromInt(int64(summary.Present + summary.OfficialLeave)).
		Add(decimal.NewFromInt(int64(summary.HalfDay)).Mul(halfDay))

	return LOPResult{
		LOPDays:        lopDays,
		AttendanceDays: worked,
	}
}

func coveredByPaidLeave(rec attendance.Attendance, approved []leave.Leave) bool {
	for _, req := range approved {
		if req.LeaveType == leave.TypeUnpaid {
			continue
		}
		if req.Covers(rec.Date) {
			return true
		}
	}
	return false
}
