package attendance

import (
	"time"

	attendanceerrors "go-payroll/internal/attendance/errors"
)

// MonthWindow is the inclusive calendar window for one payroll month.
// Bounds are computed in local time because attendance is marked by calendar
// date, not instant; a UTC window would shift days near midnight.
type MonthWindow struct {
	Month string    // YYYY-MM
	Start time.Time // first day, 00:00 local
	End   time.Time // last day, 00:00 local
	Days  int       // day-of-month of End (28..31)
}

func WindowForMonth(month string) (MonthWindow, error) {
	start, err := time.ParseInLocation("2006-01", month, time.Local)
	if err != nil {
		return MonthWindow{}, attendanceerrors.ErrInvalidMonthFormat
	}

	end := start.AddDate(0, 1, -1)
	return MonthWindow{
		Month: month,
		Start: start,
		End:   end,
		Days:  end.Day(),
	}, nil
}

// Contains reports whether d falls inside the window, comparing by calendar
// date only.
func (w MonthWindow) Contains(d time.Time) bool {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.Local)
	return !day.Before(w.Start) && !day.After(w.End)
}

// MonthSummary is the reduction of one employee's daily records for one month
// into counts per status category.
type MonthSummary struct {
	Present          int
	OfficialLeave    int
	HalfDay          int
	Leave            int
	Absent           int
	TotalDaysInMonth int
}

// Summarize reduces the month's records into per-status counts. Records
// outside the window or with an unknown status are ignored rather than
// failing the whole month.
func Summarize(records []Attendance, window MonthWindow) MonthSummary {
	summary := MonthSummary{TotalDaysInMonth: window.Days}

	for _, rec := range records {
		if !window.Contains(rec.Date) {
			continue
		}
		switch rec.Status {
		case StatusPresent:
			summary.Present++
		case StatusOfficialLeave:
			summary.OfficialLeave++
		case StatusHalfDay:
			summary.HalfDay++
		case StatusLeave:
			summary.Leave++
		case StatusAbsent:
			summary.Absent++
		}
	}

	return summary
}
