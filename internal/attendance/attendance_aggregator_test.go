package attendance

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	attendanceerrors "go-payroll/internal/attendance/errors"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestWindowForMonth(t *testing.T) {
	w, err := WindowForMonth("2025-07")
	assert.NoError(t, err)
	assert.Equal(t, "2025-07", w.Month)
	assert.Equal(t, day(2025, time.July, 1), w.Start)
	assert.Equal(t, day(2025, time.July, 31), w.End)
	assert.Equal(t, 31, w.Days)
}

func TestWindowForMonth_DayCounts(t *testing.T) {
	cases := map[string]int{
		"2025-02": 28,
		"2024-02": 29, // leap year
		"2025-04": 30,
		"2025-12": 31,
	}
	for month, want := range cases {
		w, err := WindowForMonth(month)
		assert.NoError(t, err)
		assert.Equal(t, want, w.Days, month)
	}
}

func TestWindowForMonth_InvalidFormat(t *testing.T) {
	for _, month := range []string{"", "2025", "2025-13", "2025-7", "07-2025", "2025-07-01"} {
		_, err := WindowForMonth(month)
		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidMonthFormat, month)
	}
}

func TestMonthWindow_Contains(t *testing.T) {
	w, _ := WindowForMonth("2025-07")

	assert.True(t, w.Contains(day(2025, time.July, 1)))
	assert.True(t, w.Contains(day(2025, time.July, 31)))
	// time-of-day on the last date must not push it out of the window
	assert.True(t, w.Contains(time.Date(2025, time.July, 31, 23, 59, 0, 0, time.Local)))
	assert.False(t, w.Contains(day(2025, time.June, 30)))
	assert.False(t, w.Contains(day(2025, time.August, 1)))
}

func TestSummarize(t *testing.T) {
	w, _ := WindowForMonth("2025-07")
	emp := uuid.New()

	records := []Attendance{
		{EmployeeID: emp, Date: day(2025, time.July, 1), Status: StatusPresent},
		{EmployeeID: emp, Date: day(2025, time.July, 2), Status: StatusPresent},
		{EmployeeID: emp, Date: day(2025, time.July, 3), Status: StatusHalfDay},
		{EmployeeID: emp, Date: day(2025, time.July, 4), Status: StatusLeave},
		{EmployeeID: emp, Date: day(2025, time.July, 5), Status: StatusAbsent},
		{EmployeeID: emp, Date: day(2025, time.July, 6), Status: StatusOfficialLeave},
	}

	got := Summarize(records, w)
	assert.Equal(t, 2, got.Present)
	assert.Equal(t, 1, got.HalfDay)
	assert.Equal(t, 1, got.Leave)
	assert.Equal(t, 1, got.Absent)
	assert.Equal(t, 1, got.OfficialLeave)
	assert.Equal(t, 31, got.TotalDaysInMonth)
}

func TestSummarize_IgnoresOutOfWindowAndUnknownStatus(t *testing.T) {
	w, _ := WindowForMonth("2025-07")
	emp := uuid.New()

	records := []Attendance{
		{EmployeeID: emp, Date: day(2025, time.June, 30), Status: StatusPresent},
		{EmployeeID: emp, Date: day(2025, time.August, 1), Status: StatusPresent},
		{EmployeeID: emp, Date: day(2025, time.July, 10), Status: "WFH"},
		{EmployeeID: emp, Date: day(2025, time.July, 11), Status: StatusPresent},
	}

	got := Summarize(records, w)
	assert.Equal(t, 1, got.Present)
	assert.Equal(t, 0, got.Leave)
	assert.Equal(t, 0, got.Absent)
}
