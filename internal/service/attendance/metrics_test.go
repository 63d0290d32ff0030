package attendance

import (
	"testing"
	"time"

	"github.com/staffsync-hq/staffsync-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCalculator(t *testing.T, expectedDays int) *MetricsCalculator {
	t.Helper()
	calc, err := NewMetricsCalculator(expectedDays, "09:30")
	require.NoError(t, err)
	return calc
}

func recordAt(status attendance.Status, checkIn string, workingHours string) attendance.Attendance {
	rec := attendance.Attendance{Status: status}
	if checkIn != "" {
		t, err := time.Parse(time.RFC3339, checkIn)
		if err != nil {
			panic(err)
		}
		rec.CheckIn = &t
	}
	if workingHours != "" {
		rec.WorkingHours = &workingHours
	}
	return rec
}

func TestNewMetricsCalculator_InvalidCutoff(t *testing.T) {
	_, err := NewMetricsCalculator(22, "25:99")
	assert.Error(t, err)

	_, err = NewMetricsCalculator(-1, "09:30")
	assert.Error(t, err)
}

func TestSummarize_EmptyRecords(t *testing.T) {
	calc := newTestCalculator(t, 22)

	m := calc.Summarize(nil)

	assert.Equal(t, 0, m.PresentDays)
	assert.Equal(t, 0, m.LeaveDays)
	assert.Equal(t, 0, m.LateDays)
	assert.Equal(t, "0h 0m", m.AverageWorkingHours)
	assert.Equal(t, 0, m.AttendanceRatio)
}

func TestSummarize_SingleLatePresent(t *testing.T) {
	calc := newTestCalculator(t, 22)

	records := []attendance.Attendance{
		recordAt(attendance.StatusPresent, "2024-03-04T09:45:00Z", "8h 0m"),
	}

	m := calc.Summarize(records)

	assert.Equal(t, 1, m.PresentDays)
	assert.Equal(t, 1, m.LateDays)
	assert.Equal(t, "8h 0m", m.AverageWorkingHours)
	assert.Equal(t, 5, m.AttendanceRatio) // round(1/22*100)
}

func TestSummarize_CutoffIsNotLate(t *testing.T) {
	calc := newTestCalculator(t, 22)

	// Exactly 09:30 is on time; 09:31 is late.
	records := []attendance.Attendance{
		recordAt(attendance.StatusPresent, "2024-03-04T09:30:00Z", "8h 0m"),
		recordAt(attendance.StatusPresent, "2024-03-05T09:31:00Z", "8h 0m"),
	}

	m := calc.Summarize(records)
	assert.Equal(t, 1, m.LateDays)
}

func TestSummarize_MissingCheckInNotLate(t *testing.T) {
	calc := newTestCalculator(t, 22)

	records := []attendance.Attendance{
		recordAt(attendance.StatusLeave, "", ""),
		recordAt(attendance.StatusAbsent, "", ""),
	}

	m := calc.Summarize(records)
	assert.Equal(t, 0, m.LateDays)
	assert.Equal(t, 1, m.LeaveDays)
	assert.Equal(t, 1, m.AbsentDays)
}

func TestSummarize_MalformedDurationSkipped(t *testing.T) {
	calc := newTestCalculator(t, 22)

	records := []attendance.Attendance{
		recordAt(attendance.StatusPresent, "2024-03-04T08:55:00Z", "8h 0m"),
		recordAt(attendance.StatusPresent, "2024-03-05T08:50:00Z", "eight hours"),
	}

	m := calc.Summarize(records)

	// Malformed duration is skipped in the sum, present days still count.
	assert.Equal(t, 2, m.PresentDays)
	assert.Equal(t, "4h 0m", m.AverageWorkingHours)
}

func TestSummarize_AverageAcrossPresentDays(t *testing.T) {
	calc := newTestCalculator(t, 22)

	records := []attendance.Attendance{
		recordAt(attendance.StatusPresent, "2024-03-04T09:00:00Z", "8h 30m"),
		recordAt(attendance.StatusPresent, "2024-03-05T09:05:00Z", "7h 30m"),
	}

	m := calc.Summarize(records)
	assert.Equal(t, "8h 0m", m.AverageWorkingHours)
}

func TestSummarize_StatusCountsAreExclusive(t *testing.T) {
	calc := newTestCalculator(t, 22)

	records := []attendance.Attendance{
		recordAt(attendance.StatusPresent, "2024-03-04T09:00:00Z", "8h 0m"),
		recordAt(attendance.StatusLeave, "", ""),
		recordAt(attendance.StatusHalfDay, "2024-03-06T09:00:00Z", "4h 0m"),
		recordAt(attendance.StatusAbsent, "", ""),
	}

	m := calc.Summarize(records)

	// A record contributes to exactly one status bucket.
	assert.LessOrEqual(t, m.PresentDays+m.LeaveDays, len(records))
	assert.Equal(t, len(records), m.PresentDays+m.LeaveDays+m.HalfDays+m.AbsentDays)
}

func TestSummarize_ZeroExpectedWorkingDays(t *testing.T) {
	calc := newTestCalculator(t, 0)

	records := []attendance.Attendance{
		recordAt(attendance.StatusPresent, "2024-03-04T09:00:00Z", "8h 0m"),
	}

	m := calc.Summarize(records)
	assert.Equal(t, 0, m.AttendanceRatio)
}

func TestSummarize_Idempotent(t *testing.T) {
	calc := newTestCalculator(t, 22)

	records := []attendance.Attendance{
		recordAt(attendance.StatusPresent, "2024-03-04T09:45:00Z", "8h 15m"),
		recordAt(attendance.StatusLeave, "", ""),
		recordAt(attendance.StatusPresent, "2024-03-06T09:10:00Z", "7h 45m"),
	}

	first := calc.Summarize(records)
	second := calc.Summarize(records)
	assert.Equal(t, first, second)
}

func TestSummarize_FullMonthRatio(t *testing.T) {
	calc := newTestCalculator(t, 22)

	records := make([]attendance.Attendance, 0, 22)
	for i := 0; i < 22; i++ {
		records = append(records, recordAt(attendance.StatusPresent, "2024-03-04T09:00:00Z", "8h 0m"))
	}

	m := calc.Summarize(records)
	assert.Equal(t, 100, m.AttendanceRatio)
}

func TestParseWorkingHours(t *testing.T) {
	cases := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"8h 0m", 480, false},
		{"0h 0m", 0, false},
		{"7h 45m", 465, false},
		{"10h 5m", 605, false},
		{"8h", 0, true},
		{"8h0m", 0, true},
		{"h m", 0, true},
		{"", 0, true},
		{"-1h 0m", 0, true},
		{"eight hours", 0, true},
	}
	for _, c := range cases {
		got, err := ParseWorkingHours(c.input)
		if c.wantErr {
			assert.Error(t, err, "input %q", c.input)
			continue
		}
		require.NoError(t, err, "input %q", c.input)
		assert.Equal(t, c.want, got, "input %q", c.input)
	}
}

func TestWorkingHoursRoundTrip(t *testing.T) {
	for _, minutes := range []int{0, 1, 59, 60, 61, 465, 480, 1439, 2000} {
		formatted := FormatWorkingHours(minutes)
		parsed, err := ParseWorkingHours(formatted)
		require.NoError(t, err, "minutes %d", minutes)
		assert.Equal(t, minutes, parsed, "round trip for %d minutes", minutes)
	}
}

func TestFormatWorkingHours_NegativeClamped(t *testing.T) {
	assert.Equal(t, "0h 0m", FormatWorkingHours(-30))
}
