package attendance

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/staffsync-hq/staffsync-backend-go/internal/domain/attendance"
)

// MonthlyMetrics is the derived view over one employee-month of records.
type MonthlyMetrics struct {
	PresentDays         int
	AbsentDays          int
	HalfDays            int
	LeaveDays           int
	LateDays            int
	AverageWorkingHours string
	AttendanceRatio     int
}

// MetricsCalculator computes monthly attendance metrics. It is pure: it
// holds only policy constants and never touches storage.
type MetricsCalculator struct {
	expectedWorkingDays int
	lateCutoffMinutes   int
}

// NewMetricsCalculator builds a calculator from the configured policy.
// lateCutoff is a "HH:MM" local time-of-day; a check-in strictly after it
// counts as late.
func NewMetricsCalculator(expectedWorkingDays int, lateCutoff string) (*MetricsCalculator, error) {
	t, err := time.Parse("15:04", lateCutoff)
	if err != nil {
		return nil, fmt.Errorf("invalid late cutoff %q: %w", lateCutoff, err)
	}
	if expectedWorkingDays < 0 {
		return nil, fmt.Errorf("expected working days must not be negative, got %d", expectedWorkingDays)
	}
	return &MetricsCalculator{
		expectedWorkingDays: expectedWorkingDays,
		lateCutoffMinutes:   t.Hour()*60 + t.Minute(),
	}, nil
}

// ExpectedWorkingDays returns the configured ratio denominator.
func (c *MetricsCalculator) ExpectedWorkingDays() int {
	return c.expectedWorkingDays
}

// Summarize aggregates a snapshot of records into monthly metrics.
//
// Records with a malformed working-hours string are skipped in the
// average, not fatal. Records without a check-in are never counted late.
// Every ratio denominator guards against zero.
func (c *MetricsCalculator) Summarize(records []attendance.Attendance) MonthlyMetrics {
	var m MonthlyMetrics
	totalWorkedMinutes := 0

	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusPresent:
			m.PresentDays++
		case attendance.StatusAbsent:
			m.AbsentDays++
		case attendance.StatusHalfDay:
			m.HalfDays++
		case attendance.StatusLeave:
			m.LeaveDays++
		}

		if rec.CheckIn != nil {
			checkInMinutes := rec.CheckIn.Hour()*60 + rec.CheckIn.Minute()
			if checkInMinutes > c.lateCutoffMinutes {
				m.LateDays++
			}
		}

		if rec.WorkingHours != nil {
			minutes, err := ParseWorkingHours(*rec.WorkingHours)
			if err != nil {
				continue
			}
			totalWorkedMinutes += minutes
		}
	}

	averageMinutes := 0
	if m.PresentDays > 0 {
		averageMinutes = totalWorkedMinutes / m.PresentDays
	}
	m.AverageWorkingHours = FormatWorkingHours(averageMinutes)

	if c.expectedWorkingDays > 0 {
		ratio := float64(m.PresentDays) / float64(c.expectedWorkingDays) * 100
		m.AttendanceRatio = int(math.Round(ratio))
	}

	return m
}

var workingHoursRegex = regexp.MustCompile(`^(\d+)h (\d+)m$`)

// ParseWorkingHours parses a "{h}h {m}m" duration string into minutes.
func ParseWorkingHours(s string) (int, error) {
	matches := workingHoursRegex.FindStringSubmatch(s)
	if matches == nil {
		return 0, fmt.Errorf("malformed working hours duration: %q", s)
	}
	hours, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, fmt.Errorf("malformed working hours duration: %q", s)
	}
	minutes, err := strconv.Atoi(matches[2])
	if err != nil {
		return 0, fmt.Errorf("malformed working hours duration: %q", s)
	}
	return hours*60 + minutes, nil
}

// FormatWorkingHours renders minutes in the "{h}h {m}m" display format.
func FormatWorkingHours(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
