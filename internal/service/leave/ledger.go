package leave

import (
	"github.com/staffsync-hq/staffsync-backend-go/internal/domain/leave"
)

// QuotaLedger derives per-type leave balances from quota rows and
// applications. It is pure: usage is always recomputed from the
// application snapshot, never read from a stored counter.
type QuotaLedger struct {
}

func NewQuotaLedger() *QuotaLedger {
	return &QuotaLedger{}
}

// UsedDaysByType sums TotalDays of approved applications per leave type.
// Only approved applications consume quota; pending and rejected ones do
// not reduce the remaining balance.
func (l *QuotaLedger) UsedDaysByType(applications []leave.LeaveApplication) map[string]int {
	used := make(map[string]int)
	for _, app := range applications {
		if app.Status != leave.ApplicationStatusApproved {
			continue
		}
		used[app.LeaveTypeID] += app.TotalDays
	}
	return used
}

// PendingDaysByType sums TotalDays of still-pending applications per leave
// type, so callers can warn about requests that would overrun the balance
// once approved.
func (l *QuotaLedger) PendingDaysByType(applications []leave.LeaveApplication) map[string]int {
	pending := make(map[string]int)
	for _, app := range applications {
		if app.Status != leave.ApplicationStatusPending {
			continue
		}
		pending[app.LeaveTypeID] += app.TotalDays
	}
	return pending
}

// Remaining returns the balance left on a quota. The result may be
// negative when more days were approved than allotted; it is surfaced
// as-is so callers can flag over-quota.
func Remaining(totalQuota, usedDays int) int {
	return totalQuota - usedDays
}

// PercentRemaining expresses the remaining balance as a percentage of the
// total quota. A zero total quota yields 0 rather than dividing by zero.
func PercentRemaining(totalQuota, remaining int) float64 {
	if totalQuota == 0 {
		return 0
	}
	return float64(remaining) / float64(totalQuota) * 100
}

// Balances resolves every quota row into a derived balance view. A quota
// whose leave type has no metadata resolves to the "Unknown Leave"
// placeholder and the default color instead of failing.
func (l *QuotaLedger) Balances(
	quotas []leave.LeaveQuota,
	types []leave.LeaveType,
	applications []leave.LeaveApplication,
) []leave.BalanceResponse {
	typesByID := make(map[string]leave.LeaveType, len(types))
	for _, t := range types {
		typesByID[t.ID] = t
	}

	used := l.UsedDaysByType(applications)
	pending := l.PendingDaysByType(applications)

	balances := make([]leave.BalanceResponse, 0, len(quotas))
	for _, quota := range quotas {
		name := leave.UnknownTypeName
		color := leave.DefaultColor
		isAnnual := false

		if t, ok := typesByID[quota.LeaveTypeID]; ok {
			name = t.Name
			if t.Color != nil && *t.Color != "" {
				color = *t.Color
			}
			isAnnual = t.IsAnnual
		}

		usedDays := used[quota.LeaveTypeID]
		remaining := Remaining(quota.TotalQuota, usedDays)

		balances = append(balances, leave.BalanceResponse{
			LeaveTypeID:      quota.LeaveTypeID,
			LeaveTypeName:    name,
			Color:            color,
			IsAnnual:         isAnnual,
			Year:             quota.Year,
			TotalQuota:       quota.TotalQuota,
			UsedDays:         usedDays,
			PendingDays:      pending[quota.LeaveTypeID],
			Remaining:        remaining,
			PercentRemaining: PercentRemaining(quota.TotalQuota, remaining),
		})
	}

	return balances
}
