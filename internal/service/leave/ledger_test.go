package leave

import (
	"testing"
	"time"

	"github.com/staffsync-hq/staffsync-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func application(leaveTypeID string, status leave.ApplicationStatus, totalDays int) leave.LeaveApplication {
	return leave.LeaveApplication{
		LeaveTypeID: leaveTypeID,
		Status:      status,
		TotalDays:   totalDays,
	}
}

func TestUsedDaysByType_OnlyApprovedCount(t *testing.T) {
	ledger := NewQuotaLedger()

	apps := []leave.LeaveApplication{
		application("annual", leave.ApplicationStatusApproved, 3),
		application("annual", leave.ApplicationStatusApproved, 2),
		application("annual", leave.ApplicationStatusPending, 4),
		application("annual", leave.ApplicationStatusRejected, 5),
		application("sick", leave.ApplicationStatusApproved, 1),
	}

	used := ledger.UsedDaysByType(apps)

	assert.Equal(t, 5, used["annual"])
	assert.Equal(t, 1, used["sick"])
}

func TestPendingDaysByType(t *testing.T) {
	ledger := NewQuotaLedger()

	apps := []leave.LeaveApplication{
		application("annual", leave.ApplicationStatusPending, 4),
		application("annual", leave.ApplicationStatusApproved, 2),
		application("sick", leave.ApplicationStatusRejected, 1),
	}

	pending := ledger.PendingDaysByType(apps)

	assert.Equal(t, 4, pending["annual"])
	assert.Equal(t, 0, pending["sick"])
}

func TestRemaining_NegativeSurfaced(t *testing.T) {
	assert.Equal(t, 7, Remaining(12, 5))
	assert.Equal(t, -3, Remaining(2, 5))
	assert.Equal(t, 0, Remaining(5, 5))
}

func TestPercentRemaining(t *testing.T) {
	assert.InDelta(t, 58.33, PercentRemaining(12, 7), 0.01)
	assert.Equal(t, float64(100), PercentRemaining(10, 10))
	assert.Equal(t, float64(-50), PercentRemaining(2, -1))
}

func TestPercentRemaining_ZeroQuota(t *testing.T) {
	// Division-by-zero guard: zero total quota always reads 0%.
	assert.Equal(t, float64(0), PercentRemaining(0, 0))
	assert.Equal(t, float64(0), PercentRemaining(0, -4))
	assert.Equal(t, float64(0), PercentRemaining(0, 10))
}

func TestBalances_ResolvesMetadata(t *testing.T) {
	ledger := NewQuotaLedger()

	red := "#EF4444"
	types := []leave.LeaveType{
		{ID: "annual", Name: "Annual Leave", Color: &red, IsAnnual: true},
	}
	quotas := []leave.LeaveQuota{
		{LeaveTypeID: "annual", Year: 2024, TotalQuota: 12},
	}
	apps := []leave.LeaveApplication{
		application("annual", leave.ApplicationStatusApproved, 5),
		application("annual", leave.ApplicationStatusPending, 2),
	}

	balances := ledger.Balances(quotas, types, apps)
	require.Len(t, balances, 1)

	b := balances[0]
	assert.Equal(t, "Annual Leave", b.LeaveTypeName)
	assert.Equal(t, "#EF4444", b.Color)
	assert.True(t, b.IsAnnual)
	assert.Equal(t, 12, b.TotalQuota)
	assert.Equal(t, 5, b.UsedDays)
	assert.Equal(t, 2, b.PendingDays)
	assert.Equal(t, 7, b.Remaining)
	assert.InDelta(t, 58.33, b.PercentRemaining, 0.01)
}

func TestBalances_UnknownTypePlaceholder(t *testing.T) {
	ledger := NewQuotaLedger()

	quotas := []leave.LeaveQuota{
		{LeaveTypeID: "ghost", Year: 2024, TotalQuota: 6},
	}

	balances := ledger.Balances(quotas, nil, nil)
	require.Len(t, balances, 1)

	assert.Equal(t, "Unknown Leave", balances[0].LeaveTypeName)
	assert.Equal(t, "#3B82F6", balances[0].Color)
	assert.Equal(t, 6, balances[0].Remaining)
}

func TestBalances_TypeWithoutColorGetsDefault(t *testing.T) {
	ledger := NewQuotaLedger()

	types := []leave.LeaveType{
		{ID: "unpaid", Name: "Unpaid Leave"},
	}
	quotas := []leave.LeaveQuota{
		{LeaveTypeID: "unpaid", Year: 2024, TotalQuota: 0},
	}
	apps := []leave.LeaveApplication{
		application("unpaid", leave.ApplicationStatusApproved, 2),
	}

	balances := ledger.Balances(quotas, types, apps)
	require.Len(t, balances, 1)

	assert.Equal(t, leave.DefaultColor, balances[0].Color)
	// Over-applied against a zero quota: negative remaining, 0 percent.
	assert.Equal(t, -2, balances[0].Remaining)
	assert.Equal(t, float64(0), balances[0].PercentRemaining)
}

func TestInclusiveDaySpan(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		require.NoError(t, err)
		return d
	}

	assert.Equal(t, 1, leave.InclusiveDaySpan(day("2024-03-04"), day("2024-03-04")))
	assert.Equal(t, 5, leave.InclusiveDaySpan(day("2024-03-04"), day("2024-03-08")))
	assert.Equal(t, 0, leave.InclusiveDaySpan(day("2024-03-08"), day("2024-03-04")))
	// Spans a month boundary.
	assert.Equal(t, 3, leave.InclusiveDaySpan(day("2024-02-28"), day("2024-03-01")))
}
