package payroll

import (
	"github.com/shopspring/decimal"
)

// NetSalary computes base - deductions + bonus. The result may be
// negative when deductions exceed base plus bonus; it is stored as-is.
func NetSalary(base, deductions, bonus decimal.Decimal) decimal.Decimal {
	return base.Sub(deductions).Add(bonus)
}

// ParseAmount parses a monetary string. Malformed or negative input is
// clamped to zero so a bad deduction or bonus never poisons the net
// salary. Base salary is validated separately and must not rely on
// this clamping.
func ParseAmount(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	amount, err := decimal.NewFromString(s)
	if err != nil || amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}
