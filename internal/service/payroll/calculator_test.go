package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(t *testing.T, s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestNetSalary(t *testing.T) {
	net := NetSalary(dec(t, "50000"), dec(t, "2000"), dec(t, "1000"))
	assert.True(t, net.Equal(dec(t, "49000")), "expected 49000, got %s", net)
}

func TestNetSalary_ZeroExtras(t *testing.T) {
	net := NetSalary(dec(t, "50000"), decimal.Zero, decimal.Zero)
	assert.True(t, net.Equal(dec(t, "50000")))
}

func TestNetSalary_MayGoNegative(t *testing.T) {
	// Deductions above base plus bonus are surfaced, not clamped.
	net := NetSalary(dec(t, "1000"), dec(t, "5000"), dec(t, "500"))
	assert.True(t, net.Equal(dec(t, "-3500")))
}

func TestNetSalary_DecimalPrecision(t *testing.T) {
	net := NetSalary(dec(t, "1234.56"), dec(t, "0.06"), dec(t, "0.50"))
	assert.True(t, net.Equal(dec(t, "1235.00")), "expected 1235.00, got %s", net)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain integer", "2000", "2000"},
		{"decimal fraction", "1999.99", "1999.99"},
		{"empty clamps to zero", "", "0"},
		{"garbage clamps to zero", "abc", "0"},
		{"negative clamps to zero", "-500", "0"},
		{"zero stays zero", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAmount(tt.input)
			assert.True(t, got.Equal(dec(t, tt.want)), "ParseAmount(%q) = %s, want %s", tt.input, got, tt.want)
		})
	}
}
