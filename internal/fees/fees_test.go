package fees

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmountTotal(t *testing.T) {
	cases := map[string]string{
		"":        "0",
		"   ":     "0",
		"abc":     "0",
		"12.5":    "12.5",
		" 400 ":   "400",
		"-30":     "-30",
		"0.005":   "0.005",
		"1e3":     "1000",
		"1,000":   "0",
		"100.00 ": "100",
	}
	for input, want := range cases {
		got := ParseAmount(input)
		assert.True(t, got.Equal(decimal.RequireFromString(want)),
			"ParseAmount(%q) = %s, want %s", input, got, want)
	}
}

func TestReconcileSumsCashAndOnline(t *testing.T) {
	b := Reconcile("400", "100", "1000")

	assert.Equal(t, "500.00", b.AmountPaidDisplay())
	assert.Equal(t, "500.00", b.DueAmountDisplay())
}

func TestReconcileBlanksTreatedAsZero(t *testing.T) {
	b := Reconcile("", "", "")

	assert.True(t, b.AmountPaid.IsZero())
	assert.True(t, b.DueAmount.IsZero())

	b = Reconcile("250", "", "")
	assert.Equal(t, "250.00", b.AmountPaidDisplay())
	assert.Equal(t, "-250.00", b.DueAmountDisplay())
}

func TestReconcileOverpaymentGoesNegative(t *testing.T) {
	b := Reconcile("600", "600", "1000")

	assert.Equal(t, "1200.00", b.AmountPaidDisplay())
	assert.Equal(t, "-200.00", b.DueAmountDisplay())
}

func TestReconcileKeepsCents(t *testing.T) {
	b := Reconcile("0.1", "0.2", "1")

	assert.Equal(t, "0.30", b.AmountPaidDisplay())
	assert.Equal(t, "0.70", b.DueAmountDisplay())
}
