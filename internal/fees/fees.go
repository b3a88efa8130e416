package fees

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount reads a currency field as entered by the operator. Blank or
// non-numeric input yields zero; the function never fails.
func ParseAmount(raw string) decimal.Decimal {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Zero
	}
	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero
	}
	return value
}

// Breakdown holds the derived financial fields for a membership. Both values
// are computed, never entered independently.
type Breakdown struct {
	AmountPaid decimal.Decimal
	DueAmount  decimal.Decimal
}

// Reconcile derives amount paid and due amount from the raw fee inputs.
// amountPaid = cash + online; due = totalFee - amountPaid. Overpayment
// leaves due negative; it is not clamped.
func Reconcile(cash, online, totalFee string) Breakdown {
	paid := ParseAmount(cash).Add(ParseAmount(online))
	return Breakdown{
		AmountPaid: paid,
		DueAmount:  ParseAmount(totalFee).Sub(paid),
	}
}

// AmountPaidDisplay renders amount paid with two-decimal formatting.
func (b Breakdown) AmountPaidDisplay() string {
	return b.AmountPaid.StringFixed(2)
}

// DueAmountDisplay renders the due amount with two-decimal formatting.
func (b Breakdown) DueAmountDisplay() string {
	return b.DueAmount.StringFixed(2)
}
