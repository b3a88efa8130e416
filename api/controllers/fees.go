package controllers

import (
	"net/http"

	"github.com/adityaraghav/studyspace-backend/api/responses"
	"github.com/adityaraghav/studyspace-backend/api/validators"
	"github.com/adityaraghav/studyspace-backend/internal/fees"
	"github.com/adityaraghav/studyspace-backend/pkg/logger"
)

type feeQuoteRequest struct {
	TotalFee   string `json:"total_fee"`
	CashPaid   string `json:"cash_paid"`
	OnlinePaid string `json:"online_paid"`
}

// FeeQuote recomputes the derived fee fields for the staged form values.
// Lenient by design: blank or malformed amounts count as zero, matching
// what the edit screen shows while the operator is still typing.
func FeeQuote(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload feeQuoteRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		breakdown := fees.Reconcile(payload.CashPaid, payload.OnlinePaid, payload.TotalFee)
		responses.WriteSuccess(w, map[string]string{
			"amount_paid": breakdown.AmountPaidDisplay(),
			"due_amount":  breakdown.DueAmountDisplay(),
		})
	}
}
