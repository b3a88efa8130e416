package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFeeQuoteDerivesTotals(t *testing.T) {
	cases := []struct {
		name       string
		body       string
		amountPaid string
		dueAmount  string
	}{
		{
			name:       "typical split payment",
			body:       `{"total_fee":"1000","cash_paid":"400","online_paid":"100"}`,
			amountPaid: "500.00",
			dueAmount:  "500.00",
		},
		{
			name:       "blank fields count as zero",
			body:       `{"total_fee":"","cash_paid":"","online_paid":""}`,
			amountPaid: "0.00",
			dueAmount:  "0.00",
		},
		{
			name:       "garbage counts as zero",
			body:       `{"total_fee":"1000","cash_paid":"abc","online_paid":"250"}`,
			amountPaid: "250.00",
			dueAmount:  "750.00",
		},
		{
			name:       "overpayment goes negative",
			body:       `{"total_fee":"1000","cash_paid":"600","online_paid":"600"}`,
			amountPaid: "1200.00",
			dueAmount:  "-200.00",
		},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/fees/quote", strings.NewReader(tc.body))
		resp := httptest.NewRecorder()
		FeeQuote(testLogger())(resp, req)

		if resp.Code != http.StatusOK {
			t.Fatalf("%s: unexpected status %d", tc.name, resp.Code)
		}
		var envelope struct {
			Data map[string]string `json:"data"`
		}
		if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("%s: unmarshal response: %v", tc.name, err)
		}
		if envelope.Data["amount_paid"] != tc.amountPaid {
			t.Fatalf("%s: amount_paid = %s", tc.name, envelope.Data["amount_paid"])
		}
		if envelope.Data["due_amount"] != tc.dueAmount {
			t.Fatalf("%s: due_amount = %s", tc.name, envelope.Data["due_amount"])
		}
	}
}
