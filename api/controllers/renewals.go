package controllers

import (
	"net/http"

	"github.com/adityaraghav/studyspace-backend/api/responses"
	"github.com/adityaraghav/studyspace-backend/api/validators"
	"github.com/adityaraghav/studyspace-backend/internal/renewals"
	pkgerrors "github.com/adityaraghav/studyspace-backend/pkg/errors"
	"github.com/adityaraghav/studyspace-backend/pkg/logger"
	"github.com/adityaraghav/studyspace-backend/pkg/types"
)

// ExpiredMemberships lists members whose membership has lapsed.
func ExpiredMemberships(svc renewals.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "renewal service unavailable"))
			return
		}

		rows, err := svc.ListExpired(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, rows)
	}
}

type memberRenewRequest struct {
	Name            string     `json:"name" validate:"required"`
	FatherName      string     `json:"father_name,omitempty"`
	Address         string     `json:"address" validate:"required"`
	Email           string     `json:"email,omitempty" validate:"omitempty,email"`
	Phone           string     `json:"phone" validate:"required"`
	BranchID        int64      `json:"branch_id" validate:"required,gt=0"`
	MembershipStart types.Date `json:"membership_start"`
	MembershipEnd   types.Date `json:"membership_end"`
	TotalFee        string     `json:"total_fee" validate:"required"`
	CashPaid        string     `json:"cash_paid"`
	OnlinePaid      string     `json:"online_paid"`
	SecurityDeposit string     `json:"security_deposit,omitempty"`
	Remark          string     `json:"remark,omitempty"`
	SeatID          *int64     `json:"seat_id,omitempty"`
	ShiftIDs        []int64    `json:"shift_ids" validate:"required,min=1"`
}

func (req memberRenewRequest) toInput() renewals.RenewInput {
	return renewals.RenewInput{
		Name:            validators.SanitizeString(req.Name, 200),
		FatherName:      validators.SanitizeString(req.FatherName, 200),
		Address:         validators.SanitizeString(req.Address, 500),
		Email:           validators.SanitizeString(req.Email, 200),
		Phone:           validators.SanitizeString(req.Phone, 30),
		BranchID:        req.BranchID,
		MembershipStart: req.MembershipStart,
		MembershipEnd:   req.MembershipEnd,
		TotalFee:        req.TotalFee,
		CashPaid:        req.CashPaid,
		OnlinePaid:      req.OnlinePaid,
		SecurityDeposit: req.SecurityDeposit,
		Remark:          validators.SanitizeString(req.Remark, 1000),
		SeatID:          req.SeatID,
		ShiftIDs:        req.ShiftIDs,
	}
}

// MemberRenew starts a new membership term for an expired member.
func MemberRenew(svc renewals.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "renewal service unavailable"))
			return
		}

		id, err := validators.ParseIDParam(r, "memberID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload memberRenewRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		renewed, err := svc.Renew(r.Context(), id, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, renewed)
	}
}
