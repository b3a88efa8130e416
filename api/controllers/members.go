package controllers

import (
	"net/http"

	"github.com/adityaraghav/studyspace-backend/api/responses"
	"github.com/adityaraghav/studyspace-backend/api/validators"
	"github.com/adityaraghav/studyspace-backend/internal/members"
	pkgerrors "github.com/adityaraghav/studyspace-backend/pkg/errors"
	"github.com/adityaraghav/studyspace-backend/pkg/logger"
	"github.com/adityaraghav/studyspace-backend/pkg/types"
)

// MemberEditContext returns the member plus the rosters the edit screen
// prefills from.
func MemberEditContext(svc members.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "member service unavailable"))
			return
		}

		id, err := validators.ParseIDParam(r, "memberID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		editCtx, err := svc.EditContext(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, editCtx)
	}
}

type memberUpdateRequest struct {
	Name               string     `json:"name" validate:"required"`
	RegistrationNumber string     `json:"registration_number,omitempty"`
	FatherName         string     `json:"father_name,omitempty"`
	NationalID         string     `json:"national_id,omitempty"`
	Address            string     `json:"address" validate:"required"`
	Email              string     `json:"email,omitempty" validate:"omitempty,email"`
	Phone              string     `json:"phone" validate:"required"`
	BranchID           int64      `json:"branch_id" validate:"required,gt=0"`
	MembershipStart    types.Date `json:"membership_start"`
	MembershipEnd      types.Date `json:"membership_end"`
	TotalFee           string     `json:"total_fee"`
	CashPaid           string     `json:"cash_paid"`
	OnlinePaid         string     `json:"online_paid"`
	SecurityDeposit    string     `json:"security_deposit,omitempty"`
	Remark             string     `json:"remark,omitempty"`
	ImageURL           string     `json:"image_url,omitempty"`
	SeatID             *int64     `json:"seat_id,omitempty"`
	ShiftIDs           []int64    `json:"shift_ids"`
}

func (req memberUpdateRequest) toInput() members.UpdateInput {
	return members.UpdateInput{
		Name:               validators.SanitizeString(req.Name, 200),
		RegistrationNumber: validators.SanitizeString(req.RegistrationNumber, 100),
		FatherName:         validators.SanitizeString(req.FatherName, 200),
		NationalID:         validators.SanitizeString(req.NationalID, 100),
		Address:            validators.SanitizeString(req.Address, 500),
		Email:              validators.SanitizeString(req.Email, 200),
		Phone:              validators.SanitizeString(req.Phone, 30),
		BranchID:           req.BranchID,
		MembershipStart:    req.MembershipStart,
		MembershipEnd:      req.MembershipEnd,
		TotalFee:           req.TotalFee,
		CashPaid:           req.CashPaid,
		OnlinePaid:         req.OnlinePaid,
		SecurityDeposit:    req.SecurityDeposit,
		Remark:             validators.SanitizeString(req.Remark, 1000),
		ImageURL:           req.ImageURL,
		SeatID:             req.SeatID,
		ShiftIDs:           req.ShiftIDs,
	}
}

// MemberUpdate submits the full edit form as a replacement payload.
func MemberUpdate(svc members.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "member service unavailable"))
			return
		}

		id, err := validators.ParseIDParam(r, "memberID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload memberUpdateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		member, err := svc.Update(r.Context(), id, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, member)
	}
}

// MemberDelete removes a member permanently.
func MemberDelete(svc members.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "member service unavailable"))
			return
		}

		id, err := validators.ParseIDParam(r, "memberID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"id": id, "deleted": true})
	}
}
