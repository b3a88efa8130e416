package controllers

import (
	"net/http"

	"github.com/adityaraghav/studyspace-backend/api/responses"
	"github.com/adityaraghav/studyspace-backend/api/validators"
	"github.com/adityaraghav/studyspace-backend/internal/gateway"
	"github.com/adityaraghav/studyspace-backend/internal/reference"
	pkgerrors "github.com/adityaraghav/studyspace-backend/pkg/errors"
	"github.com/adityaraghav/studyspace-backend/pkg/logger"
)

func BranchList(svc reference.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "reference service unavailable"))
			return
		}

		branches, err := svc.Branches(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, branches)
	}
}

func ShiftList(svc reference.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "reference service unavailable"))
			return
		}

		shifts, err := svc.Shifts(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, shifts)
	}
}

// SeatList returns the live seat roster, optionally scoped by branch or shift.
func SeatList(svc reference.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "reference service unavailable"))
			return
		}

		branchID, err := validators.ParseQueryID(r, "branch_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		shiftID, err := validators.ParseQueryID(r, "shift_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		seats, err := svc.Seats(r.Context(), gateway.SeatFilter{BranchID: branchID, ShiftID: shiftID})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, seats)
	}
}
