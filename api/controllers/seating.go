package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/adityaraghav/studyspace-backend/api/responses"
	"github.com/adityaraghav/studyspace-backend/api/validators"
	"github.com/adityaraghav/studyspace-backend/internal/seating"
	pkgerrors "github.com/adityaraghav/studyspace-backend/pkg/errors"
	"github.com/adityaraghav/studyspace-backend/pkg/logger"
)

// SeatingOptions recomputes the selectable seats and shifts for a staged
// member edit. The staged selection rides in as query parameters; seat_id=0
// means the "no seat" choice.
func SeatingOptions(resolver *seating.Resolver, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if resolver == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "seating resolver unavailable"))
			return
		}

		memberID, err := validators.ParseIDParam(r, "memberID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		branchID, err := validators.ParseQueryID(r, "branch_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		seatID, err := parseSeatQuery(r, "seat_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		priorSeatID, err := parseSeatQuery(r, "prior_seat_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		shiftIDs, err := parseShiftIDs(r, "shift_ids")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		selection, err := resolver.Resolve(r.Context(), seating.ResolveInput{
			MemberID:    memberID,
			BranchID:    branchID,
			SeatID:      seatID,
			PriorSeatID: priorSeatID,
			ShiftIDs:    shiftIDs,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, selection)
	}
}

// SeatCandidates returns the seats a renewing member may take for a shift.
func SeatCandidates(resolver *seating.Resolver, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if resolver == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "seating resolver unavailable"))
			return
		}

		shiftID, err := validators.ParseIDParam(r, "shiftID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		memberID, err := validators.ParseQueryID(r, "member_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var member int64
		if memberID != nil {
			member = *memberID
		}

		seats, err := resolver.SeatCandidates(r.Context(), shiftID, member)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, seats)
	}
}

// parseSeatQuery reads an optional seat parameter. Zero is legal here, it is
// the "no seat" sentinel.
func parseSeatQuery(r *http.Request, key string) (*int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be a seat id").
			WithDetails(map[string]any{"field": key})
	}
	return &value, nil
}

func parseShiftIDs(r *http.Request, key string) ([]int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		value, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil || value <= 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be a list of shift ids").
				WithDetails(map[string]any{"field": key})
		}
		ids = append(ids, value)
	}
	return ids, nil
}
