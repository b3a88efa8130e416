package seating

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/adityaraghav/studyspace-backend/internal/gateway"
	"github.com/adityaraghav/studyspace-backend/pkg/logger"
)

// NoSeatID is the sentinel seat choice meaning "assign no seat yet".
const NoSeatID int64 = 0

type gatewayClient interface {
	GetStudent(ctx context.Context, id int64) (*gateway.Student, error)
	GetSchedules(ctx context.Context) ([]gateway.Shift, error)
	GetSeats(ctx context.Context, filter gateway.SeatFilter) ([]gateway.Seat, error)
	GetAvailableShifts(ctx context.Context, seatID int64) ([]gateway.Shift, error)
}

// Resolver keeps seat and shift choices mutually consistent while a member
// is being edited. Overlapping fetches triggered by rapid input changes are
// not fenced; the latest response to arrive wins, matching the console's
// accepted last-write-wins behavior.
type Resolver struct {
	gw   gatewayClient
	logg *logger.Logger
}

// NewResolver builds a resolver over the gateway client.
func NewResolver(gw gatewayClient, logg *logger.Logger) (*Resolver, error) {
	if gw == nil {
		return nil, fmt.Errorf("gateway client required")
	}
	return &Resolver{gw: gw, logg: logg}, nil
}

// ResolveInput is the member's current staged selection.
type ResolveInput struct {
	MemberID    int64
	BranchID    *int64
	SeatID      *int64
	PriorSeatID *int64
	ShiftIDs    []int64
}

// SeatOption is one selectable seat, including the "no seat" sentinel.
type SeatOption struct {
	ID         int64  `json:"id"`
	SeatNumber string `json:"seat_number"`
	Sentinel   bool   `json:"sentinel,omitempty"`
}

// ShiftOption is one shift from the full roster. Unavailable shifts stay
// visible but unselectable, except for the member's own assignments.
type ShiftOption struct {
	Shift         gateway.Shift `json:"shift"`
	Selectable    bool          `json:"selectable"`
	OwnAssignment bool          `json:"own_assignment"`
}

// Selection is the normalized choice state plus the recomputed option sets.
type Selection struct {
	SeatID       *int64        `json:"seat_id"`
	SeatCleared  bool          `json:"seat_cleared"`
	ShiftIDs     []int64       `json:"shift_ids"`
	ShiftsReset  bool          `json:"shifts_reset"`
	SeatOptions  []SeatOption  `json:"seat_options"`
	ShiftOptions []ShiftOption `json:"shift_options"`
}

// Resolve recomputes the selectable seats and shifts for the staged edit.
//
// Policy, in order:
//   - seats are scoped to the chosen branch (unfiltered when none chosen);
//     a previously selected seat absent from the scoped roster is cleared
//   - any seat change discards the staged shift selection so the operator
//     re-confirms shift validity against the new seat
//   - every shift stays visible; one is selectable when the seat has no
//     conflicting assignment for it, or when it is already the member's own
//   - with no seat chosen, every shift is offered as available
func (r *Resolver) Resolve(ctx context.Context, in ResolveInput) (*Selection, error) {
	var (
		student   *gateway.Student
		schedules []gateway.Shift
		seats     []gateway.Seat
	)

	group, groupCtx := errgroup.WithContext(ctx)
	if in.MemberID > 0 {
		group.Go(func() error {
			var err error
			student, err = r.gw.GetStudent(groupCtx, in.MemberID)
			return err
		})
	}
	group.Go(func() error {
		var err error
		schedules, err = r.gw.GetSchedules(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		seats, err = r.gw.GetSeats(groupCtx, gateway.SeatFilter{BranchID: in.BranchID})
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	selection := &Selection{
		SeatID:   normalizeSeatID(in.SeatID),
		ShiftIDs: in.ShiftIDs,
	}

	if selection.SeatID != nil && !seatInRoster(seats, *selection.SeatID) {
		selection.SeatID = nil
		selection.SeatCleared = true
	}

	if seatChanged(selection.SeatID, normalizeSeatID(in.PriorSeatID)) {
		selection.ShiftIDs = []int64{}
		selection.ShiftsReset = true
	}
	if selection.ShiftIDs == nil {
		selection.ShiftIDs = []int64{}
	}

	available, err := r.availableShiftSet(ctx, selection.SeatID, schedules)
	if err != nil {
		return nil, err
	}

	own := ownShiftSet(student)
	selection.ShiftOptions = make([]ShiftOption, 0, len(schedules))
	for _, shift := range schedules {
		_, isAvailable := available[shift.ID]
		_, isOwn := own[shift.ID]
		selection.ShiftOptions = append(selection.ShiftOptions, ShiftOption{
			Shift:         shift,
			Selectable:    isAvailable || isOwn,
			OwnAssignment: isOwn,
		})
	}

	selection.SeatOptions = make([]SeatOption, 0, len(seats)+1)
	selection.SeatOptions = append(selection.SeatOptions, SeatOption{ID: NoSeatID, SeatNumber: "No seat", Sentinel: true})
	for _, seat := range seats {
		selection.SeatOptions = append(selection.SeatOptions, SeatOption{ID: seat.ID, SeatNumber: seat.SeatNumber})
	}

	return selection, nil
}

// SeatCandidates returns the seats a renewing member may take for the given
// shift: unheld seats, plus the seat the member already holds.
func (r *Resolver) SeatCandidates(ctx context.Context, shiftID, memberID int64) ([]gateway.Seat, error) {
	seats, err := r.gw.GetSeats(ctx, gateway.SeatFilter{ShiftID: &shiftID})
	if err != nil {
		return nil, err
	}

	candidates := make([]gateway.Seat, 0, len(seats))
	for _, seat := range seats {
		if seat.HolderID == nil || *seat.HolderID == memberID {
			candidates = append(candidates, seat)
		}
	}
	return candidates, nil
}

// availableShiftSet fetches the non-conflicting shifts for the seat. With no
// seat selected every shift is available.
func (r *Resolver) availableShiftSet(ctx context.Context, seatID *int64, schedules []gateway.Shift) (map[int64]struct{}, error) {
	set := make(map[int64]struct{}, len(schedules))
	if seatID == nil {
		for _, shift := range schedules {
			set[shift.ID] = struct{}{}
		}
		return set, nil
	}

	available, err := r.gw.GetAvailableShifts(ctx, *seatID)
	if err != nil {
		return nil, err
	}
	for _, shift := range available {
		set[shift.ID] = struct{}{}
	}
	return set, nil
}

func ownShiftSet(student *gateway.Student) map[int64]struct{} {
	set := map[int64]struct{}{}
	if student == nil {
		return set
	}
	for _, assignment := range student.Assignments {
		set[assignment.ShiftID] = struct{}{}
	}
	return set
}

func normalizeSeatID(id *int64) *int64 {
	if id == nil || *id == NoSeatID {
		return nil
	}
	return id
}

func seatInRoster(seats []gateway.Seat, id int64) bool {
	for _, seat := range seats {
		if seat.ID == id {
			return true
		}
	}
	return false
}

func seatChanged(current, prior *int64) bool {
	if current == nil && prior == nil {
		return false
	}
	if current == nil || prior == nil {
		return true
	}
	return *current != *prior
}
