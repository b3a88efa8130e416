package seating

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityaraghav/studyspace-backend/internal/gateway"
)

type stubGateway struct {
	student         *gateway.Student
	schedules       []gateway.Shift
	seats           []gateway.Seat
	availableShifts []gateway.Shift

	seatFilter         gateway.SeatFilter
	availableSeatCalls []int64
}

func (s *stubGateway) GetStudent(_ context.Context, id int64) (*gateway.Student, error) {
	return s.student, nil
}

func (s *stubGateway) GetSchedules(_ context.Context) ([]gateway.Shift, error) {
	return s.schedules, nil
}

func (s *stubGateway) GetSeats(_ context.Context, filter gateway.SeatFilter) ([]gateway.Seat, error) {
	s.seatFilter = filter
	return s.seats, nil
}

func (s *stubGateway) GetAvailableShifts(_ context.Context, seatID int64) ([]gateway.Shift, error) {
	s.availableSeatCalls = append(s.availableSeatCalls, seatID)
	return s.availableShifts, nil
}

func ptr(v int64) *int64 { return &v }

func shifts(ids ...int64) []gateway.Shift {
	out := make([]gateway.Shift, 0, len(ids))
	for _, id := range ids {
		out = append(out, gateway.Shift{ID: id, Title: "Shift"})
	}
	return out
}

func newTestResolver(t *testing.T, gw *stubGateway) *Resolver {
	t.Helper()
	resolver, err := NewResolver(gw, nil)
	require.NoError(t, err)
	return resolver
}

func TestBranchChangeClearsSeatMissingFromRoster(t *testing.T) {
	gw := &stubGateway{
		schedules: shifts(1, 2),
		seats:     []gateway.Seat{{ID: 10, SeatNumber: "A-10", BranchID: 2}},
	}
	resolver := newTestResolver(t, gw)

	selection, err := resolver.Resolve(context.Background(), ResolveInput{
		BranchID:    ptr(2),
		SeatID:      ptr(99),
		PriorSeatID: ptr(99),
	})
	require.NoError(t, err)

	assert.Nil(t, selection.SeatID)
	assert.True(t, selection.SeatCleared)
	assert.Equal(t, ptr(2), gw.seatFilter.BranchID)
}

func TestSeatChangeResetsShiftSelection(t *testing.T) {
	gw := &stubGateway{
		schedules:       shifts(3, 5, 8),
		seats:           []gateway.Seat{{ID: 7, SeatNumber: "A-07"}, {ID: 8, SeatNumber: "A-08"}},
		availableShifts: shifts(3, 5, 8),
	}
	resolver := newTestResolver(t, gw)

	selection, err := resolver.Resolve(context.Background(), ResolveInput{
		SeatID:      ptr(8),
		PriorSeatID: ptr(7),
		ShiftIDs:    []int64{3, 5},
	})
	require.NoError(t, err)

	assert.True(t, selection.ShiftsReset)
	assert.Empty(t, selection.ShiftIDs)
}

func TestUnchangedSeatKeepsShiftSelection(t *testing.T) {
	gw := &stubGateway{
		schedules:       shifts(3, 5),
		seats:           []gateway.Seat{{ID: 7, SeatNumber: "A-07"}},
		availableShifts: shifts(3, 5),
	}
	resolver := newTestResolver(t, gw)

	selection, err := resolver.Resolve(context.Background(), ResolveInput{
		SeatID:      ptr(7),
		PriorSeatID: ptr(7),
		ShiftIDs:    []int64{3},
	})
	require.NoError(t, err)

	assert.False(t, selection.ShiftsReset)
	assert.Equal(t, []int64{3}, selection.ShiftIDs)
}

func TestOwnAssignmentStaysSelectableWhenUnavailable(t *testing.T) {
	gw := &stubGateway{
		student: &gateway.Student{
			ID:          12,
			Assignments: []gateway.Assignment{{SeatID: 7, ShiftID: 5, ShiftTitle: "Evening"}},
		},
		schedules:       shifts(3, 5, 8),
		seats:           []gateway.Seat{{ID: 7, SeatNumber: "A-07"}},
		availableShifts: shifts(3),
	}
	resolver := newTestResolver(t, gw)

	selection, err := resolver.Resolve(context.Background(), ResolveInput{
		MemberID:    12,
		SeatID:      ptr(7),
		PriorSeatID: ptr(7),
	})
	require.NoError(t, err)

	byID := map[int64]ShiftOption{}
	for _, option := range selection.ShiftOptions {
		byID[option.Shift.ID] = option
	}

	assert.True(t, byID[3].Selectable)
	assert.False(t, byID[3].OwnAssignment)
	assert.True(t, byID[5].Selectable, "own assignment must remain selectable")
	assert.True(t, byID[5].OwnAssignment)
	assert.False(t, byID[8].Selectable, "taken shift must render disabled")
}

func TestNoSeatSelectedOffersAllShifts(t *testing.T) {
	gw := &stubGateway{
		schedules: shifts(1, 2, 3),
		seats:     []gateway.Seat{{ID: 7, SeatNumber: "A-07"}},
	}
	resolver := newTestResolver(t, gw)

	selection, err := resolver.Resolve(context.Background(), ResolveInput{})
	require.NoError(t, err)

	assert.Empty(t, gw.availableSeatCalls, "no availability fetch without a seat")
	for _, option := range selection.ShiftOptions {
		assert.True(t, option.Selectable)
	}
}

func TestSeatOptionsIncludeSentinelFirst(t *testing.T) {
	gw := &stubGateway{
		schedules: shifts(1),
		seats:     []gateway.Seat{{ID: 7, SeatNumber: "A-07"}},
	}
	resolver := newTestResolver(t, gw)

	selection, err := resolver.Resolve(context.Background(), ResolveInput{})
	require.NoError(t, err)

	require.Len(t, selection.SeatOptions, 2)
	assert.True(t, selection.SeatOptions[0].Sentinel)
	assert.Equal(t, NoSeatID, selection.SeatOptions[0].ID)
	assert.Equal(t, int64(7), selection.SeatOptions[1].ID)
}

func TestSentinelSeatTreatedAsNoSeat(t *testing.T) {
	gw := &stubGateway{
		schedules: shifts(1, 2),
		seats:     []gateway.Seat{{ID: 7, SeatNumber: "A-07"}},
	}
	resolver := newTestResolver(t, gw)

	selection, err := resolver.Resolve(context.Background(), ResolveInput{
		SeatID:      ptr(NoSeatID),
		PriorSeatID: ptr(NoSeatID),
	})
	require.NoError(t, err)

	assert.Nil(t, selection.SeatID)
	assert.False(t, selection.SeatCleared)
	assert.False(t, selection.ShiftsReset)
	assert.Empty(t, gw.availableSeatCalls)
}

func TestEmptyBranchRosterYieldsOnlySentinel(t *testing.T) {
	gw := &stubGateway{schedules: shifts(1)}
	resolver := newTestResolver(t, gw)

	selection, err := resolver.Resolve(context.Background(), ResolveInput{BranchID: ptr(9)})
	require.NoError(t, err)

	require.Len(t, selection.SeatOptions, 1)
	assert.True(t, selection.SeatOptions[0].Sentinel)
}

func TestSeatCandidatesForRenewal(t *testing.T) {
	holder := int64(12)
	other := int64(44)
	gw := &stubGateway{
		seats: []gateway.Seat{
			{ID: 1, SeatNumber: "A-01"},
			{ID: 2, SeatNumber: "A-02", HolderID: &holder},
			{ID: 3, SeatNumber: "A-03", HolderID: &other},
		},
	}
	resolver := newTestResolver(t, gw)

	candidates, err := resolver.SeatCandidates(context.Background(), 5, 12)
	require.NoError(t, err)

	require.Len(t, candidates, 2)
	assert.Equal(t, int64(1), candidates[0].ID)
	assert.Equal(t, int64(2), candidates[1].ID, "member keeps eligibility for their own seat")
	assert.Equal(t, ptr(5), gw.seatFilter.ShiftID)
}
