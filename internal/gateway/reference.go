package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// GetSchedules lists all shifts.
func (c *Client) GetSchedules(ctx context.Context) ([]Shift, error) {
	var shifts []Shift
	if err := c.do(ctx, "get_schedules", http.MethodGet, "/schedules", nil, nil, &shifts); err != nil {
		return nil, err
	}
	return shifts, nil
}

// GetSeats lists seats, optionally filtered by branch and/or shift.
func (c *Client) GetSeats(ctx context.Context, filter SeatFilter) ([]Seat, error) {
	query := url.Values{}
	if filter.BranchID != nil {
		query.Set("branchId", strconv.FormatInt(*filter.BranchID, 10))
	}
	if filter.ShiftID != nil {
		query.Set("shiftId", strconv.FormatInt(*filter.ShiftID, 10))
	}

	var seats []Seat
	if err := c.do(ctx, "get_seats", http.MethodGet, "/seats", query, nil, &seats); err != nil {
		return nil, err
	}
	return seats, nil
}

// GetAvailableShifts lists shifts with no conflicting assignment on the seat.
func (c *Client) GetAvailableShifts(ctx context.Context, seatID int64) ([]Shift, error) {
	var shifts []Shift
	path := fmt.Sprintf("/seats/%d/available-shifts", seatID)
	if err := c.do(ctx, "get_available_shifts", http.MethodGet, path, nil, nil, &shifts); err != nil {
		return nil, err
	}
	return shifts, nil
}

// GetBranches lists all branches.
func (c *Client) GetBranches(ctx context.Context) ([]Branch, error) {
	var branches []Branch
	if err := c.do(ctx, "get_branches", http.MethodGet, "/branches", nil, nil, &branches); err != nil {
		return nil, err
	}
	return branches, nil
}
