package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/adityaraghav/studyspace-backend/pkg/enums"
)

// GetExpiredMemberships lists members whose membership window has lapsed.
func (c *Client) GetExpiredMemberships(ctx context.Context) ([]Student, error) {
	query := url.Values{}
	query.Set("status", enums.MembershipStatusExpired.String())

	var students []Student
	if err := c.do(ctx, "get_expired_memberships", http.MethodGet, "/students", query, nil, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// GetStudent fetches a single member with assignments.
func (c *Client) GetStudent(ctx context.Context, id int64) (*Student, error) {
	var student Student
	if err := c.do(ctx, "get_student", http.MethodGet, fmt.Sprintf("/students/%d", id), nil, nil, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// UpdateStudent submits a full replacement of the member's fields and assignment.
func (c *Client) UpdateStudent(ctx context.Context, id int64, payload StudentPayload) (*Student, error) {
	var student Student
	if err := c.do(ctx, "update_student", http.MethodPut, fmt.Sprintf("/students/%d", id), nil, payload, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// RenewStudent updates the membership window and assignment for an existing member.
func (c *Client) RenewStudent(ctx context.Context, id int64, payload RenewalPayload) (*Student, error) {
	var student Student
	if err := c.do(ctx, "renew_student", http.MethodPost, fmt.Sprintf("/students/%d/renew", id), nil, payload, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// DeleteStudent removes a member permanently.
func (c *Client) DeleteStudent(ctx context.Context, id int64) error {
	return c.do(ctx, "delete_student", http.MethodDelete, fmt.Sprintf("/students/%d", id), nil, nil, nil)
}
