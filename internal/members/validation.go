package members

import (
	"regexp"
	"strings"

	pkgerrors "github.com/adityaraghav/studyspace-backend/pkg/errors"
)

// emailPattern is deliberately loose: one local part, one domain, one TLD.
// Anything stricter belongs to the gateway.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// validateUpdate blocks an edit submission before any gateway call is made.
func validateUpdate(in UpdateInput) error {
	problems := map[string]string{}

	if strings.TrimSpace(in.Name) == "" {
		problems["name"] = "is required"
	}
	if strings.TrimSpace(in.Phone) == "" {
		problems["phone"] = "is required"
	}
	if strings.TrimSpace(in.Address) == "" {
		problems["address"] = "is required"
	}
	if in.BranchID <= 0 {
		problems["branch_id"] = "is required"
	}
	if in.MembershipStart.IsZero() {
		problems["membership_start"] = "is required"
	}
	if in.MembershipEnd.IsZero() {
		problems["membership_end"] = "is required"
	}

	if email := strings.TrimSpace(in.Email); email != "" && !emailPattern.MatchString(email) {
		problems["email"] = "must be a valid email"
	}

	if !in.MembershipStart.IsZero() && !in.MembershipEnd.IsZero() && !in.MembershipEnd.After(in.MembershipStart) {
		problems["membership_end"] = "must be after membership start"
	}

	if len(problems) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(problems)
	}
	return nil
}
