package renewals

import (
	"context"
	"fmt"
	"strings"

	"github.com/adityaraghav/studyspace-backend/internal/fees"
	"github.com/adityaraghav/studyspace-backend/internal/gateway"
	pkgerrors "github.com/adityaraghav/studyspace-backend/pkg/errors"
	"github.com/adityaraghav/studyspace-backend/pkg/logger"
	"github.com/adityaraghav/studyspace-backend/pkg/types"
)

type gatewayClient interface {
	GetExpiredMemberships(ctx context.Context) ([]gateway.Student, error)
	RenewStudent(ctx context.Context, id int64, payload gateway.RenewalPayload) (*gateway.Student, error)
}

// Service owns the expired-membership listing and the renewal dialog.
type Service interface {
	ListExpired(ctx context.Context) ([]ExpiredMembershipDTO, error)
	Renew(ctx context.Context, id int64, input RenewInput) (*RenewedDTO, error)
}

type service struct {
	gw   gatewayClient
	logg *logger.Logger
	// now is injected for date-default tests.
	now func() types.Date
}

// NewService builds the renewal service over the gateway client.
func NewService(gw gatewayClient, logg *logger.Logger) (Service, error) {
	if gw == nil {
		return nil, fmt.Errorf("gateway client required")
	}
	return &service{gw: gw, logg: logg, now: types.Today}, nil
}

// ExpiredMembershipDTO is one row of the renewal listing. The financial
// display fields are derived, never taken from upstream as-is.
type ExpiredMembershipDTO struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	Phone           string     `json:"phone"`
	BranchID        int64      `json:"branch_id"`
	MembershipStart types.Date `json:"membership_start"`
	MembershipEnd   types.Date `json:"membership_end"`
	TotalFee        string     `json:"total_fee"`
	AmountPaid      string     `json:"amount_paid"`
	DueAmount       string     `json:"due_amount"`
	SeatNumbers     []string   `json:"seat_numbers"`
}

// RenewInput is the renewal dialog state. Blank dates take the defaults:
// today, and one calendar month after today.
type RenewInput struct {
	Name            string
	FatherName      string
	Address         string
	Email           string
	Phone           string
	BranchID        int64
	MembershipStart types.Date
	MembershipEnd   types.Date
	TotalFee        string
	CashPaid        string
	OnlinePaid      string
	SecurityDeposit string
	Remark          string
	SeatID          *int64
	ShiftIDs        []int64
}

// RenewedDTO reports the outcome of a renewal.
type RenewedDTO struct {
	ID              int64      `json:"id"`
	MembershipStart types.Date `json:"membership_start"`
	MembershipEnd   types.Date `json:"membership_end"`
	Status          string     `json:"status"`
}

func (s *service) ListExpired(ctx context.Context) ([]ExpiredMembershipDTO, error) {
	students, err := s.gw.GetExpiredMemberships(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]ExpiredMembershipDTO, 0, len(students))
	for _, student := range students {
		breakdown := fees.Reconcile(student.CashPaid, student.OnlinePaid, student.TotalFee)
		seatNumbers := make([]string, 0, len(student.Assignments))
		for _, a := range student.Assignments {
			seatNumbers = append(seatNumbers, a.SeatNumber)
		}
		rows = append(rows, ExpiredMembershipDTO{
			ID:              student.ID,
			Name:            student.Name,
			Phone:           student.Phone,
			BranchID:        student.BranchID,
			MembershipStart: student.MembershipStart,
			MembershipEnd:   student.MembershipEnd,
			TotalFee:        student.TotalFee,
			AmountPaid:      breakdown.AmountPaidDisplay(),
			DueAmount:       breakdown.DueAmountDisplay(),
			SeatNumbers:     seatNumbers,
		})
	}
	return rows, nil
}

// Renew validates the dialog state and submits the renewal. The payload
// deliberately omits the derived amount fields; the gateway recomputes them
// for renewals.
func (s *service) Renew(ctx context.Context, id int64, input RenewInput) (*RenewedDTO, error) {
	input = applyDateDefaults(input, s.now())

	if err := validateRenew(input); err != nil {
		return nil, err
	}

	payload := gateway.RenewalPayload{
		Name:            input.Name,
		FatherName:      input.FatherName,
		Address:         input.Address,
		Email:           input.Email,
		Phone:           input.Phone,
		BranchID:        input.BranchID,
		MembershipStart: input.MembershipStart,
		MembershipEnd:   input.MembershipEnd,
		TotalFee:        input.TotalFee,
		CashPaid:        input.CashPaid,
		OnlinePaid:      input.OnlinePaid,
		SecurityDeposit: input.SecurityDeposit,
		Remark:          input.Remark,
		SeatID:          input.SeatID,
		ShiftIDs:        input.ShiftIDs,
	}

	student, err := s.gw.RenewStudent(ctx, id, payload)
	if err != nil {
		return nil, err
	}

	if s.logg != nil {
		s.logg.Info(s.logg.WithMemberID(ctx, id), "member.renewed")
	}

	return &RenewedDTO{
		ID:              student.ID,
		MembershipStart: student.MembershipStart,
		MembershipEnd:   student.MembershipEnd,
		Status:          student.Status.String(),
	}, nil
}

func applyDateDefaults(input RenewInput, today types.Date) RenewInput {
	if input.MembershipStart.IsZero() {
		input.MembershipStart = today
	}
	if input.MembershipEnd.IsZero() {
		input.MembershipEnd = today.AddMonths(1)
	}
	return input
}

func validateRenew(in RenewInput) error {
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
	if len(in.ShiftIDs) == 0 {
		problems["shift_ids"] = "is required"
	}
	if strings.TrimSpace(in.TotalFee) == "" {
		problems["total_fee"] = "is required"
	}

	if !in.MembershipEnd.After(in.MembershipStart) {
		problems["membership_end"] = "must be after membership start"
	}

	if len(problems) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(problems)
	}
	return nil
}
