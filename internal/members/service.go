package members

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/adityaraghav/studyspace-backend/internal/fees"
	"github.com/adityaraghav/studyspace-backend/internal/gateway"
	"github.com/adityaraghav/studyspace-backend/internal/reference"
	"github.com/adityaraghav/studyspace-backend/pkg/logger"
	"github.com/adityaraghav/studyspace-backend/pkg/types"
)

type gatewayClient interface {
	GetStudent(ctx context.Context, id int64) (*gateway.Student, error)
	UpdateStudent(ctx context.Context, id int64, payload gateway.StudentPayload) (*gateway.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
}

// Service owns the member edit screen: prefill, validated update, delete.
type Service interface {
	EditContext(ctx context.Context, id int64) (*EditContextDTO, error)
	Update(ctx context.Context, id int64, input UpdateInput) (*MemberDTO, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	gw        gatewayClient
	reference reference.Service
	logg      *logger.Logger
}

// NewService builds the member service over the gateway and reference data.
func NewService(gw gatewayClient, referenceService reference.Service, logg *logger.Logger) (Service, error) {
	if gw == nil {
		return nil, fmt.Errorf("gateway client required")
	}
	if referenceService == nil {
		return nil, fmt.Errorf("reference service required")
	}
	return &service{gw: gw, reference: referenceService, logg: logg}, nil
}

// UpdateInput is the staged edit-form state submitted for a member. Fee
// fields arrive as the raw operator input; derived amounts are computed
// here, never accepted from the caller.
type UpdateInput struct {
	Name               string
	RegistrationNumber string
	FatherName         string
	NationalID         string
	Address            string
	Email              string
	Phone              string
	BranchID           int64
	MembershipStart    types.Date
	MembershipEnd      types.Date
	TotalFee           string
	CashPaid           string
	OnlinePaid         string
	SecurityDeposit    string
	Remark             string
	ImageURL           string
	SeatID             *int64
	ShiftIDs           []int64
}

// EditContext loads the member and the reference rosters the edit screen
// prefills from. The independent fetches run concurrently.
func (s *service) EditContext(ctx context.Context, id int64) (*EditContextDTO, error) {
	var (
		student  *gateway.Student
		branches []gateway.Branch
		shifts   []gateway.Shift
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		student, err = s.gw.GetStudent(groupCtx, id)
		return err
	})
	group.Go(func() error {
		var err error
		branches, err = s.reference.Branches(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		shifts, err = s.reference.Shifts(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	seats, err := s.reference.Seats(ctx, gateway.SeatFilter{BranchID: &student.BranchID})
	if err != nil {
		return nil, err
	}

	return &EditContextDTO{
		Member:   toMemberDTO(student),
		Branches: branches,
		Shifts:   shifts,
		Seats:    seats,
	}, nil
}

// Update validates the staged edit and submits a full replacement payload.
// Validation failures abort locally; the gateway is never called.
func (s *service) Update(ctx context.Context, id int64, input UpdateInput) (*MemberDTO, error) {
	if err := validateUpdate(input); err != nil {
		return nil, err
	}

	breakdown := fees.Reconcile(input.CashPaid, input.OnlinePaid, input.TotalFee)

	shiftIDs := input.ShiftIDs
	if shiftIDs == nil {
		shiftIDs = []int64{}
	}

	payload := gateway.StudentPayload{
		Name:               input.Name,
		RegistrationNumber: input.RegistrationNumber,
		FatherName:         input.FatherName,
		NationalID:         input.NationalID,
		Address:            input.Address,
		Email:              input.Email,
		Phone:              input.Phone,
		BranchID:           input.BranchID,
		MembershipStart:    input.MembershipStart,
		MembershipEnd:      input.MembershipEnd,
		TotalFee:           input.TotalFee,
		CashPaid:           input.CashPaid,
		OnlinePaid:         input.OnlinePaid,
		AmountPaid:         breakdown.AmountPaidDisplay(),
		DueAmount:          breakdown.DueAmountDisplay(),
		SecurityDeposit:    input.SecurityDeposit,
		Remark:             input.Remark,
		ImageURL:           input.ImageURL,
		SeatID:             input.SeatID,
		ShiftIDs:           shiftIDs,
	}

	student, err := s.gw.UpdateStudent(ctx, id, payload)
	if err != nil {
		return nil, err
	}

	if s.logg != nil {
		s.logg.Info(s.logg.WithMemberID(ctx, id), "member.updated")
	}

	dto := toMemberDTO(student)
	return &dto, nil
}

// Delete removes the member permanently.
func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.gw.DeleteStudent(ctx, id); err != nil {
		return err
	}
	if s.logg != nil {
		s.logg.Info(s.logg.WithMemberID(ctx, id), "member.deleted")
	}
	return nil
}
