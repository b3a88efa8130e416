package members

import (
	"github.com/adityaraghav/studyspace-backend/internal/fees"
	"github.com/adityaraghav/studyspace-backend/internal/gateway"
	"github.com/adityaraghav/studyspace-backend/pkg/enums"
	"github.com/adityaraghav/studyspace-backend/pkg/types"
)

// MemberDTO is the console-facing member shape. Amount paid and due amount
// are always recomputed from the raw fee fields so the display never drifts
// from the reconciliation identity.
type MemberDTO struct {
	ID                 int64                  `json:"id"`
	Name               string                 `json:"name"`
	RegistrationNumber string                 `json:"registration_number,omitempty"`
	FatherName         string                 `json:"father_name,omitempty"`
	NationalID         string                 `json:"national_id,omitempty"`
	Address            string                 `json:"address"`
	Email              string                 `json:"email,omitempty"`
	Phone              string                 `json:"phone"`
	BranchID           int64                  `json:"branch_id"`
	MembershipStart    types.Date             `json:"membership_start"`
	MembershipEnd      types.Date             `json:"membership_end"`
	Status             enums.MembershipStatus `json:"status"`
	TotalFee           string                 `json:"total_fee"`
	CashPaid           string                 `json:"cash_paid"`
	OnlinePaid         string                 `json:"online_paid"`
	AmountPaid         string                 `json:"amount_paid"`
	DueAmount          string                 `json:"due_amount"`
	SecurityDeposit    string                 `json:"security_deposit,omitempty"`
	Remark             string                 `json:"remark,omitempty"`
	ImageURL           string                 `json:"image_url,omitempty"`
	Assignments        []AssignmentDTO        `json:"assignments"`
}

// AssignmentDTO pairs a seat with a shift, with display labels denormalized.
type AssignmentDTO struct {
	ID         int64  `json:"id"`
	SeatID     int64  `json:"seat_id"`
	ShiftID    int64  `json:"shift_id"`
	SeatNumber string `json:"seat_number"`
	ShiftTitle string `json:"shift_title"`
}

// EditContextDTO bundles everything the edit screen prefill needs.
type EditContextDTO struct {
	Member   MemberDTO        `json:"member"`
	Branches []gateway.Branch `json:"branches"`
	Shifts   []gateway.Shift  `json:"shifts"`
	Seats    []gateway.Seat   `json:"seats"`
}

func toMemberDTO(student *gateway.Student) MemberDTO {
	breakdown := fees.Reconcile(student.CashPaid, student.OnlinePaid, student.TotalFee)

	assignments := make([]AssignmentDTO, 0, len(student.Assignments))
	for _, a := range student.Assignments {
		assignments = append(assignments, AssignmentDTO{
			ID:         a.ID,
			SeatID:     a.SeatID,
			ShiftID:    a.ShiftID,
			SeatNumber: a.SeatNumber,
			ShiftTitle: a.ShiftTitle,
		})
	}

	return MemberDTO{
		ID:                 student.ID,
		Name:               student.Name,
		RegistrationNumber: student.RegistrationNumber,
		FatherName:         student.FatherName,
		NationalID:         student.NationalID,
		Address:            student.Address,
		Email:              student.Email,
		Phone:              student.Phone,
		BranchID:           student.BranchID,
		MembershipStart:    student.MembershipStart,
		MembershipEnd:      student.MembershipEnd,
		Status:             student.Status,
		TotalFee:           student.TotalFee,
		CashPaid:           student.CashPaid,
		OnlinePaid:         student.OnlinePaid,
		AmountPaid:         breakdown.AmountPaidDisplay(),
		DueAmount:          breakdown.DueAmountDisplay(),
		SecurityDeposit:    student.SecurityDeposit,
		Remark:             student.Remark,
		ImageURL:           student.ImageURL,
		Assignments:        assignments,
	}
}
