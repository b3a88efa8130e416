package gateway

import (
	"github.com/adityaraghav/studyspace-backend/pkg/enums"
	"github.com/adityaraghav/studyspace-backend/pkg/types"
)

// Student is the gateway's member record. Monetary fields cross the wire as
// strings; the gateway accepts whatever the operator typed and the console
// derives totals from them.
type Student struct {
	ID                 int64                  `json:"id"`
	Name               string                 `json:"name"`
	RegistrationNumber string                 `json:"registrationNumber"`
	FatherName         string                 `json:"fatherName"`
	NationalID         string                 `json:"nationalId"`
	Address            string                 `json:"address"`
	Email              string                 `json:"email"`
	Phone              string                 `json:"phone"`
	BranchID           int64                  `json:"branchId"`
	MembershipStart    types.Date             `json:"membershipStart"`
	MembershipEnd      types.Date             `json:"membershipEnd"`
	Status             enums.MembershipStatus `json:"status"`
	TotalFee           string                 `json:"totalFee"`
	CashPaid           string                 `json:"cashPaid"`
	OnlinePaid         string                 `json:"onlinePaid"`
	AmountPaid         string                 `json:"amountPaid"`
	DueAmount          string                 `json:"dueAmount"`
	SecurityDeposit    string                 `json:"securityDeposit"`
	Remark             string                 `json:"remark"`
	ImageURL           string                 `json:"imageUrl,omitempty"`
	Assignments        []Assignment           `json:"assignments"`
}

// Assignment pairs one seat with one shift for a member. Seat number and
// shift title are denormalized for display.
type Assignment struct {
	ID         int64  `json:"id"`
	SeatID     int64  `json:"seatId"`
	ShiftID    int64  `json:"shiftId"`
	SeatNumber string `json:"seatNumber"`
	ShiftTitle string `json:"shiftTitle"`
}

// Shift is a recurring time window during which a seat may be occupied.
type Shift struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	TimeOfDay   string     `json:"time"`
	EventDate   types.Date `json:"eventDate"`
}

// Seat is a branch-scoped resource unit. HolderID carries the member
// currently holding the seat, when any.
type Seat struct {
	ID         int64  `json:"id"`
	SeatNumber string `json:"seatNumber"`
	BranchID   int64  `json:"branchId"`
	HolderID   *int64 `json:"holderId,omitempty"`
}

// Branch is a physical location grouping seats.
type Branch struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}

// StudentPayload is the full-replacement update submitted for a member.
// AmountPaid and DueAmount are derived fields computed by the console.
type StudentPayload struct {
	Name               string     `json:"name"`
	RegistrationNumber string     `json:"registrationNumber,omitempty"`
	FatherName         string     `json:"fatherName,omitempty"`
	NationalID         string     `json:"nationalId,omitempty"`
	Address            string     `json:"address"`
	Email              string     `json:"email,omitempty"`
	Phone              string     `json:"phone"`
	BranchID           int64      `json:"branchId"`
	MembershipStart    types.Date `json:"membershipStart"`
	MembershipEnd      types.Date `json:"membershipEnd"`
	TotalFee           string     `json:"totalFee"`
	CashPaid           string     `json:"cashPaid"`
	OnlinePaid         string     `json:"onlinePaid"`
	AmountPaid         string     `json:"amountPaid"`
	DueAmount          string     `json:"dueAmount"`
	SecurityDeposit    string     `json:"securityDeposit,omitempty"`
	Remark             string     `json:"remark,omitempty"`
	ImageURL           string     `json:"imageUrl,omitempty"`
	SeatID             *int64     `json:"seatId,omitempty"`
	ShiftIDs           []int64    `json:"shiftIds"`
}

// RenewalPayload updates the membership window and assignment for an
// existing member. The gateway recomputes amount paid and due amount itself,
// so neither is submitted here.
type RenewalPayload struct {
	Name            string     `json:"name"`
	FatherName      string     `json:"fatherName,omitempty"`
	Address         string     `json:"address"`
	Email           string     `json:"email,omitempty"`
	Phone           string     `json:"phone"`
	BranchID        int64      `json:"branchId"`
	MembershipStart types.Date `json:"membershipStart"`
	MembershipEnd   types.Date `json:"membershipEnd"`
	TotalFee        string     `json:"totalFee"`
	CashPaid        string     `json:"cashPaid"`
	OnlinePaid      string     `json:"onlinePaid"`
	SecurityDeposit string     `json:"securityDeposit,omitempty"`
	Remark          string     `json:"remark,omitempty"`
	SeatID          *int64     `json:"seatId,omitempty"`
	ShiftIDs        []int64    `json:"shiftIds"`
}

// SeatFilter narrows seat roster fetches.
type SeatFilter struct {
	BranchID *int64
	ShiftID  *int64
}

// ImageUpload carries a validated profile image for storage.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}
