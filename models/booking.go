package models

import "time"

// Booking statuses. Transitions are forward-only:
// pending -> confirmed|cancelled, confirmed -> completed|cancelled.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

// Payment statuses on a booking.
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

// Schedule slot statuses. scheduled is the only non-terminal value.
const (
	SlotScheduled = "scheduled"
	SlotCompleted = "completed"
	SlotCancelled = "cancelled"
	SlotMissed    = "missed"
)

// Lesson packages.
const (
	PackageBasic    = "basic"    // Qur'an & Tajweed
	PackageComplete = "complete" // full curriculum
)

// ScheduleSlot is one concrete lesson occurrence inside a booking.
// Date is "YYYY-MM-DD", times are "HH:MM" 24h.
type ScheduleSlot struct {
	ID          string `bson:"id" json:"id"`
	Date        string `bson:"date" json:"date"`
	StartTime   string `bson:"startTime" json:"startTime"`
	EndTime     string `bson:"endTime" json:"endTime"`
	Status      string `bson:"status" json:"status"`
	MeetingLink string `bson:"meetingLink,omitempty" json:"meetingLink,omitempty"`
}

// Booking ties a student to an ustaadh for a subscription period with an
// embedded schedule of concrete lesson slots.
type Booking struct {
	ID                 string         `bson:"id" json:"id"`
	StudentID          string         `bson:"studentId" json:"studentId"`
	UstaadhID          string         `bson:"ustaadhId" json:"ustaadhId"`
	PackageType        string         `bson:"packageType" json:"packageType"`
	HoursPerDay        int            `bson:"hoursPerDay" json:"hoursPerDay"`
	DaysPerWeek        int            `bson:"daysPerWeek" json:"daysPerWeek"`
	SubscriptionMonths int            `bson:"subscriptionMonths" json:"subscriptionMonths"`
	TotalAmount        float64        `bson:"totalAmount" json:"totalAmount"`
	Currency           string         `bson:"currency" json:"currency"`
	Status             string         `bson:"status" json:"status"`
	PaymentStatus      string         `bson:"paymentStatus" json:"paymentStatus"`
	StartDate          string         `bson:"startDate" json:"startDate"`
	EndDate            string         `bson:"endDate" json:"endDate"`
	Schedule           []ScheduleSlot `bson:"schedule" json:"schedule"`
	CancelReason       string         `bson:"cancelReason,omitempty" json:"cancelReason,omitempty"`
	Invoice            *Invoice       `bson:"invoice,omitempty" json:"invoice,omitempty"`
	CreatedAt          time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// SlotReservation is the per-slot guard document written alongside a booking
// insert. A unique (ustaadhId, date, start) index plus the transactional
// write path keeps two students from holding the same window.
type SlotReservation struct {
	UstaadhID string `bson:"ustaadhId" json:"ustaadhId"`
	BookingID string `bson:"bookingId" json:"bookingId"`
	Date      string `bson:"date" json:"date"`
	Start     int    `bson:"start" json:"start"`
	End       int    `bson:"end" json:"end"`
}

// BookingInput is the creation payload.
type BookingInput struct {
	UstaadhID          string         `json:"ustaadhId" binding:"required" validate:"required"`
	PackageType        string         `json:"packageType" binding:"required" validate:"oneof=basic complete"`
	HoursPerDay        int            `json:"hoursPerDay" binding:"required" validate:"min=1,max=8"`
	DaysPerWeek        int            `json:"daysPerWeek" binding:"required" validate:"min=1,max=7"`
	SubscriptionMonths int            `json:"subscriptionMonths" binding:"required" validate:"min=1,max=12"`
	StartDate          string         `json:"startDate" binding:"required" validate:"required"`
	EndDate            string         `json:"endDate" binding:"required" validate:"required"`
	Schedule           []ScheduleSlot `json:"schedule" binding:"required,min=1" validate:"min=1"`
}
