package models

import "time"

// PaymentRequest is handed to the payment handler when settling a booking.
type PaymentRequest struct {
	BookingID string  `json:"bookingId"`
	UserID    string  `json:"userId"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
}

// Invoice records the outcome of a payment attempt against a booking.
type Invoice struct {
	InvoiceID       string    `bson:"invoiceId" json:"invoiceId"`
	BookingID       string    `bson:"bookingId" json:"bookingId"`
	UserID          string    `bson:"userId" json:"userId"`
	Amount          float64   `bson:"amount" json:"amount"`
	Currency        string    `bson:"currency" json:"currency"`
	PaymentIntentID string    `bson:"paymentIntentId,omitempty" json:"paymentIntentId,omitempty"`
	ClientSecret    string    `bson:"-" json:"clientSecret,omitempty"`
	Status          string    `bson:"status" json:"status"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ReminderPayload is the asynq task payload for lesson reminders.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	SlotID    string `json:"slotId"`
	UserID    string `json:"userId"`
	Role      string `json:"role"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	FireDate  string `json:"fireDate"`
}
