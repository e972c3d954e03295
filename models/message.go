package models

import "time"

// Message is a direct message between two users, optionally linked to a
// booking. Ordering is by Timestamp only.
type Message struct {
	ID         string    `bson:"id" json:"id"`
	SenderID   string    `bson:"senderId" json:"senderId"`
	ReceiverID string    `bson:"receiverId" json:"receiverId"`
	BookingID  string    `bson:"bookingId,omitempty" json:"bookingId,omitempty"`
	Content    string    `bson:"content" json:"content"`
	IsRead     bool      `bson:"isRead" json:"isRead"`
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
}
