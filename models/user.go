package models

import "time"

// Roles recognised by the platform.
const (
	RoleAdmin   = "admin"
	RoleUstaadh = "ustaadh"
	RoleStudent = "student"
)

// User represents any account on the platform. Ustaadh accounts are not
// bookable until an admin approves them; suspension bars access to all
// protected routes without deleting the record.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Name         string    `bson:"name" json:"name"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Country      string    `bson:"country,omitempty" json:"country,omitempty"`
	Role         string    `bson:"role" json:"role"`
	Bio          string    `bson:"bio,omitempty" json:"bio,omitempty"`
	Approved     bool      `bson:"approved" json:"approved"`
	Suspended    bool      `bson:"suspended" json:"suspended"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	FCMToken     string    `bson:"fcmToken,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// PublicProfile strips credentials and auth state for listing endpoints.
type PublicProfile struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Bio     string `json:"bio,omitempty"`
	Country string `json:"country,omitempty"`
}

func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:      u.ID,
		Name:    u.Name,
		Role:    u.Role,
		Bio:     u.Bio,
		Country: u.Country,
	}
}
