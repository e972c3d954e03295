package user

import (
	"alabraar/models"

	userRepo "alabraar/database/repository/user"
)

// AuthResult carries the signed token plus the account it authenticates.
type AuthResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// RegistrationInput is the signup payload. Role is student or ustaadh;
// admins are provisioned out of band.
type RegistrationInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	Country  string `json:"country"`
	Role     string `json:"role" binding:"required,oneof=student ustaadh"`
	Bio      string `json:"bio"`
}

// UserService manages accounts, authentication and the admin moderation
// surface (ustaadh approval, suspension).
type UserService interface {
	Register(input RegistrationInput) (*AuthResult, error)
	Authenticate(email, password string) (*AuthResult, error)
	GetUserByID(id string) (*models.User, error)
	UpdateProfile(id string, name, phone, country, bio string) (*models.User, error)
	UpdateFCMToken(id, token string) error
	RevokeToken(id string) error

	ApproveUstaadh(id string) (*models.User, error)
	SetSuspended(id string, suspended bool) (*models.User, error)
	ListByRole(role string) ([]models.User, error)
	ListApprovedUstaadhs() ([]models.PublicProfile, error)
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
