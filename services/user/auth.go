package user

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"alabraar/models"
	"alabraar/utils"
)

// ErrInvalidCredentials is returned on a failed login.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrSuspended is returned when a suspended account tries to authenticate.
var ErrSuspended = errors.New("account suspended")

const tokenTTL = 72 * time.Hour

// Register creates a new account. Ustaadh accounts start unapproved and are
// not bookable until an admin approves them.
func (s *DefaultUserService) Register(input RegistrationInput) (*AuthResult, error) {
	logger := utils.GetLogger()

	if existing, err := s.Repo.GetByEmail(input.Email); err == nil && existing != nil {
		return nil, fmt.Errorf("email %s is already registered", input.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	usr := &models.User{
		ID:           uuid.New().String(),
		Email:        input.Email,
		PasswordHash: string(hash),
		Name:         input.Name,
		Phone:        input.Phone,
		Country:      input.Country,
		Role:         input.Role,
		Bio:          input.Bio,
		Approved:     input.Role == models.RoleStudent,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Repo.Create(usr); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	logger.Info("user registered", zap.String("userID", usr.ID), zap.String("role", usr.Role))

	return s.issueToken(usr)
}

// Authenticate verifies credentials and issues a fresh token. The token hash
// is persisted so the auth middleware can verify tokens against the DB when
// the redis cache misses.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResult, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if usr.Suspended {
		return nil, ErrSuspended
	}
	return s.issueToken(usr)
}

func (s *DefaultUserService) issueToken(usr *models.User) (*AuthResult, error) {
	token, err := utils.GenerateToken(usr.ID, usr.Role, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	tokenHash := utils.HashToken(token)
	if err := s.Repo.UpdateFields(usr.ID, bson.M{"tokenHash": tokenHash}); err != nil {
		return nil, fmt.Errorf("failed to persist token hash: %w", err)
	}
	usr.TokenHash = tokenHash

	return &AuthResult{Token: token, User: *usr}, nil
}

// RevokeToken invalidates the user's current token DB-side and clears the
// auth cache entry.
func (s *DefaultUserService) RevokeToken(id string) error {
	if err := s.Repo.UpdateFields(id, bson.M{"tokenHash": ""}); err != nil {
		return err
	}
	utils.InvalidateAuthCache(id)
	return nil
}
