package user

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"alabraar/models"
	"alabraar/utils"
)

// ErrUserNotFound is returned for unknown user ids.
var ErrUserNotFound = errors.New("user not found")

func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	usr, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return usr, nil
}

func (s *DefaultUserService) UpdateProfile(id string, name, phone, country, bio string) (*models.User, error) {
	fields := bson.M{}
	if name != "" {
		fields["name"] = name
	}
	if phone != "" {
		fields["phone"] = phone
	}
	if country != "" {
		fields["country"] = country
	}
	if bio != "" {
		fields["bio"] = bio
	}
	if len(fields) > 0 {
		if err := s.Repo.UpdateFields(id, fields); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
	}
	return s.GetUserByID(id)
}

func (s *DefaultUserService) UpdateFCMToken(id, token string) error {
	err := s.Repo.UpdateFields(id, bson.M{"fcmToken": token})
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrUserNotFound
	}
	return err
}

// ApproveUstaadh marks an ustaadh account bookable.
func (s *DefaultUserService) ApproveUstaadh(id string) (*models.User, error) {
	usr, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}
	if usr.Role != models.RoleUstaadh {
		return nil, errors.New("only ustaadh accounts require approval")
	}
	if err := s.Repo.UpdateFields(id, bson.M{"approved": true}); err != nil {
		return nil, err
	}
	usr.Approved = true
	return usr, nil
}

// SetSuspended toggles the soft-suspension state. Suspending also kills the
// user's live session.
func (s *DefaultUserService) SetSuspended(id string, suspended bool) (*models.User, error) {
	usr, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}
	fields := bson.M{"suspended": suspended}
	if suspended {
		fields["tokenHash"] = ""
	}
	if err := s.Repo.UpdateFields(id, fields); err != nil {
		return nil, err
	}
	if suspended {
		utils.InvalidateAuthCache(id)
	}
	usr.Suspended = suspended
	return usr, nil
}

func (s *DefaultUserService) ListByRole(role string) ([]models.User, error) {
	return s.Repo.ListByRole(role)
}

func (s *DefaultUserService) ListApprovedUstaadhs() ([]models.PublicProfile, error) {
	users, err := s.Repo.ListApprovedUstaadhs()
	if err != nil {
		return nil, err
	}
	profiles := make([]models.PublicProfile, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].Public())
	}
	return profiles, nil
}
