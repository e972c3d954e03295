// File: database/repository/user/interface.go
package userRepo

import (
	"log"

	"alabraar/database"
	"alabraar/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	UpdateFields(id string, fields bson.M) error
	Delete(id string) error
	ListByRole(role string) ([]models.User, error)
	ListApprovedUstaadhs() ([]models.User, error)
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo constructs a new MongoDB UserRepository.
func NewMongoUserRepo() UserRepository {
	r := &mongoUserRepo{
		coll: database.DB().Collection("users"),
	}
	if err := r.EnsureIndexes(); err != nil {
		log.Printf("user repo: %v", err)
	}
	return r
}
