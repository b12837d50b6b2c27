package database

import (
	"errors"

	"github.com/rpupo63/personal-blog/models"
	"gorm.io/gorm"
)

type UserProfileRepo struct {
	db *gorm.DB
}

func NewUserProfileRepo(db *gorm.DB) *UserProfileRepo {
	return &UserProfileRepo{db}
}

// FindAll returns all user profiles in store order
func (r *UserProfileRepo) FindAll() ([]*models.UserProfile, error) {
	users := []*models.UserProfile{}
	err := r.db.Find(&users).Error
	return users, err
}

// FindByID returns a user profile by its ID, or nil when there is no such row
func (r *UserProfileRepo) FindByID(id int64) (*models.UserProfile, error) {
	var user models.UserProfile
	err := r.db.Where(`"UserID" = ?`, id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Count returns the number of user profiles
func (r *UserProfileRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.UserProfile{}).Count(&count).Error
	return count, err
}

// Add inserts a user profile. Profiles only enter the store through seeding.
func (r *UserProfileRepo) Add(user *models.UserProfile) error {
	return r.db.Create(user).Error
}
