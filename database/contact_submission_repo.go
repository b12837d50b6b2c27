package database

import (
	"github.com/rpupo63/personal-blog/models"
	"gorm.io/gorm"
)

type ContactSubmissionRepo struct {
	db *gorm.DB
}

func NewContactSubmissionRepo(db *gorm.DB) *ContactSubmissionRepo {
	return &ContactSubmissionRepo{db}
}

// Add stores a contact form submission
func (r *ContactSubmissionRepo) Add(submission *models.ContactSubmission) error {
	return r.db.Create(submission).Error
}

// FindAll returns every stored submission, oldest first
func (r *ContactSubmissionRepo) FindAll() ([]*models.ContactSubmission, error) {
	submissions := []*models.ContactSubmission{}
	err := r.db.Order(`"SubmissionID"`).Find(&submissions).Error
	return submissions, err
}
