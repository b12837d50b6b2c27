package database

import (
	"errors"

	"github.com/rpupo63/personal-blog/models"
	"gorm.io/gorm"
)

type CommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{db}
}

// FindByPostID returns the comments of a post. An unknown post simply has no comments.
func (r *CommentRepo) FindByPostID(postID int64) ([]*models.Comment, error) {
	comments := []*models.Comment{}
	err := r.db.Where(`"PostID" = ?`, postID).Find(&comments).Error
	return comments, err
}

// FindByID returns a comment by its ID, or nil when there is no such row
func (r *CommentRepo) FindByID(id int64) (*models.Comment, error) {
	return findComment(r.db, id)
}

// Create inserts the comment and reads it back within one transaction.
// Foreign-key violations surface as plain errors.
func (r *CommentRepo) Create(comment *models.Comment) (*models.Comment, error) {
	var created *models.Comment
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}

		row, err := findComment(tx, comment.CommentID)
		if err != nil {
			return err
		}
		if row == nil {
			return gorm.ErrRecordNotFound
		}
		created = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func findComment(db *gorm.DB, id int64) (*models.Comment, error) {
	var comment models.Comment
	err := db.Where(`"CommentID" = ?`, id).First(&comment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}
