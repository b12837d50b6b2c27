package database

import (
	"errors"

	"github.com/rpupo63/personal-blog/models"
	"gorm.io/gorm"
)

type BlogPostRepo struct {
	db *gorm.DB
}

func NewBlogPostRepo(db *gorm.DB) *BlogPostRepo {
	return &BlogPostRepo{db}
}

// FindAll returns all blog posts from the database
func (r *BlogPostRepo) FindAll() ([]*models.BlogPost, error) {
	blogPosts := []*models.BlogPost{}
	err := r.db.Find(&blogPosts).Error
	return blogPosts, err
}

// FindByID returns a blog post by its ID, or nil when there is no such row
func (r *BlogPostRepo) FindByID(id int64) (*models.BlogPost, error) {
	return findBlogPost(r.db, id)
}

// Count returns the number of stored blog posts
func (r *BlogPostRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.BlogPost{}).Count(&count).Error
	return count, err
}

// Create inserts the post and reads the stored row back in the same transaction, so the result
// carries the assigned id and the store's default timestamps. A failed read-back rolls back the insert.
func (r *BlogPostRepo) Create(blogPost *models.BlogPost) (*models.BlogPost, error) {
	var created *models.BlogPost
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(blogPost).Error; err != nil {
			return err
		}

		row, err := findBlogPost(tx, blogPost.PostID)
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

func findBlogPost(db *gorm.DB, id int64) (*models.BlogPost, error) {
	var blogPost models.BlogPost
	err := db.Where(`"PostID" = ?`, id).First(&blogPost).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blogPost, nil
}
