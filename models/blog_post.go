package models

import (
	"time"
)

// BlogPost represents a complete blog post. Timestamps are filled in by the store.
type BlogPost struct {
	PostID      int64     `json:"PostID" gorm:"column:PostID;primaryKey;autoIncrement"`
	Title       string    `json:"Title" gorm:"column:Title;type:text;not null"`
	Description string    `json:"Description" gorm:"column:Description;type:text;not null"`
	Content     string    `json:"Content" gorm:"column:Content;type:text;not null"`
	Image       *string   `json:"Image" gorm:"column:Image;type:text"`
	CreatedDate time.Time `json:"CreatedDate" gorm:"column:CreatedDate;not null;default:CURRENT_TIMESTAMP"`
	UpdatedDate time.Time `json:"UpdatedDate" gorm:"column:UpdatedDate;not null;default:CURRENT_TIMESTAMP"`

	Comments []Comment `json:"-" gorm:"foreignKey:PostID;references:PostID;constraint:OnDelete:CASCADE"`
}

func (BlogPost) TableName() string {
	return "BlogPost"
}

// CreateBlogPostRequest is the body accepted by POST /api/posts
type CreateBlogPostRequest struct {
	Title       string  `json:"Title" validate:"required"`
	Description string  `json:"Description" validate:"required"`
	Content     string  `json:"Content" validate:"required"`
	Image       *string `json:"Image,omitempty"`
}

// ToBlogPost converts the request into a row ready for insertion. An empty image is stored as NULL.
func (r CreateBlogPostRequest) ToBlogPost() *BlogPost {
	post := &BlogPost{
		Title:       r.Title,
		Description: r.Description,
		Content:     r.Content,
	}
	if r.Image != nil && *r.Image != "" {
		image := *r.Image
		post.Image = &image
	}
	return post
}
