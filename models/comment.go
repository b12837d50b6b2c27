package models

import "time"

// Comment belongs to a blog post and is authored by a user profile. The foreign keys are declared
// on BlogPost.Comments and UserProfile.Comments.
type Comment struct {
	CommentID   int64     `json:"CommentID" gorm:"column:CommentID;primaryKey;autoIncrement"`
	PostID      int64     `json:"PostID" gorm:"column:PostID;not null;index:idx_comment_post_id"`
	UserID      int64     `json:"UserID" gorm:"column:UserID;not null"`
	Content     string    `json:"Content" gorm:"column:Content;type:text;not null"`
	CreatedDate time.Time `json:"CreatedDate" gorm:"column:CreatedDate;not null;default:CURRENT_TIMESTAMP"`
}

func (Comment) TableName() string {
	return "Comment"
}

// CreateCommentRequest is the body accepted by POST /api/posts/{postID}/comments.
// The post id comes from the path.
type CreateCommentRequest struct {
	UserID  int64  `json:"UserID" validate:"required"`
	Content string `json:"Content" validate:"required"`
}
