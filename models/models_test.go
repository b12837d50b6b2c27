package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToBlogPost(t *testing.T) {
	image := "https://img/1.png"
	post := CreateBlogPostRequest{Title: "t", Description: "d", Content: "c", Image: &image}.ToBlogPost()
	assert.Equal(t, "t", post.Title)
	assert.Equal(t, "d", post.Description)
	assert.Equal(t, "c", post.Content)
	if assert.NotNil(t, post.Image) {
		assert.Equal(t, image, *post.Image)
	}
	assert.Zero(t, post.PostID)

	empty := ""
	assert.Nil(t, CreateBlogPostRequest{Title: "t", Image: &empty}.ToBlogPost().Image)
	assert.Nil(t, CreateBlogPostRequest{Title: "t"}.ToBlogPost().Image)
}

func TestToSubmission(t *testing.T) {
	s := ContactRequest{Name: "Alice", Email: "a@x.com", Message: "Hi"}.ToSubmission()
	assert.Equal(t, &ContactSubmission{Name: "Alice", Email: "a@x.com", Message: "Hi"}, s)
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "UserProfile", UserProfile{}.TableName())
	assert.Equal(t, "BlogPost", BlogPost{}.TableName())
	assert.Equal(t, "Comment", Comment{}.TableName())
	assert.Equal(t, "ContactSubmission", ContactSubmission{}.TableName())
	assert.Len(t, All(), 4)
}
