package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rpupo63/personal-blog/api"
	"github.com/rpupo63/personal-blog/auth"
	"github.com/rpupo63/personal-blog/database"
	"github.com/rpupo63/personal-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "client-test-secret"

func setupTestServer(t *testing.T) (*Client, database.Database) {
	t.Helper()

	db, err := database.OpenSQLite(":memory:", &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, database.ApplySchema(db))
	store := database.New(db)

	server, err := api.NewServer(store, map[string]string{"CONTACT_RATE_PER_MINUTE": "0"}, api.WithJWTSecret(testSecret))
	require.NoError(t, err)

	ts := httptest.NewServer(server.Handler)
	t.Cleanup(func() {
		ts.Close()
		_ = store.Close()
	})

	return New(ts.URL, WithHTTPClient(ts.Client())), store
}

func TestClientRoundTrip(t *testing.T) {
	c, store := setupTestServer(t)
	ctx := context.Background()

	require.NoError(t, store.UserProfileRepo().Add(&models.UserProfile{Name: "Eve", Email: "eve@example.com"}))

	issuer, err := auth.NewIssuer(testSecret)
	require.NoError(t, err)
	token, err := issuer.Issue("owner", time.Hour)
	require.NoError(t, err)

	users, err := c.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)

	user, err := c.GetUser(ctx, users[0].UserID)
	require.NoError(t, err)
	assert.Equal(t, "Eve", user.Name)

	post, err := c.CreatePost(ctx, token, models.CreateBlogPostRequest{Title: "T", Description: "D", Content: "C"})
	require.NoError(t, err)
	assert.NotZero(t, post.PostID)

	fetched, err := c.GetPost(ctx, post.PostID)
	require.NoError(t, err)
	assert.Equal(t, post.Title, fetched.Title)
	assert.True(t, post.CreatedDate.Equal(fetched.CreatedDate))

	posts, err := c.ListPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 1)

	comment, err := c.CreateComment(ctx, post.PostID, models.CreateCommentRequest{UserID: user.UserID, Content: "hello"})
	require.NoError(t, err)
	assert.Equal(t, post.PostID, comment.PostID)

	comments, err := c.ListComments(ctx, post.PostID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, comment.CommentID, comments[0].CommentID)

	msg, err := c.SubmitContact(ctx, models.ContactRequest{Name: "Alice", Email: "a@x.com", Message: "Hi"})
	require.NoError(t, err)
	assert.Equal(t, "Your message has been sent successfully.", msg)

	health, err := c.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ok", health.Status)

	status, err := c.SystemStatus(ctx)
	require.NoError(t, err)
	assert.True(t, status.Operational)
}

func TestClientErrors(t *testing.T) {
	c, _ := setupTestServer(t)
	ctx := context.Background()

	_, err := c.GetUser(ctx, 99999)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "User not found", apiErr.Message)

	_, err = c.CreatePost(ctx, "", models.CreateBlogPostRequest{Title: "T", Description: "D", Content: "C"})
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Missing Authorization header", apiErr.Message)

	_, err = c.CreatePost(ctx, "forged", models.CreateBlogPostRequest{Title: "T", Description: "D", Content: "C"})
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)

	_, err = c.SubmitContact(ctx, models.ContactRequest{Name: "Alice", Email: "a@x.com"})
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Name, Email, and Message are required", apiErr.Message)
}

func TestClientNonEnvelopeError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer ts.Close()

	_, err := New(ts.URL).ListPosts(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "bad gateway", apiErr.Message)
}
