package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMessages(t *testing.T) {
	tests := []struct {
		name    string
		err     *ApiErr
		status  int
		message string
	}{
		{"not found", NewNotFound("Post"), http.StatusNotFound, "Post not found"},
		{"validation", NewValidationError("UserID and Content are required"), http.StatusBadRequest, "UserID and Content are required"},
		{"malformed", NewMalformedPayloadError("comment", errors.New("unexpected EOF")), http.StatusBadRequest, "Malformed request body"},
		{"path param", NewInvalidPathParamError("post id", "abc"), http.StatusBadRequest, "Invalid post id"},
		{"missing header", NewMissingHeaderError(), http.StatusUnauthorized, "Missing Authorization header"},
		{"missing token", NewMissingTokenError(), http.StatusUnauthorized, "Token missing"},
		{"invalid token", NewInvalidTokenError(errors.New("signature is invalid")), http.StatusForbidden, "Invalid token"},
		{"rate limit", NewRateLimitError(time.Minute), http.StatusTooManyRequests, "Too many requests, please try again later"},
		{"database", NewDatabaseError("create", "comment", errors.New("FOREIGN KEY constraint failed")), http.StatusInternalServerError, InternalMessage},
		{"internal", NewInternalError("boom"), http.StatusInternalServerError, InternalMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.StatusCode)
			assert.Equal(t, tt.message, tt.err.Message())
			assert.Equal(t, tt.status, StatusCode(tt.err))
		})
	}
}

func TestGetFullError(t *testing.T) {
	cause := errors.New("FOREIGN KEY constraint failed")
	err := NewDatabaseError("create", "comment", cause)

	assert.Equal(t, "database query failed: Failed to create comment -> FOREIGN KEY constraint failed", err.GetFullError())

	nested := NewInternalErrorWithCause("request", err)
	assert.Contains(t, nested.GetFullError(), "-> database query failed: Failed to create comment -> FOREIGN KEY constraint failed")
}

func TestCheckers(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFound("User")))
	assert.True(t, IsDatabaseError(NewDatabaseError("find", "posts", nil)))
	assert.True(t, IsDatabaseConnectionError(NewDatabaseConnectionError(nil)))
	assert.True(t, IsMissingRequiredFieldError(NewValidationError("Name, Email, and Message are required")))
	assert.True(t, IsMalformedPayloadError(NewMalformedPayloadError("contact", nil)))
	assert.True(t, IsMissingHeaderError(NewMissingHeaderError()))
	assert.True(t, IsMissingTokenError(NewMissingTokenError()))
	assert.True(t, IsInvalidTokenError(NewInvalidTokenError(nil)))
	assert.True(t, IsRateLimitError(NewRateLimitError(time.Second)))
	assert.True(t, IsInternal(NewInternalError("x")))

	wrapped := fmt.Errorf("handler: %w", NewNotFound("Post"))
	assert.True(t, IsNotFound(wrapped))
	assert.Equal(t, http.StatusNotFound, StatusCode(wrapped))

	assert.False(t, IsNotFound(NewValidationError("x")))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("plain")))
}
