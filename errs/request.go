package errs

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Request & Input-Validation Errors
var (
	ErrMalformedPayload     = errors.New("Malformed request body")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrRateLimitExceeded    = errors.New("Too many requests, please try again later")
)

// Authentication Errors. The texts are part of the wire contract.
var (
	ErrMissingHeader = errors.New("Missing Authorization header")
	ErrMissingToken  = errors.New("Token missing")
	ErrInvalidToken  = errors.New("Invalid token")
)

// NewValidationError reports missing required fields with a single field-agnostic message,
// e.g. "UserID and Content are required".
func NewValidationError(message string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        validationError(message),
	}
}

type validationError string

func (v validationError) Error() string { return string(v) }

func (v validationError) Is(target error) bool { return target == ErrMissingRequiredField }

func NewMalformedPayloadError(payloadType string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrMalformedPayload,
		Details:    fmt.Sprintf("Malformed %s payload", payloadType),
		Cause:      cause,
	}
}

func NewInvalidPathParamError(name, value string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        fmt.Errorf("Invalid %s", name),
		Details:    fmt.Sprintf("%q is not a positive integer", value),
	}
}

func NewMissingHeaderError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrMissingHeader,
	}
}

func NewMissingTokenError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrMissingToken,
	}
}

// NewInvalidTokenError covers bad signatures, unexpected algorithms and expired tokens alike
func NewInvalidTokenError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusForbidden,
		err:        ErrInvalidToken,
		Cause:      cause,
	}
}

func NewRateLimitError(retryAfter time.Duration) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusTooManyRequests,
		err:        ErrRateLimitExceeded,
		Details:    fmt.Sprintf("retry after %s", retryAfter),
	}
}

// Request & Input-Validation Error Type Checkers
func IsMalformedPayloadError(err error) bool {
	return errors.Is(err, ErrMalformedPayload)
}

func IsMissingRequiredFieldError(err error) bool {
	return errors.Is(err, ErrMissingRequiredField)
}

func IsMissingHeaderError(err error) bool {
	return errors.Is(err, ErrMissingHeader)
}

func IsMissingTokenError(err error) bool {
	return errors.Is(err, ErrMissingToken)
}

func IsInvalidTokenError(err error) bool {
	return errors.Is(err, ErrInvalidToken)
}

func IsRateLimitError(err error) bool {
	return errors.Is(err, ErrRateLimitExceeded)
}
