package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrDatabaseQuery      = errors.New("database query failed")
	ErrDatabaseConnection = errors.New("database connection failed")
	ErrSchemaApply        = errors.New("schema apply failed")
)

// NewNotFound builds the 404 for a missing entity, e.g. NewNotFound("User") reads "User not found"
func NewNotFound(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("%s %w", entity, ErrNotFound),
	}
}

// NewDatabaseError creates a new database error with details about the operation.
// Every store failure, constraint violations included, is a 500; the cause is kept for the logs.
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrDatabaseQuery,
		Details:    fmt.Sprintf("Failed to %s %s", operation, entity),
		Cause:      cause,
	}
}

func NewDatabaseConnectionError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusServiceUnavailable,
		err:        ErrDatabaseConnection,
		Details:    "Unable to connect to database",
		Cause:      cause,
	}
}

func NewSchemaApplyError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrSchemaApply,
		Cause:      cause,
	}
}

func IsDatabaseError(err error) bool {
	return errors.Is(err, ErrDatabaseQuery)
}

func IsDatabaseConnectionError(err error) bool {
	return errors.Is(err, ErrDatabaseConnection)
}
