package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rpupo63/personal-blog/errs"
	"github.com/rs/zerolog"
)

// envelope is the shape of every /api response: exactly one of the two maps is non-empty
type envelope struct {
	Success map[string]any    `json:"success"`
	Errors  map[string]string `json:"errors"`
}

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

// WriteSuccess wraps payload under key in the success envelope, e.g. {"success":{"post":{...}},"errors":{}}
func (r Responder) WriteSuccess(w http.ResponseWriter, status int, key string, payload any) {
	r.WriteJSON(w, status, envelope{
		Success: map[string]any{key: payload},
		Errors:  map[string]string{},
	})
}

// WriteJSON writes data as-is. Only non-enveloped endpoints such as /health use it directly.
func (r Responder) WriteJSON(w http.ResponseWriter, status int, data any) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		status = http.StatusInternalServerError
		jsonData, _ = json.Marshal(envelope{
			Success: map[string]any{},
			Errors:  map[string]string{"message": errs.InternalMessage},
		})
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteError converts err into the error envelope. Errors that are not *errs.ApiErr are treated as
// internal. 500-class messages are generic; the full cause chain only goes to the log.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) {
		apiErr = errs.NewInternalErrorWithCause("unexpected error", err)
	}

	var event *zerolog.Event
	if apiErr.StatusCode >= http.StatusInternalServerError {
		event = r.logger.Error()
	} else {
		event = r.logger.Warn()
	}
	event.Int("status", apiErr.StatusCode).Str("error", apiErr.GetFullError()).Msg("request failed")

	r.WriteJSON(w, apiErr.StatusCode, envelope{
		Success: map[string]any{},
		Errors:  map[string]string{"message": apiErr.Message()},
	})
}

// wrapDatabaseError wraps a database error with context information
func wrapDatabaseError(operation, entity string, cause error) error {
	return errs.NewDatabaseError(operation, entity, cause)
}

func fmtEntity(entity string, id int64) string {
	return fmt.Sprintf("%s %d", entity, id)
}
