package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rpupo63/personal-blog/errs"
)

const maxBodyBytes = 1 << 20

var validate = validator.New(validator.WithRequiredStructEnabled())

// decodeAndValidate reads a JSON body into dst and checks its `validate` tags. Any missing required
// field yields requiredMessage as a single 400; nothing reaches the store in that case.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any, payloadType, requiredMessage string) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errs.NewMalformedPayloadError(payloadType, err)
	}
	if err := validate.Struct(dst); err != nil {
		return errs.NewValidationError(requiredMessage)
	}
	return nil
}

// idParam parses a positive integer path parameter
func idParam(r *http.Request, name, label string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewInvalidPathParamError(label, raw)
	}
	return id, nil
}
