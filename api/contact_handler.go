package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rpupo63/personal-blog/database"
	"github.com/rpupo63/personal-blog/models"
	"github.com/rpupo63/personal-blog/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	contactRequiredMessage = "Name, Email, and Message are required"
	contactSentMessage     = "Your message has been sent successfully."
	notifyTimeout          = 10 * time.Second
)

type contactHandler struct {
	responder             Responder
	logger                zerolog.Logger
	contactSubmissionRepo *database.ContactSubmissionRepo
	notifier              *services.ContactNotifier
}

func newContactHandler(contactSubmissionRepo *database.ContactSubmissionRepo, notifier *services.ContactNotifier) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:             NewResponder(logger),
		logger:                logger,
		contactSubmissionRepo: contactSubmissionRepo,
		notifier:              notifier,
	}
}

// submitContact acknowledges a contact form message. Storing and forwarding the message are
// best-effort: failures are logged and the sender still gets the acknowledgment. Forwarding runs
// in the background once the response is written.
// @Summary Submit contact message
// @Tags Contact
// @Accept json
// @Produce json
// @Param contact body models.ContactRequest true "Contact message"
// @Success 200 {object} envelope "success.message"
// @Failure 400 {object} envelope "Name, Email, and Message are required"
// @Failure 429 {object} envelope "Too many requests"
// @Router /api/contact [post]
func (h contactHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ContactRequest
		if err := decodeAndValidate(w, r, &req, "contact", contactRequiredMessage); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Str("name", req.Name).Str("email", req.Email).Msg("Contact message received")

		submission := req.ToSubmission()
		if err := h.contactSubmissionRepo.Add(submission); err != nil {
			h.logger.Error().Err(err).Str("email", req.Email).Msg("Failed to store contact message")
		}

		contentCreated.WithLabelValues("contact").Inc()

		h.responder.WriteSuccess(w, http.StatusOK, "message", contactSentMessage)

		if h.notifier.Enabled() {
			go h.forward(context.WithoutCancel(r.Context()), *submission)
		}
	}
}

// forward notifies the site owner after the sender has been answered
func (h contactHandler) forward(ctx context.Context, submission models.ContactSubmission) {
	ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
	defer cancel()

	if err := h.notifier.Notify(ctx, submission); err != nil {
		h.logger.Error().Err(err).Str("email", submission.Email).Msg("Failed to forward contact message")
	}
}
