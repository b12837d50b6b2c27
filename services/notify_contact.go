package services

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/rpupo63/personal-blog/config"
	"github.com/rpupo63/personal-blog/models"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// smsPreviewLength keeps contact SMS within a single segment
const smsPreviewLength = 120

type EmailSender interface {
	SendEmail(ctx context.Context, subject, body, replyTo string, recipients []string) error
}

type SMSSender interface {
	SendSMS(ctx context.Context, to, body string) error
}

// ContactNotifier tells the site owner about new contact form submissions. Each channel is
// optional; a notifier with no channels does nothing.
type ContactNotifier struct {
	email   EmailSender
	emailTo []string
	sms     SMSSender
	smsTo   string
}

func NewContactNotifier(email EmailSender, emailTo []string, sms SMSSender, smsTo string) *ContactNotifier {
	return &ContactNotifier{email: email, emailTo: emailTo, sms: sms, smsTo: smsTo}
}

// NewContactNotifierFromConfig enables email when the Resend keys and CONTACT_NOTIFY_EMAIL are set,
// and SMS when the Twilio keys and CONTACT_NOTIFY_PHONE are set.
func NewContactNotifierFromConfig(cfg map[string]string) *ContactNotifier {
	n := &ContactNotifier{}

	apiKey := config.GetString(cfg, "RESEND_API_KEY", "")
	from := config.GetString(cfg, "RESEND_FROM_EMAIL", "")
	emailTo := config.GetList(cfg, "CONTACT_NOTIFY_EMAIL", nil)
	if apiKey != "" && from != "" && len(emailTo) > 0 {
		n.email = NewResendMailer(apiKey, from)
		n.emailTo = emailTo
	}

	sid := config.GetString(cfg, "TWILIO_ACCOUNT_SID", "")
	token := config.GetString(cfg, "TWILIO_AUTH_TOKEN", "")
	fromNumber := config.GetString(cfg, "TWILIO_FROM_NUMBER", "")
	smsTo := config.GetString(cfg, "CONTACT_NOTIFY_PHONE", "")
	if sid != "" && token != "" && fromNumber != "" && smsTo != "" {
		n.sms = NewTwilioTexter(sid, token, fromNumber)
		n.smsTo = smsTo
	}

	log.Info().
		Bool("email", n.email != nil).
		Bool("sms", n.sms != nil).
		Msg("Contact notifications configured")
	return n
}

func (n *ContactNotifier) Enabled() bool {
	return n != nil && (n.email != nil || n.sms != nil)
}

// Notify sends the submission on every configured channel concurrently and returns the first error
func (n *ContactNotifier) Notify(ctx context.Context, submission models.ContactSubmission) error {
	if !n.Enabled() {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)

	if n.email != nil {
		g.Go(func() error {
			subject := fmt.Sprintf("New contact message from %s", submission.Name)
			body := fmt.Sprintf("From: %s <%s>\n\n%s", submission.Name, submission.Email, submission.Message)
			return n.email.SendEmail(ctx, subject, body, submission.Email, n.emailTo)
		})
	}

	if n.sms != nil {
		g.Go(func() error {
			body := fmt.Sprintf("Contact from %s (%s): %s", submission.Name, submission.Email, truncate(submission.Message, smsPreviewLength))
			return n.sms.SendSMS(ctx, n.smsTo, body)
		})
	}

	return g.Wait()
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-3]) + "..."
}
