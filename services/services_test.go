package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/rpupo63/personal-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

type recordingEmail struct {
	mu      sync.Mutex
	subject string
	body    string
	replyTo string
	to      []string
	err     error
}

func (r *recordingEmail) SendEmail(_ context.Context, subject, body, replyTo string, recipients []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subject, r.body, r.replyTo, r.to = subject, body, replyTo, recipients
	return r.err
}

type recordingSMS struct {
	mu   sync.Mutex
	to   string
	body string
	err  error
}

func (r *recordingSMS) SendSMS(_ context.Context, to, body string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.to, r.body = to, body
	return r.err
}

type fakeMessages struct {
	params *openapi.CreateMessageParams
}

func (f *fakeMessages) CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error) {
	f.params = params
	sid := "SM123"
	return &openapi.ApiV2010Message{Sid: &sid}, nil
}

var submission = models.ContactSubmission{Name: "Alice", Email: "a@x.com", Message: "hi"}

func TestContactNotifier(t *testing.T) {
	t.Run("disabled notifier is a no-op", func(t *testing.T) {
		n := NewContactNotifier(nil, nil, nil, "")
		assert.False(t, n.Enabled())
		assert.NoError(t, n.Notify(context.Background(), submission))
	})

	t.Run("sends on every channel", func(t *testing.T) {
		email := &recordingEmail{}
		sms := &recordingSMS{}
		n := NewContactNotifier(email, []string{"owner@example.com"}, sms, "+15550001111")

		require.NoError(t, n.Notify(context.Background(), submission))

		assert.Equal(t, "New contact message from Alice", email.subject)
		assert.Contains(t, email.body, "a@x.com")
		assert.Equal(t, "a@x.com", email.replyTo)
		assert.Equal(t, []string{"owner@example.com"}, email.to)
		assert.Equal(t, "+15550001111", sms.to)
		assert.Equal(t, "Contact from Alice (a@x.com): hi", sms.body)
	})

	t.Run("returns channel errors", func(t *testing.T) {
		sms := &recordingSMS{err: errors.New("twilio down")}
		n := NewContactNotifier(nil, nil, sms, "+15550001111")

		assert.ErrorContains(t, n.Notify(context.Background(), submission), "twilio down")
	})

	t.Run("config without keys disables channels", func(t *testing.T) {
		n := NewContactNotifierFromConfig(map[string]string{"CONTACT_NOTIFY_EMAIL": "owner@example.com"})
		assert.False(t, n.Enabled())
	})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate(strings.Repeat("abcdefghij", 3), 10))
}

func TestResendMailer(t *testing.T) {
	var got ResendEmailRequest
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"id":"email-1"}`))
	}))
	defer server.Close()

	mailer := NewResendMailer("re_key", "Blog <blog@example.com>")
	mailer.endpoint = server.URL

	err := mailer.SendEmail(context.Background(), "Hello", "Body", "a@x.com", []string{"owner@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer re_key", auth)
	assert.Equal(t, "Blog <blog@example.com>", got.From)
	assert.Equal(t, []string{"owner@example.com"}, got.To)
	assert.Equal(t, "Body", got.Text)
	assert.Equal(t, "a@x.com", got.ReplyTo)

	assert.Error(t, mailer.SendEmail(context.Background(), "Hello", "Body", "", nil))
}

func TestResendMailerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid from address"}`))
	}))
	defer server.Close()

	mailer := NewResendMailer("re_key", "bad")
	mailer.endpoint = server.URL

	err := mailer.SendEmail(context.Background(), "Hello", "Body", "", []string{"owner@example.com"})
	assert.ErrorContains(t, err, "invalid from address")
}

func TestTwilioTexter(t *testing.T) {
	messages := &fakeMessages{}
	texter := &TwilioTexter{from: "+15550002222", api: messages}

	require.NoError(t, texter.SendSMS(context.Background(), "+15550001111", "hello"))
	require.NotNil(t, messages.params)
	assert.Equal(t, "+15550001111", *messages.params.To)
	assert.Equal(t, "+15550002222", *messages.params.From)
	assert.Equal(t, "hello", *messages.params.Body)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, texter.SendSMS(ctx, "+15550001111", "hello"), context.Canceled)
}
