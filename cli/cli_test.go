package cli

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rpupo63/personal-blog/api"
	"github.com/rpupo63/personal-blog/database"
	"github.com/rpupo63/personal-blog/models"
	"github.com/rpupo63/personal-blog/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "cli-test-secret"

func setupTestAPI(t *testing.T) (string, database.Database) {
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
	return ts.URL, store
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetIn(strings.NewReader(stdin))
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return out.String(), err
}

func TestPublishAndRead(t *testing.T) {
	url, store := setupTestAPI(t)
	require.NoError(t, store.UserProfileRepo().Add(&models.UserProfile{Name: "Ada", Email: "ada@example.com", Bio: "Writes."}))

	token, err := run(t, "", "token", "--secret", testSecret, "--subject", "ada")
	require.NoError(t, err)
	token = strings.TrimSpace(token)
	require.NotEmpty(t, token)

	out, err := run(t, "", "publish", "--api", url, "--token", token,
		"--title", "Hello", "--description", "First post", "--content", "Body text")
	require.NoError(t, err)
	assert.Contains(t, out, "Published post 1")

	out, err = run(t, "", "posts", "--api", url)
	require.NoError(t, err)
	assert.Contains(t, out, "Hello")
	assert.Contains(t, out, "First post")

	out, err = run(t, "", "post", "1", "--api", url)
	require.NoError(t, err)
	assert.Contains(t, out, "Body text")
	assert.Contains(t, out, "No comments yet. Be the first to comment!")

	out, err = run(t, "", "comment", "1", "--api", url, "--user", "1", "--content", "  Great read  ")
	require.NoError(t, err)
	assert.Contains(t, out, "Great read")

	out, err = run(t, "", "comments", "1", "--api", url)
	require.NoError(t, err)
	assert.Contains(t, out, "Great read")

	out, err = run(t, "", "about", "--api", url)
	require.NoError(t, err)
	assert.Contains(t, out, "Ada")
	assert.Contains(t, out, "Writes.")

	out, err = run(t, "", "users", "--api", url)
	require.NoError(t, err)
	assert.Contains(t, out, "ada@example.com")
}

func TestPublishErrors(t *testing.T) {
	url, _ := setupTestAPI(t)

	_, err := run(t, "", "publish", "--api", url, "--token", "forged", "--title", "t", "--description", "d", "--content", "c")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid token")

	_, err = run(t, "", "post", "abc", "--api", url)
	require.Error(t, err)

	_, err = run(t, "", "about", "42", "--api", url)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "User not found")
}

func TestContactAndStatus(t *testing.T) {
	url, _ := setupTestAPI(t)

	out, err := run(t, "", "contact", "--api", url, "--name", "Alice", "--email", "a@x.com", "--message", "Hi")
	require.NoError(t, err)
	assert.Contains(t, out, "Your message has been sent successfully.")

	_, err = run(t, "", "contact", "--api", url, "--name", "Alice", "--email", "a@x.com", "--message", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Name, Email, and Message are required")

	out, err = run(t, "", "status", "--api", url)
	require.NoError(t, err)
	assert.Contains(t, out, "operational")
}

func TestTerminalCommand(t *testing.T) {
	url, _ := setupTestAPI(t)

	out, err := run(t, "help\n\nfoo\nshow blog\nclear\n", "terminal", "--api", url)
	require.NoError(t, err)
	assert.Contains(t, out, terminal.HelpResponse)
	assert.Contains(t, out, terminal.UnknownResponse)
	assert.Contains(t, out, terminal.NavigateResponse)
	assert.Contains(t, out, "No posts yet")
	assert.Contains(t, out, clearScreen)
}
