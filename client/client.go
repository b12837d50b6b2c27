// Package client is a typed Go client for the blog API. It unwraps the response envelope and turns
// error envelopes into *APIError values.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/rpupo63/personal-blog/models"
)

const (
	dialTimeout    = 10 * time.Second
	requestTimeout = 30 * time.Second
)

// APIError is a non-2xx response. Message comes from the envelope's errors.message, or from the raw
// body when the server did not answer with an envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

type envelope struct {
	Success map[string]json.RawMessage `json:"success"`
	Errors  map[string]string          `json:"errors"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: dialTimeout}).DialContext,
			},
			Timeout: requestTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) ListUsers(ctx context.Context) ([]models.UserProfile, error) {
	var users []models.UserProfile
	err := c.do(ctx, http.MethodGet, "/api/users", "", nil, "users", &users)
	return users, err
}

func (c *Client) GetUser(ctx context.Context, userID int64) (*models.UserProfile, error) {
	var user models.UserProfile
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/users/%d", userID), "", nil, "user", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) ListPosts(ctx context.Context) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := c.do(ctx, http.MethodGet, "/api/posts", "", nil, "posts", &posts)
	return posts, err
}

func (c *Client) GetPost(ctx context.Context, postID int64) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/posts/%d", postID), "", nil, "post", &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// CreatePost publishes a post. token is sent as a bearer token.
func (c *Client) CreatePost(ctx context.Context, token string, req models.CreateBlogPostRequest) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := c.do(ctx, http.MethodPost, "/api/posts", token, req, "post", &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) ListComments(ctx context.Context, postID int64) ([]models.Comment, error) {
	var comments []models.Comment
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/posts/%d/comments", postID), "", nil, "comments", &comments)
	return comments, err
}

func (c *Client) CreateComment(ctx context.Context, postID int64, req models.CreateCommentRequest) (*models.Comment, error) {
	var comment models.Comment
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/posts/%d/comments", postID), "", req, "comment", &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// SubmitContact sends the contact form and returns the server's acknowledgment
func (c *Client) SubmitContact(ctx context.Context, req models.ContactRequest) (string, error) {
	var message string
	err := c.do(ctx, http.MethodPost, "/api/contact", "", req, "message", &message)
	return message, err
}

type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var health HealthStatus
	if err := c.doRaw(ctx, http.MethodGet, "/health", &health); err != nil {
		return nil, err
	}
	return &health, nil
}

type SystemStatus struct {
	Operational   bool    `json:"operational"`
	Message       string  `json:"message"`
	LastUpdated   string  `json:"lastUpdated"`
	UptimeSeconds float64 `json:"uptimeSeconds"`
}

func (c *Client) SystemStatus(ctx context.Context) (*SystemStatus, error) {
	var status SystemStatus
	if err := c.doRaw(ctx, http.MethodGet, "/api/system-status", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// do sends an enveloped request and decodes success[key] into dst
func (c *Client) do(ctx context.Context, method, path, token string, body any, key string, dst any) error {
	resp, err := c.send(ctx, method, path, token, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		if resp.StatusCode >= 400 {
			return &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(data))}
		}
		return fmt.Errorf("error decoding response: %w", err)
	}

	if resp.StatusCode >= 400 {
		msg := env.Errors["message"]
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	payload, ok := env.Success[key]
	if !ok {
		return fmt.Errorf("response is missing success.%s", key)
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		return fmt.Errorf("error decoding success.%s: %w", key, err)
	}
	return nil
}

// doRaw is for the endpoints that answer with a bare JSON object
func (c *Client) doRaw(ctx context.Context, method, path string, dst any) error {
	resp, err := c.send(ctx, method, path, "", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		data, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(data))}
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("error decoding response: %w", err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path, token string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("error marshalling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending request: %w", err)
	}
	return resp, nil
}
