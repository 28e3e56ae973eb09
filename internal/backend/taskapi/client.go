// Package taskapi implements the service.Service interface against the
// Task Manager REST API.
package taskapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"taskman/internal/config"
	"taskman/internal/service"
	"taskman/internal/session"
)

const (
	// APITimeout is the timeout for API calls.
	APITimeout = 10 * time.Second

	loginPath      = "/auth/login"
	usersPath      = "/users"
	userByEmail    = "/users/email"
	tasksPath      = "/tasks"
	tasksByUserFmt = "/tasks/user/%s"
)

// Client implements service.Service using the Task Manager HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// New creates a new API client. Every outgoing request passes through the
// auth transport, which reads the current token from the session store.
func New(cfg *config.Config, store *session.Store) (*Client, error) {
	base := strings.TrimRight(cfg.APIURL, "/")
	if base == "" {
		return nil, fmt.Errorf("api base url is empty")
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Transport: &authTransport{store: store, next: http.DefaultTransport},
		},
		log: cfg.Logger,
	}, nil
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		log:     zerolog.Nop(),
	}
}

// authTransport attaches the current bearer token to every outgoing
// request. With no token stored the request passes through untouched -
// the Authorization header is absent, not empty. The transport never
// retries and never inspects responses.
type authTransport struct {
	store *session.Store
	next  http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token := t.store.Token()
	if token == "" {
		return t.next.RoundTrip(req)
	}
	// Clone rather than mutate; RoundTrippers must not modify the caller's request.
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+token)
	return t.next.RoundTrip(cloned)
}

// Login authenticates by email and returns the bearer token.
func (c *Client) Login(ctx context.Context, email string) (string, error) {
	var resp struct {
		Token string `json:"token"`
	}
	body := map[string]string{"userEmail": email}
	if err := c.do(ctx, http.MethodPost, loginPath, body, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// CheckUser reports whether an account exists for the email.
func (c *Client) CheckUser(ctx context.Context, email string) (bool, error) {
	var resp struct {
		Exists bool `json:"exists"`
	}
	path := userByEmail + "?email=" + url.QueryEscape(email)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return false, err
	}
	return resp.Exists, nil
}

// CreateUser registers a new account for the email.
func (c *Client) CreateUser(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, http.MethodPost, usersPath, body, nil)
}

// Tasks returns all tasks belonging to the user.
func (c *Client) Tasks(ctx context.Context, email string) ([]service.Task, error) {
	var resp struct {
		Message string         `json:"message"`
		Data    []service.Task `json:"data"`
	}
	path := fmt.Sprintf(tasksByUserFmt, url.PathEscape(email))
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// CreateTask creates a task and returns the server copy.
func (c *Client) CreateTask(ctx context.Context, t service.NewTask) (service.Task, error) {
	var resp struct {
		Message string       `json:"message"`
		Data    service.Task `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, tasksPath, t, &resp); err != nil {
		return service.Task{}, err
	}
	return resp.Data, nil
}

// UpdateTask applies a partial update and returns the server copy.
func (c *Client) UpdateTask(ctx context.Context, id string, patch service.TaskPatch) (service.Task, error) {
	var resp struct {
		Message string       `json:"message"`
		Data    service.Task `json:"data"`
	}
	path := tasksPath + "/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodPut, path, patch, &resp); err != nil {
		return service.Task{}, err
	}
	return resp.Data, nil
}

// DeleteTask deletes a task by ID. The response body, if any, is ignored.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	path := tasksPath + "/" + url.PathEscape(id)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// do issues one request and decodes the response into out (when non-nil).
// Non-2xx responses become *service.APIError carrying the status code and
// the body's message field; nothing is retried.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debug().Str("method", method).Str("path", path).Msg("api request")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	c.log.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Msg("api response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid response body: %w", err)
	}
	return nil
}

// apiError builds a *service.APIError from a non-2xx response, extracting
// the message field from the body when present.
func apiError(resp *http.Response) error {
	apiErr := &service.APIError{StatusCode: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return apiErr
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		apiErr.Message = body.Message
	}
	return apiErr
}
