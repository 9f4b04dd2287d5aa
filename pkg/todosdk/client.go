package todosdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// AuthHeader is the header carrying the auth token in both directions:
// requests present it, registration and login responses return it.
const AuthHeader = "x-auth"

// Client is a typed HTTP client for the ticklist API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// NewClient creates a Client for the API at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// SetToken sets the auth token presented on subsequent requests. An empty
// token makes requests anonymous again.
func (c *Client) SetToken(token string) { c.token = token }

// Token returns the currently held auth token.
func (c *Client) Token() string { return c.token }

// CreateTodo creates a new todo from text.
func (c *Client) CreateTodo(ctx context.Context, text string) (Todo, error) {
	var out Todo
	_, err := c.do(ctx, http.MethodPost, "/todos", CreateTodoRequest{Text: text}, &out)
	return out, err
}

// ListTodos returns all todos.
func (c *Client) ListTodos(ctx context.Context) ([]Todo, error) {
	var out TodoListResponse
	_, err := c.do(ctx, http.MethodGet, "/todos", nil, &out)
	return out.Todos, err
}

// GetTodo fetches one todo by id.
func (c *Client) GetTodo(ctx context.Context, id string) (Todo, error) {
	var out Todo
	_, err := c.do(ctx, http.MethodGet, "/todos/"+id, nil, &out)
	return out, err
}

// UpdateTodo applies a partial update and returns the updated todo.
func (c *Client) UpdateTodo(ctx context.Context, id string, req UpdateTodoRequest) (Todo, error) {
	var out Todo
	_, err := c.do(ctx, http.MethodPatch, "/todos/"+id, req, &out)
	return out, err
}

// DeleteTodo removes a todo and returns the deleted record.
func (c *Client) DeleteTodo(ctx context.Context, id string) (Todo, error) {
	var out Todo
	_, err := c.do(ctx, http.MethodDelete, "/todos/"+id, nil, &out)
	return out, err
}

// Register creates an account and stores the issued token on the client.
func (c *Client) Register(ctx context.Context, email, password string) (UserProfile, error) {
	var out UserProfile
	resp, err := c.do(ctx, http.MethodPost, "/users", RegisterRequest{Email: email, Password: password}, &out)
	if err != nil {
		return UserProfile{}, err
	}
	c.token = resp.Header.Get(AuthHeader)
	return out, nil
}

// Login authenticates an existing account and stores the issued token on the
// client.
func (c *Client) Login(ctx context.Context, email, password string) (UserProfile, error) {
	var out UserProfile
	resp, err := c.do(ctx, http.MethodPost, "/users/login", LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return UserProfile{}, err
	}
	c.token = resp.Header.Get(AuthHeader)
	return out, nil
}

// Me returns the authenticated user's public profile.
func (c *Client) Me(ctx context.Context) (UserProfile, error) {
	var out UserProfile
	_, err := c.do(ctx, http.MethodGet, "/users/me", nil, &out)
	return out, err
}

// Logout revokes the presenting token and clears it from the client.
func (c *Client) Logout(ctx context.Context) error {
	if _, err := c.do(ctx, http.MethodDelete, "/users/me/token", nil, nil); err != nil {
		return err
	}
	c.token = ""
	return nil
}

// Livez reports basic service health.
func (c *Client) Livez(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	_, err := c.do(ctx, http.MethodGet, "/livez", nil, &out)
	return out, err
}

// Readyz reports readiness including dependency checks.
func (c *Client) Readyz(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	_, err := c.do(ctx, http.MethodGet, "/readyz", nil, &out)
	return out, err
}

// do performs one request. Non-2xx responses return an *APIError; when the
// body carries the standard error shape its code and description are parsed
// into the error.
func (c *Client) do(ctx context.Context, method, path string, body, out any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("todosdk: encoding request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("todosdk: building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set(AuthHeader, c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("todosdk: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("todosdk: reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errBody ErrorResponse
		if json.Unmarshal(raw, &errBody) == nil {
			apiErr.Code = errBody.Error
			apiErr.Description = errBody.ErrorDescription
		}
		return resp, apiErr
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return resp, fmt.Errorf("todosdk: decoding response: %w", err)
		}
	}
	return resp, nil
}
