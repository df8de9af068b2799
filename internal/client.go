// Backend HTTP client for the WanderSync chatbot API.
package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// Client talks to the WanderSync backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a backend client. If baseURL is empty, uses the
// WANDERSYNC_SERVER_URL env var or defaults to the local dev backend.
// Timeout can be configured via WANDERSYNC_CLIENT_TIMEOUT.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = os.Getenv("WANDERSYNC_SERVER_URL")
	}
	if baseURL == "" {
		baseURL = "http://127.0.0.1:5000"
	}

	timeout := 60 * time.Second
	if t := os.Getenv("WANDERSYNC_CLIENT_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			timeout = d
		}
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// LoginResponse is the payload returned by POST /login.
type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	JWT     string `json:"jwt"`
	UserID  string `json:"user_id"`
}

// RegisterResponse is the payload returned by POST /register.
type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ChatResponse is the payload returned by POST /chat and /conversion_chat.
type ChatResponse struct {
	Response string `json:"response"`
}

// SearchResponse is the payload returned by POST /search.
type SearchResponse struct {
	Results []struct {
		Response string `json:"response"`
	} `json:"results"`
}

// ProfileResponse is the payload returned by GET /profile.
type ProfileResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"user"`
}

// DeleteResponse is the payload returned by DELETE /history/{user}/{chat}.
type DeleteResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var resp LoginResponse
	err := c.postJSON(ctx, "/login", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, name, email, password string) (*RegisterResponse, error) {
	var resp RegisterResponse
	err := c.postJSON(ctx, "/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Chat sends a text query and returns the bot response.
func (c *Client) Chat(ctx context.Context, query, userID string) (*ChatResponse, error) {
	var resp ChatResponse
	err := c.postJSON(ctx, "/chat", map[string]string{
		"query":   query,
		"user_id": userID,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ChatAudio sends a recorded audio file as a multipart query.
func (c *Client) ChatAudio(ctx context.Context, path string) (*ChatResponse, error) {
	var resp ChatResponse
	if err := c.postAudio(ctx, "/chat", path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ConversionChat sends a query to the unit/currency conversion endpoint.
func (c *Client) ConversionChat(ctx context.Context, query string) (*ChatResponse, error) {
	var resp ChatResponse
	err := c.postJSON(ctx, "/conversion_chat", map[string]string{"query": query}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Search runs a server-side search over past responses.
func (c *Client) Search(ctx context.Context, query string) (*SearchResponse, error) {
	var resp SearchResponse
	if err := c.postJSON(ctx, "/search", map[string]string{"query": query}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// History fetches the raw history log for a user.
func (c *Client) History(ctx context.Context, userID string) ([]Record, error) {
	endpoint := "/history"
	if userID != "" {
		endpoint += "?user_id=" + userID
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, &TransportError{Endpoint: endpoint, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req, endpoint)
	if err != nil {
		return nil, err
	}
	return ParseRecords(body)
}

// DeleteChat deletes one server-side conversation. Backend failures come
// back as the error text from the response payload; local state is the
// caller's to keep.
func (c *Client) DeleteChat(ctx context.Context, userID, chatID string) error {
	endpoint := fmt.Sprintf("/history/%s/%s", userID, chatID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+endpoint, nil)
	if err != nil {
		return &TransportError{Endpoint: endpoint, Err: err}
	}

	body, err := c.do(req, endpoint)
	if err != nil {
		return err
	}

	var resp DeleteResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return &TransportError{Endpoint: endpoint, Err: err}
	}
	if resp.Error != "" {
		return &TransportError{Endpoint: endpoint, Err: fmt.Errorf("%s", resp.Error)}
	}
	return nil
}

// Profile fetches the authenticated user's profile with a bearer token.
func (c *Client) Profile(ctx context.Context, token string) (*ProfileResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/profile", nil)
	if err != nil {
		return nil, &TransportError{Endpoint: "/profile", Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+token)

	body, err := c.do(req, "/profile")
	if err != nil {
		return nil, err
	}

	var resp ProfileResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &TransportError{Endpoint: "/profile", Err: err}
	}
	return &resp, nil
}

func (c *Client) postJSON(ctx context.Context, endpoint string, payload any, result any) error {
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return &TransportError{Endpoint: endpoint, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return &TransportError{Endpoint: endpoint, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req, endpoint)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, result); err != nil {
		return &TransportError{Endpoint: endpoint, Err: err}
	}
	return nil
}

func (c *Client) postAudio(ctx context.Context, endpoint, path string, result any) error {
	file, err := os.Open(path)
	if err != nil {
		return &TransportError{Endpoint: endpoint, Err: err}
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("audio", filepath.Base(path))
	if err != nil {
		return &TransportError{Endpoint: endpoint, Err: err}
	}
	if _, err := io.Copy(part, file); err != nil {
		return &TransportError{Endpoint: endpoint, Err: err}
	}
	if err := writer.Close(); err != nil {
		return &TransportError{Endpoint: endpoint, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, &buf)
	if err != nil {
		return &TransportError{Endpoint: endpoint, Err: err}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	body, err := c.do(req, endpoint)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, result); err != nil {
		return &TransportError{Endpoint: endpoint, Err: err}
	}
	return nil
}

func (c *Client) do(req *http.Request, endpoint string) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Endpoint: endpoint, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{
			Endpoint: endpoint,
			Err:      fmt.Errorf("server error: %s - %s", resp.Status, string(body)),
		}
	}

	return body, nil
}
