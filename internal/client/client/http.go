package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophdash/internal/client/models"
	"github.com/dmitrijs2005/gophdash/internal/logging"
	"github.com/google/uuid"
)

const (
	DefaultBaseURL = "https://jsonplaceholder.typicode.com"

	RequestIDHeader = "X-Request-ID"

	commentsPath = "/comments"
	usersPath    = "/users"

	// maxErrorBody caps how much of a failed response ends up in the error.
	maxErrorBody = 512
)

// HTTPClient talks to a jsonplaceholder-compatible REST API.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	log        logging.Logger
}

// NewHTTPClient returns a client for baseURL. A zero timeout means requests
// are bounded only by their context.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

func (c *HTTPClient) GetComments(ctx context.Context) ([]models.Comment, error) {
	var comments []models.Comment
	if err := c.getJSON(ctx, commentsPath, &comments); err != nil {
		c.log.Error(ctx, "error fetching comments", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrFetchComments, err)
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return comments, nil
}

func (c *HTTPClient) GetUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.getJSON(ctx, usersPath, &users); err != nil {
		c.log.Error(ctx, "error fetching users", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrFetchUsers, err)
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, result any) error {
	url := c.baseURL + path
	requestID := uuid.NewString()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "api response",
		"path", path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}
