// Package github implements the platform against the GitHub REST API.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/nwspk/politech-awards-2026/config"

	"go.uber.org/zap"
)

const apiVersion = "2022-11-28"

// APIError is a non-2xx response from the platform. The raw body is
// kept for diagnosis; callers use errors.As to branch on the status.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github: %s %s: %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// Client talks to one fixed repository on the GitHub REST API.
type Client struct {
	baseCtx     context.Context
	log         *zap.SugaredLogger
	httpClient  *http.Client
	baseURL     string
	token       string
	owner       string
	repo        string
	botLogin    string
	maxAttempts int
}

// New creates a GitHub platform backend. Token and repository are
// required here rather than in config validation so the file-only
// modes run without platform credentials.
func New(ctx context.Context, log *zap.SugaredLogger, cfg *config.Config) (*Client, error) {
	if cfg.GitHub.Token == "" {
		return nil, errors.New("github.token is required")
	}
	owner, repo, err := cfg.GitHub.Split()
	if err != nil {
		return nil, err
	}

	maxAttempts := cfg.HTTP.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &Client{
		baseCtx:     ctx,
		log:         log.Named("repo.github"),
		httpClient:  &http.Client{Timeout: cfg.HTTP.RequestTimeout},
		baseURL:     cfg.GitHub.APIBaseURL,
		token:       cfg.GitHub.Token,
		owner:       owner,
		repo:        repo,
		botLogin:    cfg.GitHub.BotLogin,
		maxAttempts: maxAttempts,
	}, nil
}

// BotLogin returns the platform identity the workflow posts under.
func (c *Client) BotLogin() string { return c.botLogin }

// doRequest performs one HTTP request and returns the response body.
// On 2xx, returns the body. On any other status, returns an *APIError
// with the body attached.
func (c *Client) doRequest(ctx context.Context, method, path string, requestBody any, query url.Values) ([]byte, error) {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("github: failed to encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("github: failed to create request: %w", err)
	}
	request.Header.Set("Authorization", "Bearer "+c.token)
	request.Header.Set("Accept", "application/vnd.github+json")
	request.Header.Set("X-GitHub-Api-Version", apiVersion)
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("github: request to %s %s failed: %w", method, path, err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("github: failed to read response body: %w", err)
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return responseBody, nil
	}

	return nil, &APIError{
		StatusCode: response.StatusCode,
		Method:     method,
		Path:       path,
		Body:       string(responseBody),
	}
}

// doRetry performs a request with bounded retry on transient errors.
// Transient errors are connection failures, 429 rate limits and 5xx
// server errors. Other 4xx responses indicate a logic or permission
// fault and are returned immediately.
func (c *Client) doRetry(ctx context.Context, method, path string, requestBody any, query url.Values) ([]byte, error) {
	var lastError error
	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<(attempt-1)) * time.Second
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		body, err := c.doRequest(ctx, method, path, requestBody, query)
		if err == nil {
			return body, nil
		}
		lastError = err

		if !isTransientError(err) {
			return nil, err
		}

		c.log.Warnw("transient platform failure, retrying",
			"method", method,
			"path", path,
			"attempt", attempt+1,
			"error", err,
		)
	}
	return nil, lastError
}

// isTransientError returns true for errors worth retrying: connection
// failures, 429 and 5xx. 4xx (except 429) is permanent.
func isTransientError(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusTooManyRequests {
			return true
		}
		if apiErr.StatusCode >= 500 {
			return true
		}
		if apiErr.StatusCode >= 400 {
			return false
		}
	}

	// Non-HTTP errors (connection refused, timeout, EOF) are transient.
	return true
}
