// Package api implements the remote resource clients for the CashControl
// REST API: one client file per resource over a shared JSON transport with
// bearer-token auth.
package api

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

	"github.com/google/uuid"

	"github.com/JolyGolfqw/CashControlFront/internal/log"
)

// TokenSource supplies the current bearer token and the user id derived from
// it. The token is read at call time, so a rotation takes effect on the next
// request.
type TokenSource interface {
	Token() (string, error)
	UserID() (int64, bool)
}

// Client talks to the CashControl API. All methods are safe for concurrent
// use.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     *log.Logger
}

// NewClient creates a client for the API rooted at baseURL. A nil httpClient
// gets a default with a 15 second timeout.
func NewClient(baseURL string, tokens TokenSource, httpClient *http.Client, logger *log.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if logger == nil {
		logger = log.New(log.Config{Component: log.ComponentAPI})
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		tokens:  tokens,
		log:     logger.WithComponent(log.ComponentAPI),
	}
}

// doJSON performs one API request. A nil out discards the response body.
// When withAuth is set and a token is available it is attached as a bearer
// header; an absent token sends the request unauthenticated and lets the
// server reject it.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any, withAuth bool) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if withAuth {
		if token, err := c.tokens.Token(); err == nil && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	c.log.DebugContext(ctx, "API request started",
		log.FieldRequestID, requestID,
		log.FieldMethod, method,
		log.FieldPath, path,
		log.FieldQuery, query.Encode())

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "API request failed",
			log.FieldRequestID, requestID,
			log.FieldMethod, method,
			log.FieldPath, path,
			log.FieldError, err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	c.log.DebugContext(ctx, "API request completed",
		log.FieldRequestID, requestID,
		log.FieldMethod, method,
		log.FieldPath, path,
		log.FieldStatusCode, resp.StatusCode,
		log.FieldDuration, time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// userIDQuery returns a user_id query parameter when one is derivable from
// the current token, and an empty set otherwise. The parameter is redundant
// with server-side token scoping but is part of the wire contract.
func (c *Client) userIDQuery() url.Values {
	query := url.Values{}
	if id, ok := c.tokens.UserID(); ok {
		query.Set("user_id", fmt.Sprintf("%d", id))
	}
	return query
}
