// Package client is the transport adapter for the remote posts API. It owns
// the base URL and JSON encoding; all business authority stays upstream.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"postboard/internal/models"
	"postboard/internal/observability"
)

// Client talks to the remote posts API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client for the given base URL. No retry policy is applied;
// a failed request is terminal and reported to the caller.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// List fetches the full collection of posts in upstream order.
func (c *Client) List(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := c.do(ctx, http.MethodGet, "/posts", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Get fetches a single post by identifier.
func (c *Client) Get(ctx context.Context, id string) (models.Post, error) {
	var post models.Post
	err := c.do(ctx, http.MethodGet, "/posts/"+id, nil, &post)
	return post, err
}

// Create submits a new post and returns the server-assigned Post.
func (c *Client) Create(ctx context.Context, input models.CreatePostInput) (models.Post, error) {
	var post models.Post
	err := c.do(ctx, http.MethodPost, "/posts", input, &post)
	return post, err
}

// Edit submits a partial update for the post.
func (c *Client) Edit(ctx context.Context, id string, input models.EditPostInput) (models.Post, error) {
	var post models.Post
	err := c.do(ctx, http.MethodPatch, "/posts/"+id, input, &post)
	return post, err
}

// Like increments the post's like count. The request carries no body.
func (c *Client) Like(ctx context.Context, id string) (models.Post, error) {
	var post models.Post
	err := c.do(ctx, http.MethodPatch, "/posts/"+id+"/like", nil, &post)
	return post, err
}

// Delete removes the post. The upstream response body is ignored.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/posts/"+id, nil, nil)
}

// Ping probes the upstream list endpoint. Used by the readiness check.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/posts", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.NewTransportError("ping", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode >= 400 {
		return models.NewUpstreamError("ping", resp.StatusCode)
	}
	return nil
}

// do issues one request and decodes the JSON response into out when non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	op := fmt.Sprintf("%s %s", method, path)

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	observability.ObserveUpstreamRequest(method, time.Since(start), err == nil)
	if err != nil {
		return models.NewTransportError(op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return models.NewUpstreamError(op, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return models.NewTransportError(op, fmt.Errorf("decode response: %w", err))
	}
	return nil
}
