// Package api is the HTTP client for the Is it Cinema? backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"isitcinema/internal/logging"
	"isitcinema/internal/movie"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

const (
	defaultHTTPTimeout = 90 * time.Second
	maxBodyBytes       = 4 << 20
	slowRequest        = 10 * time.Second

	pathMovieDetails = "/api/movie_details"
	pathRoast        = "/api/roast"
	pathTaste        = "/api/taste"
)

// Client talks to the backend. It is safe for concurrent use; identical
// in-flight requests share one round trip.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	newID      func() string

	group singleflight.Group
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient = &http.Client{Timeout: d}
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = strings.TrimSpace(ua)
	}
}

// WithRequestIDs overrides X-Request-ID generation (useful for tests).
func WithRequestIDs(fn func() string) Option {
	return func(c *Client) {
		if fn != nil {
			c.newID = fn
		}
	}
}

// NewClient constructs a client for the backend at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend root the client posts to.
func (c *Client) BaseURL() string { return c.baseURL }

// MovieDetails fetches details, the review summary and aspect sentiment for
// a film. film may be a Letterboxd URL or slug.
func (c *Client) MovieDetails(ctx context.Context, film string) (movie.Details, error) {
	filmURL, err := movie.FilmURL(film)
	if err != nil {
		return movie.Details{}, err
	}
	body, err := c.post(ctx, pathMovieDetails, map[string]string{"film_url": filmURL})
	if err != nil {
		return movie.Details{}, fmt.Errorf("movie details: %w", err)
	}
	d, err := decodeDetails(body)
	if err != nil {
		return movie.Details{}, fmt.Errorf("movie details: %w", err)
	}
	d.FilmURL = filmURL
	return d, nil
}

// Roast fetches the roast for a Letterboxd user.
func (c *Client) Roast(ctx context.Context, username string) (string, error) {
	name, err := movie.Username(username)
	if err != nil {
		return "", err
	}
	body, err := c.post(ctx, pathRoast, map[string]string{"username": name})
	if err != nil {
		return "", fmt.Errorf("roast: %w", err)
	}
	roast, err := decodeRoast(body)
	if err != nil {
		return "", fmt.Errorf("roast: %w", err)
	}
	return roast, nil
}

// Taste fetches the vibe check: how well a user's taste matches a film.
func (c *Client) Taste(ctx context.Context, film, username string) (string, error) {
	filmURL, err := movie.FilmURL(film)
	if err != nil {
		return "", err
	}
	name, err := movie.Username(username)
	if err != nil {
		return "", err
	}
	body, err := c.post(ctx, pathTaste, map[string]string{"film_url": filmURL, "username": name})
	if err != nil {
		return "", fmt.Errorf("taste: %w", err)
	}
	taste, err := decodeTaste(body)
	if err != nil {
		return "", fmt.Errorf("taste: %w", err)
	}
	return taste, nil
}

// post sends payload as JSON and returns the 2xx response body. Concurrent
// calls with the same endpoint and payload share one round trip. The shared
// request runs detached from every caller's cancellation and is bounded by
// the HTTP client timeout; a caller whose ctx ends only stops waiting.
func (c *Client) post(ctx context.Context, endpoint string, payload interface{}) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	key := endpoint + "\x00" + string(data)
	shared := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (interface{}, error) {
		return c.do(shared, endpoint, data)
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", ErrNetwork, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	}
}

func (c *Client) do(ctx context.Context, endpoint string, data []byte) ([]byte, error) {
	reqID := c.newID()
	log := logging.WithRequestID(logging.CategoryAPI, reqID).WithField("endpoint", endpoint)
	timer := logging.StartTimer(logging.CategoryAPI, "POST "+endpoint)
	defer timer.StopWithThreshold(slowRequest)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	log.Debug("POST %s (%d bytes)", req.URL, len(data))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("request failed: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		log.Error("read body: %v", err)
		return nil, fmt.Errorf("%w: read body: %w", ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn("status %d", resp.StatusCode)
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: truncate(string(body), 512)}
	}

	log.Info("status %d (%d bytes)", resp.StatusCode, len(body))
	return body, nil
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
