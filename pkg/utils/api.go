package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// ErrEmptyBody is returned when a successful response carries no payload.
var ErrEmptyBody = errors.New("empty response body")

// StatusError reports a non-2xx response.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status: %s", e.Status)
}

type API struct {
	client  *http.Client
	baseURL string
	token   string
	timeout time.Duration
	logger  *slog.Logger
}

type Option func(*API)

// WithBearerToken sends "Authorization: Bearer <token>" on every request.
func WithBearerToken(token string) Option {
	return func(a *API) { a.token = token }
}

func WithHTTPClient(client *http.Client) Option {
	return func(a *API) { a.client = client }
}

// WithTimeout bounds each request, including reading the body. It applies
// to the client given by WithHTTPClient regardless of option order; that
// client is copied, not modified.
func WithTimeout(timeout time.Duration) Option {
	return func(a *API) { a.timeout = timeout }
}

func WithLogger(logger *slog.Logger) Option {
	return func(a *API) { a.logger = logger }
}

func NewAPI(baseURL string, opts ...Option) *API {
	a := &API{client: http.DefaultClient, baseURL: baseURL, logger: slog.Default()}
	for _, opt := range opts {
		opt(a)
	}
	if a.timeout > 0 {
		client := *a.client
		client.Timeout = a.timeout
		a.client = &client
	}
	a.logger = a.logger.With(slog.String("component", "utils.API"))
	return a
}

// Get fetches path and decodes the JSON body into v. Non-2xx responses,
// empty or null bodies and undecodable payloads are all errors.
func (a *API) Get(ctx context.Context, path string, params url.Values, v any) error {
	if params != nil {
		path += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s%s", a.baseURL, path), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	start := time.Now()
	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Warn("request failed", slog.String("path", path), slog.Any("error", err))
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	a.logger.Debug("response received",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return ErrEmptyBody
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
