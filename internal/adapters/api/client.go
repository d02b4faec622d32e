package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"eventadmin/internal/domain"
)

// Client implements domain.Gateway against the events backend REST API.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  domain.TokenSource
	logger  *slog.Logger
}

// New returns a gateway client for the given backend origin. The bearer
// token is read from tokens at call time. A zero timeout falls back to 30s
// so a hung request cannot leave the caller waiting forever.
func New(baseURL string, tokens domain.TokenSource, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		logger:  logger,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a token pair via POST /api/auth/login.
func (c *Client) Login(ctx context.Context, email, password string) (domain.TokenPair, error) {
	body, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return domain.TokenPair{}, &domain.NetworkError{Op: "encode login request", Err: err}
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/api/auth/login", bytes.NewReader(body), false)
	if err != nil {
		return domain.TokenPair{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.TokenPair{}, &domain.NetworkError{Op: "login", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return domain.TokenPair{}, &domain.AuthError{Message: "invalid credentials"}
	}
	if resp.StatusCode != http.StatusOK {
		return domain.TokenPair{}, &domain.NetworkError{Op: "login", Err: statusError(resp)}
	}

	var pair domain.TokenPair
	if err := json.NewDecoder(resp.Body).Decode(&pair); err != nil {
		return domain.TokenPair{}, &domain.NetworkError{Op: "decode login response", Err: err}
	}
	return pair, nil
}

type userDetailsResponse struct {
	User domain.User `json:"user"`
}

// UserDetails fetches the authenticated admin's profile, including the
// port_uuid routing identifier, via GET /api/auth/details.
func (c *Client) UserDetails(ctx context.Context) (*domain.User, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/auth/details", nil, true)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &domain.NetworkError{Op: "fetch user details", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, &domain.AuthError{Message: "access token missing or expired"}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &domain.NetworkError{Op: "fetch user details", Err: statusError(resp)}
	}

	var details userDetailsResponse
	if err := json.NewDecoder(resp.Body).Decode(&details); err != nil {
		return nil, &domain.NetworkError{Op: "decode user details", Err: err}
	}
	return &details.User, nil
}

type uploadResponse struct {
	ImageURL string `json:"image_url"`
}

// UploadPoster sends raw image bytes as a multipart POST to
// /api/drive/upload and returns the server-hosted URL.
func (c *Client) UploadPoster(ctx context.Context, filename string, data []byte) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return "", &domain.UploadError{Message: "build upload request", Err: err}
	}
	if _, err := part.Write(data); err != nil {
		return "", &domain.UploadError{Message: "build upload request", Err: err}
	}
	if err := mw.Close(); err != nil {
		return "", &domain.UploadError{Message: "build upload request", Err: err}
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/drive/upload", &buf, false)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &domain.UploadError{Message: "upload poster", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", &domain.UploadError{Message: "poster rejected", Err: statusError(resp)}
	}

	var up uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&up); err != nil {
		return "", &domain.UploadError{Message: "decode upload response", Err: err}
	}
	if up.ImageURL == "" {
		return "", &domain.UploadError{Message: "upload response carried no image url"}
	}
	return up.ImageURL, nil
}

// SubmitEvent posts the fully-assembled payload to /api/events/add and
// returns the created or updated canonical record.
func (c *Client) SubmitEvent(ctx context.Context, sub domain.EventSubmission) (domain.Event, error) {
	body, err := json.Marshal(newEventPayload(sub))
	if err != nil {
		return domain.Event{}, &domain.NetworkError{Op: "encode event payload", Err: err}
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/api/events/add", bytes.NewReader(body), true)
	if err != nil {
		return domain.Event{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.Event{}, &domain.NetworkError{Op: "submit event", Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return domain.Event{}, &domain.AuthError{Message: "access token missing or expired"}
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return domain.Event{}, &domain.ValidationError{Message: fmt.Sprintf("event rejected: %s", readErrorBody(resp))}
	case resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated:
		return domain.Event{}, &domain.NetworkError{Op: "submit event", Err: statusError(resp)}
	}

	var rec eventRecord
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return domain.Event{}, &domain.NetworkError{Op: "decode submitted event", Err: err}
	}
	return rec.toDomain(time.Now().UTC()), nil
}

// ListEvents fetches the full collection via GET /api/events/show. An empty
// result is zero events, not an error.
func (c *Client) ListEvents(ctx context.Context) ([]domain.Event, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/events/show", nil, false)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &domain.NetworkError{Op: "list events", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.NetworkError{Op: "list events", Err: statusError(resp)}
	}

	var records []eventRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, &domain.NetworkError{Op: "decode event list", Err: err}
	}
	now := time.Now().UTC()
	events := make([]domain.Event, 0, len(records))
	for _, rec := range records {
		events = append(events, rec.toDomain(now))
	}
	return events, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, authed bool) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, &domain.NetworkError{Op: "create request", Err: err}
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)
	c.logger.Debug("api request", "method", method, "path", path, "request_id", requestID)
	if authed {
		req.Header.Set("Authorization", "Bearer "+c.tokens.AccessToken())
	}
	return req, nil
}

func statusError(resp *http.Response) error {
	return fmt.Errorf("backend returned status %d", resp.StatusCode)
}

// readErrorBody drains a short error body so server-side validation
// messages can be surfaced verbatim.
func readErrorBody(resp *http.Response) string {
	b, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil || len(bytes.TrimSpace(b)) == 0 {
		return fmt.Sprintf("status %d", resp.StatusCode)
	}
	return string(bytes.TrimSpace(b))
}
