package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/marketdesk/sellerctl/session"
)

// Navigator is how the client forces the UI back to the login route when the
// backend rejects the active token. Implementations must be idempotent:
// repeated calls while already on the login route are harmless.
type Navigator interface {
	ToLogin(reason string)
}

// Client is the single choke point for every backend call. All requests made
// through it carry the bearer token from the session controller, and every
// response passes through the unauthorized check - there is no other way to
// talk to the backend, so no call site can bypass the interceptor.
type Client struct {
	baseURL    string
	httpClient *http.Client
	sessions   *session.Controller
	navigator  Navigator
	logger     zerolog.Logger
}

// ClientOption defines a function type to modify the Client instance.
type ClientOption func(*Client)

// WithHTTPClient overrides the underlying HTTP client (primarily for tests).
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithNavigator sets the navigator invoked on forced logout.
func WithNavigator(navigator Navigator) ClientOption {
	return func(c *Client) {
		c.navigator = navigator
	}
}

// WithLogger sets the request logger.
func WithLogger(logger zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient initializes a new Client with required dependencies.
func NewClient(baseURL string, sessions *session.Controller, options ...ClientOption) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("[NewClient] baseURL is required")
	}
	if sessions == nil {
		return nil, errors.New("[NewClient] session controller is required")
	}

	client := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		sessions:   sessions,
		logger:     zerolog.Nop(),
	}

	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

// do builds, sends and decodes one request. The token is captured here, at
// request time, so that an eventual 401 tears down the session that issued
// the request and not a fresh one installed while it was in flight.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "[Client.do] marshal request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "[Client.do] build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.New().String())

	requestToken := c.sessions.Token()
	if requestToken != "" {
		req.Header.Set("Authorization", "Bearer "+requestToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Str("method", method).Str("path", path).Err(err).Msg("no response from backend")
		return &ConnectivityError{Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error().Str("method", method).Str("path", path).Err(err).Msg("response body unreadable")
		return &ConnectivityError{Err: err}
	}

	if resp.StatusCode == http.StatusUnauthorized && path != loginPath {
		c.forceLogout(requestToken, method, path)
		return &RequestError{Status: resp.StatusCode, Message: serverMessage(payload)}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Msg("request rejected")
		return &RequestError{Status: resp.StatusCode, Message: serverMessage(payload)}
	}

	if out != nil && len(payload) > 0 {
		if err := json.Unmarshal(payload, out); err != nil {
			return errors.Wrap(err, "[Client.do] decode response body")
		}
	}
	return nil
}

// forceLogout handles a 401 from any endpoint other than login: clear the
// session the failing request was sent with, then push the UI to the login
// route. Both steps are idempotent, so simultaneous 401s collapse into a
// single transition.
func (c *Client) forceLogout(requestToken, method, path string) {
	c.logger.Warn().Str("method", method).Str("path", path).Msg("token rejected by backend, forcing re-login")
	if err := c.sessions.LogoutIfCurrent(requestToken); err != nil {
		c.logger.Error().Err(err).Msg("failed clearing rejected session")
	}
	if c.navigator != nil {
		c.navigator.ToLogin("session expired")
	}
}

// serverMessage pulls the conventional {"message": ...} field out of an error
// body, if present.
func serverMessage(payload []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return ""
	}
	return body.Message
}
