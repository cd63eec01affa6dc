// Package api is the HTTP client for the AuthGate server used by the CLI.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dmitrijs2005/authgate/internal/common"
)

const requestTimeout = 10 * time.Second

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Identity is the server's view of an authenticated caller.
type Identity struct {
	Username string `json:"username"`
	Message  string `json:"message"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// Register creates an identity on the server and returns the issued token.
func (c *Client) Register(ctx context.Context, username string, password []byte) (string, error) {
	return c.postCredentials(ctx, "/api/user/register", username, password, http.StatusCreated)
}

// Login exchanges credentials for a fresh token.
func (c *Client) Login(ctx context.Context, username string, password []byte) (string, error) {
	return c.postCredentials(ctx, "/api/user/login", username, password, http.StatusOK)
}

// Whoami calls the protected endpoint with the given token.
func (c *Client) Whoami(ctx context.Context, token string) (*Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/user/me", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errorFromResponse(resp.StatusCode, resp.Body)
	}

	identity := &Identity{}
	if err := json.NewDecoder(resp.Body).Decode(identity); err != nil {
		return nil, err
	}
	return identity, nil
}

// Ping checks server liveness.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/ping", nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected ping status: %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) postCredentials(ctx context.Context, path, username string, password []byte, wantStatus int) (string, error) {

	body, err := json.Marshal(credentialsRequest{Username: username, Password: string(password)})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return "", errorFromResponse(resp.StatusCode, resp.Body)
	}

	tr := &tokenResponse{}
	if err := json.NewDecoder(resp.Body).Decode(tr); err != nil {
		return "", err
	}
	return tr.Token, nil
}

// errorFromResponse maps HTTP failure statuses back onto the shared sentinel
// errors so CLI code can match with errors.Is.
func errorFromResponse(status int, body io.Reader) error {
	er := &errorResponse{}
	_ = json.NewDecoder(body).Decode(er)

	var sentinel error
	switch status {
	case http.StatusBadRequest:
		sentinel = common.ErrorInvalidInput
	case http.StatusUnauthorized:
		sentinel = common.ErrorUnauthorized
	case http.StatusForbidden:
		sentinel = common.ErrMissingToken
	case http.StatusConflict:
		sentinel = common.ErrorAlreadyExists
	case http.StatusServiceUnavailable:
		sentinel = common.ErrorUnavailable
	default:
		sentinel = errors.New("unexpected server response")
	}

	if er.Error != "" {
		return fmt.Errorf("%w: %s", sentinel, er.Error)
	}
	return sentinel
}
