package jumbo

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

const tokenHeader = "x-jumbo-token"

// Session owns the credentials and the cached session token. The first
// authenticated call triggers a login; the token is then reused until the
// process restarts or the credentials change. Concurrent callers share a
// single in-flight login request.
type Session struct {
	HTTPClient *http.Client
	BaseURL    string
	logger     *slog.Logger

	lock     sync.RWMutex
	username string
	password string
	token    string

	group singleflight.Group
}

// NewSession returns a Session for the given credentials.
func NewSession(username, password string, httpClient *http.Client, logger *slog.Logger) *Session {
	return &Session{
		HTTPClient: httpClient,
		BaseURL:    BaseURL,
		logger:     logger,
		username:   username,
		password:   password,
	}
}

// Token returns the cached session token, logging in first if no token is
// held. A failed login leaves the session without a token and returns an
// *AuthError: callers do not proceed unauthenticated.
func (s *Session) Token(ctx context.Context) (string, error) {
	s.lock.RLock()
	token := s.token
	s.lock.RUnlock()
	if token != "" {
		return token, nil
	}

	t, err, _ := s.group.Do("login", func() (any, error) {
		// a concurrent caller may have won the race before we got here
		s.lock.RLock()
		token := s.token
		s.lock.RUnlock()
		if token != "" {
			return token, nil
		}

		token, err := s.login(ctx)
		if err != nil {
			s.logger.Error("login failed", slog.Any("err", err))
			return "", err
		}
		s.lock.Lock()
		s.token = token
		s.lock.Unlock()
		s.logger.Debug("logged in")
		return token, nil
	})
	if err != nil {
		return "", err
	}
	return t.(string), nil
}

func (s *Session) login(ctx context.Context) (string, error) {
	s.lock.RLock()
	username, password := s.username, s.password
	s.lock.RUnlock()
	if username == "" || password == "" {
		return "", ErrNotConfigured
	}

	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+loginPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return "", &AuthError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", &AuthError{Err: &APIError{StatusCode: resp.StatusCode, Status: resp.Status, Body: string(body)}}
	}

	token := resp.Header.Get(tokenHeader)
	if token == "" {
		return "", &AuthError{Err: errMissingToken}
	}
	return token, nil
}

// SetCredentials replaces the credential pair and drops the cached token, so
// the next call logs in with the new credentials.
func (s *Session) SetCredentials(username, password string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.username = username
	s.password = password
	s.token = ""
}

// Reset drops the cached token without touching the credentials.
func (s *Session) Reset() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.token = ""
}
