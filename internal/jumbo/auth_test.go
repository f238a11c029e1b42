package jumbo_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/jumbohome/jumbo-monitor/internal/jumbo"
	"github.com/jumbohome/jumbo-monitor/internal/jumbo/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, api *testutils.APIServer) *jumbo.Session {
	t.Helper()
	server := httptest.NewServer(api)
	t.Cleanup(server.Close)
	session := jumbo.NewSession("user@example.com", "secret", server.Client(), slog.Default())
	session.BaseURL = server.URL
	return session
}

func TestSession_Token(t *testing.T) {
	api := testutils.APIServer{Username: "user@example.com", Password: "secret"}
	session := newTestSession(t, &api)
	ctx := context.Background()

	token, err := session.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, testutils.Token, token)
	assert.Equal(t, int32(1), api.LoginCalls.Load())

	// cached: no second login
	token, err = session.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, testutils.Token, token)
	assert.Equal(t, int32(1), api.LoginCalls.Load())
}

func TestSession_Token_Concurrent(t *testing.T) {
	api := testutils.APIServer{}
	session := newTestSession(t, &api)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, err := session.Token(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, testutils.Token, token)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), api.LoginCalls.Load())
}

func TestSession_Token_Rejected(t *testing.T) {
	api := testutils.APIServer{RejectLogin: true}
	session := newTestSession(t, &api)

	_, err := session.Token(context.Background())
	var authErr *jumbo.AuthError
	require.ErrorAs(t, err, &authErr)
	var apiErr *jumbo.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	// failure leaves the session without a token: the next call logs in again
	api.RejectLogin = false
	_, err = session.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), api.LoginCalls.Load())
}

func TestSession_Token_NoCredentials(t *testing.T) {
	api := testutils.APIServer{}
	session := newTestSession(t, &api)
	session.SetCredentials("", "")

	_, err := session.Token(context.Background())
	assert.ErrorIs(t, err, jumbo.ErrNotConfigured)
	assert.Zero(t, api.LoginCalls.Load())
}

func TestSession_SetCredentials(t *testing.T) {
	api := testutils.APIServer{Username: "user@example.com", Password: "secret"}
	session := newTestSession(t, &api)

	_, err := session.Token(context.Background())
	require.NoError(t, err)

	session.SetCredentials("other@example.com", "secret")
	_, err = session.Token(context.Background())
	var authErr *jumbo.AuthError
	assert.ErrorAs(t, err, &authErr)
	assert.Equal(t, int32(2), api.LoginCalls.Load())
}
