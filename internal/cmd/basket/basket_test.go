package basket_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/jumbohome/jumbo-monitor/internal/cmd/basket"
	"github.com/jumbohome/jumbo-monitor/internal/jumbo"
	"github.com/jumbohome/jumbo-monitor/internal/jumbo/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *jumbo.Client {
	t.Helper()
	server := httptest.NewServer(&testutils.APIServer{})
	t.Cleanup(server.Close)
	session := jumbo.NewSession("user@example.com", "secret", server.Client(), slog.Default())
	session.BaseURL = server.URL
	client := jumbo.NewClient(session, server.Client(), slog.Default())
	client.BaseURL = server.URL
	return client
}

func TestShow(t *testing.T) {
	var output bytes.Buffer
	err := basket.Show(context.Background(), newTestClient(t), json.NewEncoder(&output))
	require.NoError(t, err)
	assert.Contains(t, output.String(), "211761ZK")
}

func TestAdd(t *testing.T) {
	var output bytes.Buffer
	err := basket.Add(context.Background(), newTestClient(t), "211761ZK", json.NewEncoder(&output))
	require.NoError(t, err)
	assert.Contains(t, output.String(), "basket")

	err = basket.Add(context.Background(), newTestClient(t), "", json.NewEncoder(&output))
	assert.Error(t, err)
}
