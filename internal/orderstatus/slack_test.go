package orderstatus_test

import (
	"log/slog"
	"testing"

	"github.com/jumbohome/jumbo-monitor/internal/jumbo"
	"github.com/jumbohome/jumbo-monitor/internal/orderstatus"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSlackSender struct {
	authCalls int
	posted    []string
}

func (f *fakeSlackSender) PostMessage(channelID string, _ ...slack.MsgOption) (string, string, error) {
	f.posted = append(f.posted, channelID)
	return "", "", nil
}

func (f *fakeSlackSender) GetConversations(_ *slack.GetConversationsParameters) ([]slack.Channel, string, error) {
	joined := slack.Channel{}
	joined.ID = "C1"
	joined.Name = "general"
	joined.IsMember = true

	notJoined := slack.Channel{}
	notJoined.ID = "C2"
	notJoined.Name = "random"

	return []slack.Channel{joined, notJoined}, "", nil
}

func (f *fakeSlackSender) AuthTest() (*slack.AuthTestResponse, error) {
	f.authCalls++
	return &slack.AuthTestResponse{UserID: "U1"}, nil
}

func TestSlackNotifier_Notify(t *testing.T) {
	sender := fakeSlackSender{}
	notifier := orderstatus.SlackNotifier{Logger: slog.Default(), SlackSender: &sender}

	update := orderstatus.Update{
		Order:   jumbo.Order{ID: "A1", Status: "OPEN"},
		Message: "vrijdag 10 mei tussen 10-12",
	}
	notifier.Notify(update)
	notifier.Notify(update)

	// only the joined channel is notified; AuthTest result is cached
	require.Len(t, sender.posted, 2)
	assert.Equal(t, []string{"C1", "C1"}, sender.posted)
	assert.Equal(t, 1, sender.authCalls)
}
