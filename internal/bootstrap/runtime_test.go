package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/PumPum7/modmail/internal/config"
	"github.com/PumPum7/modmail/internal/models"
	"github.com/PumPum7/modmail/internal/notifications"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDispatcher_NoTargets(t *testing.T) {
	d, err := NewDispatcher(&config.Config{}, nil)
	require.NoError(t, err)
	// A dispatcher without targets accepts events and has nothing to wait for.
	d.ThreadClosed(context.Background(), notifications.NewThreadClosedEvent(models.Thread{ID: 1}, nil, nil))
	d.Wait()
}

func TestNewDispatcher_Webhook(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)

	d, err := NewDispatcher(&config.Config{DiscordWebhookURL: srv.URL, NotifyTimeoutSeconds: 2}, nil)
	require.NoError(t, err)

	d.ThreadClosed(context.Background(), notifications.NewThreadClosedEvent(models.Thread{ID: 7, GuildID: "g1"}, nil, nil))
	d.Wait()
	assert.Equal(t, int32(1), hits.Load())
}
