package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/PumPum7/modmail/internal/models"

	"github.com/bwmarrin/discordgo"
)

const (
	colorClosed = 0x95a5a6
	colorUrgent = 0xe74c3c
)

// DiscordLogNotifier posts a summary embed to a guild log channel through a
// Discord channel webhook. Webhook execution needs no bot token.
type DiscordLogNotifier struct {
	session   *discordgo.Session
	webhookID string
	token     string
}

// NewDiscordLogNotifier builds a notifier for the webhook identified by id and token.
func NewDiscordLogNotifier(webhookID, token string, timeout time.Duration) (*DiscordLogNotifier, error) {
	session, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	if timeout > 0 {
		session.Client.Timeout = timeout
	}
	return &DiscordLogNotifier{session: session, webhookID: webhookID, token: token}, nil
}

func (d *DiscordLogNotifier) NotifyThreadClosed(ctx context.Context, event ThreadClosedEvent) error {
	_, err := d.session.WebhookExecute(d.webhookID, d.token, false, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{threadClosedEmbed(event)},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("execute discord webhook: %w", err)
	}
	return nil
}

func threadClosedEmbed(event ThreadClosedEvent) *discordgo.MessageEmbed {
	closedBy := "Unknown"
	if event.ClosedByTag != nil && *event.ClosedByTag != "" {
		closedBy = *event.ClosedByTag
	}

	color := colorClosed
	if event.Thread.Urgency == models.UrgencyUrgent {
		color = colorUrgent
	}

	return &discordgo.MessageEmbed{
		Title:     "Thread closed",
		Color:     color,
		Timestamp: event.OccurredAt.Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Thread", Value: fmt.Sprintf("#%d", event.Thread.ID), Inline: true},
			{Name: "User", Value: fmt.Sprintf("<@%s>", event.Thread.UserID), Inline: true},
			{Name: "Urgency", Value: string(event.Thread.Urgency), Inline: true},
			{Name: "Closed by", Value: closedBy, Inline: true},
			{Name: "Opened", Value: fmt.Sprintf("<t:%d:R>", event.Thread.CreatedAt.Unix()), Inline: true},
		},
	}
}
