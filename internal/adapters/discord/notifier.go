package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"fmpa/internal/ports/output"
	pkgdiscord "fmpa/pkg/discord"
)

var _ output.Notifier = (*WebhookNotifier)(nil)

// WebhookNotifier posts notifications to a Discord channel webhook.
type WebhookNotifier struct {
	session      *discordgo.Session
	webhookID    string
	webhookToken string
	t            output.T
	locale       string
}

// NewWebhookNotifier creates a token-less session; webhook calls authenticate with the webhook token.
func NewWebhookNotifier(webhookID, webhookToken string, t output.T, locale string) (*WebhookNotifier, error) {
	s, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("discord session: %w", err)
	}
	log.Println("✅ Notifications Discord activées.")
	return &WebhookNotifier{
		session:      s,
		webhookID:    webhookID,
		webhookToken: webhookToken,
		t:            t,
		locale:       locale,
	}, nil
}

func (n *WebhookNotifier) Notify(ctx context.Context, notification output.Notification) error {
	embed := pkgdiscord.BuildNotificationEmbed(n.t, n.locale, notification)
	_, err := n.session.WebhookExecute(n.webhookID, n.webhookToken, false, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{embed},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("discord webhook %s: %w", pkgdiscord.EventTitle(notification.Event), err)
	}
	return nil
}
