package discord

import (
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"

	"fmpa/internal/domain/entities"
	"fmpa/internal/ports/output"
)

const (
	embedColor     = 0x5865F2
	cancelledColor = 0xED4245
	validatedColor = 0x57F287
)

func formatPlaces(t output.T, locale string, max *int) string {
	if max == nil {
		return t.T(locale, "notify.places.unlimited", nil)
	}
	return strconv.Itoa(*max)
}

// BuildNotificationEmbed renders a notification as a Discord embed, localized through t.
func BuildNotificationEmbed(t output.T, locale string, n output.Notification) *discordgo.MessageEmbed {
	event := n.Event
	embed := &discordgo.MessageEmbed{
		Description: event.Description,
		Color:       embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: t.T(locale, "notify.field.date", nil), Value: FormatEventRange(event.StartsAt, event.EndsAt), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("%s • #%d", event.Type, event.ID)},
	}
	if event.Location != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: t.T(locale, "notify.field.location", nil), Value: event.Location, Inline: true,
		})
	}

	switch n.Kind {
	case output.NotifyEventPublished:
		embed.Title = t.T(locale, "notify.event_published", map[string]any{"Title": event.Title})
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: t.T(locale, "notify.field.places", nil), Value: formatPlaces(t, locale, event.MaxParticipants), Inline: true,
		})
	case output.NotifyEventCancelled:
		embed.Title = t.T(locale, "notify.event_cancelled", map[string]any{"Title": event.Title})
		embed.Color = cancelledColor
	case output.NotifyParticipationValidated:
		embed.Color = validatedColor
		embed.Description = event.Title
		if p := n.Participation; p != nil {
			embed.Title = t.T(locale, "notify.participation_validated", map[string]any{
				"UserID": p.UserID,
				"Status": string(p.Status),
			})
		}
	}
	return embed
}

// EventTitle is a short plain-text label for logs.
func EventTitle(event entities.Event) string {
	return fmt.Sprintf("%s (#%d, %s)", event.Title, event.ID, FormatEventDateTime(event.StartsAt))
}
