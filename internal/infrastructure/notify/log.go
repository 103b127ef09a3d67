// Package notify holds the fallback notifier used when no Discord webhook is configured.
package notify

import (
	"context"
	"log"

	"fmpa/internal/ports/output"
)

var _ output.Notifier = (*LogNotifier)(nil)

type LogNotifier struct {
	t      output.T
	locale string
}

func NewLogNotifier(t output.T, locale string) *LogNotifier {
	return &LogNotifier{t: t, locale: locale}
}

func (n *LogNotifier) Notify(_ context.Context, notification output.Notification) error {
	data := map[string]any{"Title": notification.Event.Title}
	if p := notification.Participation; p != nil {
		data["UserID"] = p.UserID
		data["Status"] = string(p.Status)
	}
	msg := n.t.T(n.locale, "notify."+string(notification.Kind), data)
	log.Printf("🔔 [%s] %s (event=%d, actor=%s)", notification.Event.TenantID, msg, notification.Event.ID, notification.ActorID)
	return nil
}
