package app

import (
	"fmt"
	"image/color"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"

	"github.com/etbcor/tomo/internal/config"
	"github.com/etbcor/tomo/internal/theme"
)

// NotifyKind selects the icon and color of a notification.
type NotifyKind int

const (
	NotifyInfo NotifyKind = iota
	NotifySuccess
	NotifyWarning
	NotifyError
	// NotifyLink carries an external link the visitor can open from their
	// terminal.
	NotifyLink
)

// MaxNotifications is how many notifications are drawn at once.
const MaxNotifications = 3

// Notification is a transient message in the top right corner.
type Notification struct {
	ID        string
	Kind      NotifyKind
	Message   string
	URL       string
	StartTime time.Time
	Duration  time.Duration
}

// ShowNotification queues a notification. url is only used by NotifyLink.
func (d *Desk) ShowNotification(kind NotifyKind, message, url string) {
	duration := config.NotificationDuration
	if kind == NotifyLink {
		duration *= 2
	}
	d.Notifications = append(d.Notifications, Notification{
		ID:        uuid.NewString(),
		Kind:      kind,
		Message:   message,
		URL:       url,
		StartTime: time.Now(),
		Duration:  duration,
	})

	switch kind {
	case NotifyError:
		logger.Error(message, "session", d.SessionID)
	case NotifyWarning:
		logger.Warn(message, "session", d.SessionID)
	default:
		logger.Debug(message, "url", url, "session", d.SessionID)
	}
}

// CleanupNotifications drops notifications that have expired at now.
func (d *Desk) CleanupNotifications(now time.Time) {
	active := d.Notifications[:0]
	for _, n := range d.Notifications {
		if now.Sub(n.StartTime) < n.Duration {
			active = append(active, n)
		}
	}
	d.Notifications = active
}

func (n Notification) style() (icon string, fg color.Color) {
	switch n.Kind {
	case NotifyError:
		return "✕", theme.NotificationError()
	case NotifyWarning:
		return "⚠", theme.NotificationWarning()
	case NotifySuccess:
		return "✓", theme.NotificationSuccess()
	case NotifyLink:
		return "↗", theme.Link()
	}
	return "ℹ", theme.NotificationInfo()
}

// Render draws the notification box at most maxWidth cells wide.
func (n Notification) Render(maxWidth int) string {
	icon, fg := n.style()
	if config.UseASCIIOnly {
		icon = "*"
	}
	inner := max(maxWidth-6, 8)

	msg := ansi.Truncate(n.Message, inner-3, "…")
	body := fmt.Sprintf("%s  %s", icon, msg)
	if n.URL != "" {
		url := ansi.Truncate(n.URL, inner, "…")
		link := lipgloss.NewStyle().Foreground(theme.Link()).Underline(true).Render(url)
		body += "\n" + ansi.SetHyperlink(n.URL) + link + ansi.ResetHyperlink()
	}

	return lipgloss.NewStyle().
		Border(config.GetBorderForStyle()).
		BorderForeground(fg).
		Background(theme.NotificationBg()).
		Foreground(fg).
		Padding(0, 1).
		Bold(true).
		Render(body)
}

func (d *Desk) notificationLayers() []*lipgloss.Layer {
	d.CleanupNotifications(time.Now())

	maxWidth := min(max(d.Width-8, 20), 60)
	var layers []*lipgloss.Layer
	y := 1
	for i, n := range d.Notifications {
		if i >= MaxNotifications {
			break
		}
		box := n.Render(maxWidth)
		x := max(d.Width-lipgloss.Width(box)-2, 0)
		h := lipgloss.Height(box)
		layers = d.overlay(layers, box, x, y, config.ZIndexNotification, "notif-"+n.ID)
		y += h
	}
	return layers
}
