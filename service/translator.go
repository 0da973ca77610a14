package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"discord-webhook-relay/model"
)

const (
	DefaultMessage  = "⚠️ System notification: unspecified message"
	DefaultSeverity = model.SeverityInfo
	DefaultSystem   = "Unknown System"

	footerText = "Triggered by System Webhook"

	// ISO-8601 in UTC with millisecond precision.
	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

var severityColors = map[string]int{
	model.SeverityError:    model.ColorError,
	model.SeverityWarning:  model.ColorWarning,
	model.SeverityCritical: model.ColorCritical,
	model.SeveritySuccess:  model.ColorSuccess,
}

// SeverityColor returns the embed color for a severity, ignoring case.
// Unknown severities get the INFO color.
func SeverityColor(severity string) int {
	if color, ok := severityColors[strings.ToUpper(severity)]; ok {
		return color
	}
	return model.ColorInfo
}

// ApplyDefaults fills every empty field independently. ImageURL has no default.
func ApplyDefaults(p model.TriggerPayload) model.TriggerPayload {
	if p.Message == "" {
		p.Message = DefaultMessage
	}
	if p.Severity == "" {
		p.Severity = DefaultSeverity
	}
	if p.System == "" {
		p.System = DefaultSystem
	}
	return p
}

// BuildDiscordMessage translates a trigger payload into a Discord webhook
// message stamped with now. It never fails.
func BuildDiscordMessage(p model.TriggerPayload, now time.Time) *model.DiscordMessage {
	p = ApplyDefaults(p)

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("[%s] - System Status Alert", p.System),
		Description: p.Message,
		Color:       SeverityColor(p.Severity),
		Timestamp:   now.UTC().Format(timestampLayout),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Severity", Value: p.Severity, Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: footerText},
	}

	if p.ImageURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: p.ImageURL}
	}

	return &model.DiscordMessage{
		Content: fmt.Sprintf("🚨 **%s** ALERT - New Notification!", strings.ToUpper(p.Severity)),
		Embeds:  []*discordgo.MessageEmbed{embed},
	}
}
