package model

import (
	"encoding/json"

	"github.com/bwmarrin/discordgo"
)

const (
	SeverityInfo     = "INFO"
	SeverityError    = "ERROR"
	SeverityWarning  = "WARNING"
	SeverityCritical = "CRITICAL"
	SeveritySuccess  = "SUCCESS"
)

const (
	ColorInfo     = 0x0000FF
	ColorError    = 0xFF0000
	ColorWarning  = 0xFFA500
	ColorCritical = 0x8B0000
	ColorSuccess  = 0x00FF00
)

// TriggerPayload is the inbound notification. Every field is optional.
type TriggerPayload struct {
	Message  string `json:"message"`
	Severity string `json:"severity"`
	System   string `json:"system"`
	ImageURL string `json:"imageUrl"`
}

// UnmarshalJSON requires a JSON object (or null) but treats any field that
// is not a string as absent, so it falls back to its default.
func (p *TriggerPayload) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}

	*p = TriggerPayload{
		Message:  stringField(fields["message"]),
		Severity: stringField(fields["severity"]),
		System:   stringField(fields["system"]),
		ImageURL: stringField(fields["imageUrl"]),
	}
	return nil
}

func stringField(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}

// DiscordMessage is the body of a Discord webhook execution.
type DiscordMessage struct {
	Content   string                    `json:"content"`
	Username  string                    `json:"username,omitempty"`
	AvatarURL string                    `json:"avatar_url,omitempty"`
	Embeds    []*discordgo.MessageEmbed `json:"embeds"`
}

type Ack struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

var (
	AckSent       = Ack{Status: "ok", Message: "Notification processed and sent."}
	AckFailed     = Ack{Status: "error", Message: "Failed to send notification to Discord."}
	AckBadRequest = Ack{Status: "error", Message: "Invalid JSON body."}
)
