// Package chatparse extracts one participant's messages from exported chat
// transcripts. WhatsApp and Telegram export formats are supported; any text
// that does not match the export pattern is silently dropped, so partial
// extraction from a noisy transcript is expected behavior.
package chatparse

import (
	"fmt"
	"regexp"
	"strings"
)

// Platform identifies the source of the text being analyzed
type Platform string

const (
	PlatformWhatsApp Platform = "whatsapp"
	PlatformTelegram Platform = "telegram"
	// PlatformChat marks a free-form single utterance rather than an export;
	// no transcript extraction applies.
	PlatformChat Platform = "chat"
)

// ParsePlatform normalizes and validates a platform string. Unknown values
// are an error rather than a silent fall-through.
func ParsePlatform(s string) (Platform, error) {
	switch p := Platform(strings.ToLower(strings.TrimSpace(s))); p {
	case PlatformWhatsApp, PlatformTelegram, PlatformChat:
		return p, nil
	default:
		return "", fmt.Errorf("unsupported platform: %s", s)
	}
}

var (
	// WhatsApp export line: [DD/MM/YYYY HH:MM AM|PM] Name: message.
	// The sender name is everything up to the first colon after the bracket.
	whatsappPattern = regexp.MustCompile(`\[\d{2}/\d{2}/\d{4} \d{2}:\d{2} (?:AM|PM)\] ([^:]+): (.+)`)

	// Telegram export block: Name, [DD-MM-YYYY HH:MM] followed by the message
	// body on the next line.
	telegramPattern = regexp.MustCompile(`([\w\s]+), \[\d{2}-\d{2}-\d{4} \d{2}:\d{2}\]\n(.+)`)
)

// Extract returns the ordered list of messages sent by person in a transcript
// of the given platform. A transcript with no matches, or a participant who
// sent nothing, yields an empty list, not an error.
func Extract(text, person string, platform Platform) ([]string, error) {
	switch platform {
	case PlatformWhatsApp:
		return ExtractWhatsApp(text, person), nil
	case PlatformTelegram:
		return ExtractTelegram(text, person), nil
	default:
		return nil, fmt.Errorf("unsupported platform: %s", platform)
	}
}

// ExtractWhatsApp extracts person's messages from a WhatsApp export. Sender
// matching is case-insensitive; when several sender groups fold to the same
// name only the first-seen group is returned.
func ExtractWhatsApp(text, person string) []string {
	messages := make(map[string][]string)
	var order []string

	for _, m := range whatsappPattern.FindAllStringSubmatch(text, -1) {
		name, message := m[1], strings.TrimSpace(m[2])
		if _, ok := messages[name]; !ok {
			order = append(order, name)
		}
		messages[name] = append(messages[name], message)
	}

	for _, name := range order {
		if strings.EqualFold(name, person) {
			return messages[name]
		}
	}

	return []string{}
}

// ExtractTelegram extracts person's messages from a Telegram export. Sender
// names are trimmed but matched case-sensitively against person, unlike the
// WhatsApp format.
func ExtractTelegram(text, person string) []string {
	messages := make(map[string][]string)

	for _, m := range telegramPattern.FindAllStringSubmatch(text, -1) {
		name := strings.TrimSpace(m[1])
		messages[name] = append(messages[name], strings.TrimSpace(m[2]))
	}

	if msgs, ok := messages[person]; ok {
		return msgs
	}

	return []string{}
}
