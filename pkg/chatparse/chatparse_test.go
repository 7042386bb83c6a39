package chatparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		input    string
		expected Platform
		wantErr  bool
	}{
		{"whatsapp", PlatformWhatsApp, false},
		{"WhatsApp", PlatformWhatsApp, false},
		{" TELEGRAM ", PlatformTelegram, false},
		{"chat", PlatformChat, false},
		{"sms", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			platform, err := ParsePlatform(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unsupported platform")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, platform)
		})
	}
}

func TestExtractWhatsApp(t *testing.T) {
	transcript := `[12/01/2024 09:15 AM] Alice: Hello there
[12/01/2024 09:16 AM] Bob: hi Alice
some unstructured noise line
[12/01/2024 09:20 PM] Alice: see you later`

	t.Run("returns the participant's messages in order", func(t *testing.T) {
		messages := ExtractWhatsApp(transcript, "Alice")
		assert.Equal(t, []string{"Hello there", "see you later"}, messages)
	})

	t.Run("sender match is case insensitive", func(t *testing.T) {
		messages := ExtractWhatsApp(transcript, "alice")
		assert.Equal(t, []string{"Hello there", "see you later"}, messages)
	})

	t.Run("unknown participant yields an empty list", func(t *testing.T) {
		messages := ExtractWhatsApp(transcript, "Charlie")
		assert.NotNil(t, messages)
		assert.Empty(t, messages)
	})

	t.Run("non-matching text yields an empty list", func(t *testing.T) {
		messages := ExtractWhatsApp("just some plain text", "Alice")
		assert.NotNil(t, messages)
		assert.Empty(t, messages)
	})
}

func TestExtractTelegram(t *testing.T) {
	transcript := `Bob Smith, [12-01-2024 09:15]
good morning!
Alice, [12-01-2024 09:16]
hey Bob.
Bob Smith, [12-01-2024 09:18]
running late today`

	t.Run("returns the participant's messages in order", func(t *testing.T) {
		messages := ExtractTelegram(transcript, "Bob Smith")
		assert.Equal(t, []string{"good morning!", "running late today"}, messages)
	})

	t.Run("sender match is case sensitive", func(t *testing.T) {
		messages := ExtractTelegram(transcript, "bob smith")
		assert.NotNil(t, messages)
		assert.Empty(t, messages)
	})

	t.Run("unknown participant yields an empty list", func(t *testing.T) {
		messages := ExtractTelegram(transcript, "Charlie")
		assert.Empty(t, messages)
	})
}

func TestExtract(t *testing.T) {
	t.Run("dispatches by platform", func(t *testing.T) {
		messages, err := Extract("[12/01/2024 09:15 AM] Alice: hi", "Alice", PlatformWhatsApp)
		require.NoError(t, err)
		assert.Equal(t, []string{"hi"}, messages)
	})

	t.Run("chat platform has no transcript form", func(t *testing.T) {
		_, err := Extract("hello", "Alice", PlatformChat)
		assert.Error(t, err)
	})
}
