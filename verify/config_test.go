package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigFromEnvDefaults(t *testing.T) {
	t.Setenv(emojiEnvVar, "")
	t.Setenv(roleNameEnvVar, "")
	t.Setenv(channelIDEnvVar, "")
	t.Setenv(messageIDEnvVar, "")

	cfg := ConfigFromEnv()

	assert.Equal(t, "✅", cfg.Emoji)
	assert.Equal(t, "Verified", cfg.RoleName)
	assert.Empty(t, cfg.ChannelID)
	assert.Empty(t, cfg.MessageID)
}

func TestConfigFromEnvOverrides(t *testing.T) {
	t.Setenv(emojiEnvVar, "🎫")
	t.Setenv(roleNameEnvVar, "Member")
	t.Setenv(channelIDEnvVar, "123456789012345678")
	t.Setenv(messageIDEnvVar, "876543210987654321")

	cfg := ConfigFromEnv()

	assert.Equal(t, "🎫", cfg.Emoji)
	assert.Equal(t, "Member", cfg.RoleName)
	assert.Equal(t, "123456789012345678", cfg.ChannelID)
	assert.Equal(t, "876543210987654321", cfg.MessageID)
}
