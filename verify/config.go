package verify

import (
	"os"

	"github.com/sirupsen/logrus"
)

const emojiEnvVar string = "VERA_VERIFICATION_EMOJI"
const roleNameEnvVar string = "VERA_VERIFIED_ROLE_NAME"
const channelIDEnvVar string = "VERA_VERIFICATION_CHANNEL_ID"
const messageIDEnvVar string = "VERA_VERIFICATION_MESSAGE_ID"

const defaultEmoji string = "✅"
const defaultRoleName string = "Verified"

//Config holds the recognized verification options. ChannelID and MessageID
//are optional narrowing filters: when set, reaction events elsewhere are
//ignored; when empty, a qualifying reaction on any message counts.
type Config struct {
	Emoji     string
	RoleName  string
	ChannelID string
	MessageID string
}

//DefaultConfig returns a config with the stock emoji and role name and no
//channel or message narrowing.
func DefaultConfig() Config {
	return Config{
		Emoji:    defaultEmoji,
		RoleName: defaultRoleName,
	}
}

//ConfigFromEnv builds a config from environment variables, falling back to
//defaults for anything unset.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if emoji, exists := os.LookupEnv(emojiEnvVar); exists && emoji != "" {
		cfg.Emoji = emoji
	} else {
		logrus.Debugf("`%v` env variable was not set, using default emoji %v", emojiEnvVar, defaultEmoji)
	}
	if name, exists := os.LookupEnv(roleNameEnvVar); exists && name != "" {
		cfg.RoleName = name
	} else {
		logrus.Debugf("`%v` env variable was not set, using default role name %v", roleNameEnvVar, defaultRoleName)
	}
	cfg.ChannelID = os.Getenv(channelIDEnvVar)
	cfg.MessageID = os.Getenv(messageIDEnvVar)
	return cfg
}
