package bot

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestReactionEventConversion(t *testing.T) {
	reaction := &discordgo.MessageReaction{
		GuildID:   "guild-1",
		ChannelID: "channel-1",
		MessageID: "msg-1",
		UserID:    "user-1",
		Emoji:     discordgo.Emoji{Name: "✅"},
	}
	member := &discordgo.Member{User: &discordgo.User{ID: "user-1", Bot: true}}

	ev := reactionEvent(reaction, member)

	assert.Equal(t, "guild-1", ev.GuildID)
	assert.Equal(t, "channel-1", ev.ChannelID)
	assert.Equal(t, "msg-1", ev.MessageID)
	assert.Equal(t, "user-1", ev.UserID)
	assert.Equal(t, "✅", ev.Emoji)
	assert.True(t, ev.UserIsBot)
}

func TestReactionEventConversionWithoutMember(t *testing.T) {
	reaction := &discordgo.MessageReaction{
		GuildID: "guild-1",
		UserID:  "user-1",
		Emoji:   discordgo.Emoji{Name: "✅"},
	}

	ev := reactionEvent(reaction, nil)

	assert.False(t, ev.UserIsBot)
}

func TestReactionEventConversionCustomEmoji(t *testing.T) {
	reaction := &discordgo.MessageReaction{
		GuildID: "guild-1",
		UserID:  "user-1",
		Emoji:   discordgo.Emoji{Name: "verified", ID: "424242424242424242"},
	}

	ev := reactionEvent(reaction, nil)

	//Custom emoji use discord's name:id form, so they can never collide
	//with a configured unicode symbol
	assert.Equal(t, "verified:424242424242424242", ev.Emoji)
}
