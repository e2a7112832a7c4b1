package bot

import (
	"github.com/averyreid/vera/verify"
	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

//HandleReactionAdd is called whenever any user adds a reaction to a message
//the bot can see.
func (b *VeraBot) HandleReactionAdd(ev *discordgo.MessageReactionAdd) {
	outcome := b.Reconciler.OnReactionAdd(reactionEvent(ev.MessageReaction, ev.Member))
	logrus.Debugf("Reaction add from user %v on message %v: %v", ev.UserID, ev.MessageID, outcome)
}

//HandleReactionRemove is called whenever any user removes a reaction from a
//message the bot can see. Remove payloads carry no member object, so the
//bot-account check falls back to the reconciler's member lookup.
func (b *VeraBot) HandleReactionRemove(ev *discordgo.MessageReactionRemove) {
	outcome := b.Reconciler.OnReactionRemove(reactionEvent(ev.MessageReaction, nil))
	logrus.Debugf("Reaction remove from user %v on message %v: %v", ev.UserID, ev.MessageID, outcome)
}

func reactionEvent(r *discordgo.MessageReaction, member *discordgo.Member) verify.ReactionEvent {
	ev := verify.ReactionEvent{
		GuildID:   r.GuildID,
		ChannelID: r.ChannelID,
		MessageID: r.MessageID,
		UserID:    r.UserID,
		Emoji:     r.Emoji.APIName(),
	}
	if member != nil && member.User != nil {
		ev.UserIsBot = member.User.Bot
	}
	return ev
}
