package bot

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

//HandleMessage is called upon every recieved message. It checks if the message is a command, and executes it.
func (b *VeraBot) HandleMessage(msg *discordgo.MessageCreate) {
	if len(msg.Content) == 0 || msg.Content[0] != '!' {
		return
	}
	//We have a command
	words := strings.SplitN(msg.Content, " ", 2)
	command := strings.TrimLeft(words[0], "!")
	switch command {
	case "setup_verification":
		b.HandleSetupVerificationMessage(msg)
	case "verify_user":
		b.HandleVerifyUserMessage(msg)
	case "verification_log":
		b.HandleVerificationLogMessage(msg)
	}
}
