package bot

import (
	"fmt"
	"time"

	"github.com/averyreid/vera/auditmodels"
	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

const (
	successMessageColour int = 0x28bd00
	warnMessageColour    int = 0xbdb900
	errorMessageColour   int = 0xbd1b00
)

//VeraResponse represents the result of a command which can be both communicated over discord and written to the log.
type VeraResponse interface {
	DiscordResponse() *discordgo.MessageSend
	WriteToLog()
}

//ResponseUserVerified will be returned when a member has been granted the verified role via a command
type ResponseUserVerified struct {
	//The base command name
	command string
	//The entire text contents of the message
	commandMsg string
	//A mention of the member who was verified
	memberRef string
	//The time the success was logged at
	timestamp time.Time
}

//DiscordResponse builds a MessageSend object which can be sent back to whoever sent a command message.
func (r ResponseUserVerified) DiscordResponse() *discordgo.MessageSend {
	description := fmt.Sprintf("✅ %v has been verified!", r.memberRef)
	embed := discordgo.MessageEmbed{
		Title:       "Success! \\o/",
		Type:        discordgo.EmbedTypeRich,
		Description: description,
		Timestamp:   r.timestamp.Format(time.RFC3339),
		Color:       successMessageColour,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Log ID: %d", r.timestamp.UnixNano()),
		},
	}
	return embedMessage(&embed)
}

//WriteToLog dumps data on a discord command response to the log
func (r ResponseUserVerified) WriteToLog() {
	logrus.Infof("%v Completed command %v successfully.", logLineLabel(r.timestamp), r.commandMsg)
}

//ResponseAlreadyVerified will be returned when the target member already held the verified role
type ResponseAlreadyVerified struct {
	//The base command name
	command string
	//The entire text contents of the message
	commandMsg string
	//A mention of the member who was already verified
	memberRef string
	//The time the result was logged at
	timestamp time.Time
}

//DiscordResponse builds a MessageSend object which can be sent back to whoever sent a command message.
func (r ResponseAlreadyVerified) DiscordResponse() *discordgo.MessageSend {
	description := fmt.Sprintf("%v is already verified!", r.memberRef)
	embed := discordgo.MessageEmbed{
		Title:       "Nothing to do",
		Type:        discordgo.EmbedTypeRich,
		Description: description,
		Timestamp:   r.timestamp.Format(time.RFC3339),
		Color:       warnMessageColour,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Log ID: %d", r.timestamp.UnixNano()),
		},
	}
	return embedMessage(&embed)
}

//WriteToLog dumps data on a discord command response to the log
func (r ResponseAlreadyVerified) WriteToLog() {
	logrus.Infof("%v Command %v was a no-op: member already verified.", logLineLabel(r.timestamp), r.commandMsg)
}

//ResponsePromptCreated will be returned when a verification prompt message has been posted
type ResponsePromptCreated struct {
	//The base command name
	command string
	//The entire text contents of the message
	commandMsg string
	//The ID of the prompt message that was created
	messageID string
	//The time the success was logged at
	timestamp time.Time
}

//DiscordResponse builds a MessageSend object which can be sent back to whoever sent a command message.
func (r ResponsePromptCreated) DiscordResponse() *discordgo.MessageSend {
	fields := map[string]string{
		"Message ID": r.messageID,
	}
	embed := discordgo.MessageEmbed{
		Title:       "Verification message created!",
		Type:        discordgo.EmbedTypeRich,
		Description: "Members can now react to the prompt to get verified.",
		Timestamp:   r.timestamp.Format(time.RFC3339),
		Color:       successMessageColour,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Log ID: %d", r.timestamp.UnixNano()),
		},
		Fields: stringMapToFields(fields),
	}
	return embedMessage(&embed)
}

//WriteToLog dumps data on a discord command response to the log
func (r ResponsePromptCreated) WriteToLog() {
	logrus.Infof("%v Created verification prompt message %v.", logLineLabel(r.timestamp), r.messageID)
}

//ResponseAuditLog will be returned with the most recent verification audit records for a server
type ResponseAuditLog struct {
	//The base command name
	command string
	//The entire text contents of the message
	commandMsg string
	//The audit records to display, newest first
	entries []auditmodels.VerificationRecord
	//The time the success was logged at
	timestamp time.Time
}

//DiscordResponse builds a MessageSend object which can be sent back to whoever sent a command message.
func (r ResponseAuditLog) DiscordResponse() *discordgo.MessageSend {
	var fields []*discordgo.MessageEmbedField
	for _, entry := range r.entries {
		name := fmt.Sprintf("%v <@%v>", entry.Action, entry.UserID)
		value := fmt.Sprintf("by %v at %v", entry.Actor, entry.Timestamp.Format(time.RFC3339))
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   name,
			Value:  value,
			Inline: false,
		})
	}
	description := fmt.Sprintf("Showing the %d most recent verification changes.", len(r.entries))
	if len(r.entries) == 0 {
		description = "No verification changes have been recorded yet."
	}
	embed := discordgo.MessageEmbed{
		Title:       "Verification log",
		Type:        discordgo.EmbedTypeRich,
		Description: description,
		Timestamp:   r.timestamp.Format(time.RFC3339),
		Color:       successMessageColour,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Log ID: %d", r.timestamp.UnixNano()),
		},
		Fields: fields,
	}
	return embedMessage(&embed)
}

//WriteToLog dumps data on a discord command response to the log
func (r ResponseAuditLog) WriteToLog() {
	logrus.Infof("%v Returned %d verification audit records.", logLineLabel(r.timestamp), len(r.entries))
}

//ResponseMemberNotFound will be returned when the target of a command could not be resolved to a guild member
type ResponseMemberNotFound struct {
	//The base command name
	command string
	//The entire text contents of the message
	commandMsg string
	//The member reference as the user supplied it
	memberRef string
	//The time the error was logged at
	timestamp time.Time
}

//DiscordResponse builds a MessageSend object which can be sent back to whoever sent a command message.
func (r ResponseMemberNotFound) DiscordResponse() *discordgo.MessageSend {
	description := fmt.Sprintf("Sorry, I couldn't find a member matching `%v` on this server.", r.memberRef)
	embed := discordgo.MessageEmbed{
		Title:       "Member not found",
		Type:        discordgo.EmbedTypeRich,
		Description: description,
		Timestamp:   r.timestamp.Format(time.RFC3339),
		Color:       errorMessageColour,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Log ID: %d", r.timestamp.UnixNano()),
		},
	}
	return embedMessage(&embed)
}

//WriteToLog dumps data on a discord command response to the log
func (r ResponseMemberNotFound) WriteToLog() {
	logrus.Infof("%v Could not resolve member %v for command %v.", logLineLabel(r.timestamp), r.memberRef, r.commandMsg)
}

//ResponseSyntaxError will be returned when there was an issue with the user's input
type ResponseSyntaxError struct {
	//The base command name
	command string
	//The entire text contents of the message
	commandMsg string
	//A human-readable description of the issue
	description string
	//A description of the correct syntax
	syntax string
	//The time the error was logged at
	timestamp time.Time
}

//DiscordResponse builds a MessageSend object which can be sent back to whoever sent a command message.
func (r ResponseSyntaxError) DiscordResponse() *discordgo.MessageSend {
	description := fmt.Sprintf("Sorry, but there was a problem with the data you supplied for the %v command: \n%v", r.command, r.description)
	fields := map[string]string{
		"Your command":   r.commandMsg,
		"Correct syntax": r.syntax,
	}
	embed := discordgo.MessageEmbed{
		Title:       "Uh-oh, there was something wrong with that command",
		Type:        discordgo.EmbedTypeRich,
		Description: description,
		Timestamp:   r.timestamp.Format(time.RFC3339),
		Color:       errorMessageColour,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Log ID: %d", r.timestamp.UnixNano()),
		},
		Fields: stringMapToFields(fields),
	}
	return embedMessage(&embed)
}

//WriteToLog dumps data on a discord command response to the log
func (r ResponseSyntaxError) WriteToLog() {
	logrus.Infof("%v Syntax error in command %v: %v", logLineLabel(r.timestamp), r.commandMsg, r.description)
}

//ResponseInternalError will be returned when there was some kind of error within the bot or when communicating with
//APIs
type ResponseInternalError struct {
	//The base command name
	command string
	//The entire text contents of the message
	commandMsg string
	//A human-readable description of the issue
	description string
	//The time the error was logged at
	timestamp time.Time
}

//DiscordResponse builds a MessageSend object which can be sent back to whoever sent a command message.
func (r ResponseInternalError) DiscordResponse() *discordgo.MessageSend {
	description := fmt.Sprintf("Oops! I encountered an unexpected error whilst running your %v command. Please try again later or file a bug report.", r.command)
	fields := map[string]string{
		"Error": r.description,
	}
	embed := discordgo.MessageEmbed{
		Title:       "Oops, something went wrong ;w;",
		Type:        discordgo.EmbedTypeRich,
		Description: description,
		Timestamp:   r.timestamp.Format(time.RFC3339),
		Color:       errorMessageColour,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Log ID: %d", r.timestamp.UnixNano()),
		},
		Fields: stringMapToFields(fields),
	}
	return embedMessage(&embed)
}

//WriteToLog dumps data on a discord command response to the log
func (r ResponseInternalError) WriteToLog() {
	logrus.Infof("%v Internal error whilst executing command %v: %v", logLineLabel(r.timestamp), r.commandMsg, r.description)
}

//ResponseNotAllowed will be returned when a user tried to run a command that they do not have the correct permission for
type ResponseNotAllowed struct {
	//The base command name
	command string
	//The entire text contents of the message
	commandMsg string
	//A human-readable description of the issue
	description string
	//The time the error was logged at
	timestamp time.Time
}

//DiscordResponse builds a MessageSend object which can be sent back to whoever sent a command message.
func (r ResponseNotAllowed) DiscordResponse() *discordgo.MessageSend {
	description := "I'm sorry Dave, I can't let you do that..."
	fields := map[string]string{
		"Reason":  r.description,
		"Command": r.commandMsg,
	}
	embed := discordgo.MessageEmbed{
		Title:       "That's illegal m8",
		Type:        discordgo.EmbedTypeRich,
		Description: description,
		Timestamp:   r.timestamp.Format(time.RFC3339),
		Color:       errorMessageColour,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Log ID: %d", r.timestamp.UnixNano()),
		},
		Fields: stringMapToFields(fields),
	}
	return embedMessage(&embed)
}

//WriteToLog dumps data on a discord command response to the log
func (r ResponseNotAllowed) WriteToLog() {
	logrus.Infof("%v Rejected command `%v` as the sender did not have the correct priveliges | description: %v", logLineLabel(r.timestamp), r.commandMsg, r.description)
}

//ResponseFeatureDisabled will be returned when a command requires a feature which is not currently running
type ResponseFeatureDisabled struct {
	//The base command name
	command string
	//The entire text contents of the message
	commandMsg string
	//The name of the feature which was disabled
	disabledFeature string
	//The time the error was logged at
	timestamp time.Time
}

//DiscordResponse builds a MessageSend object which can be sent back to whoever sent a command message.
func (r ResponseFeatureDisabled) DiscordResponse() *discordgo.MessageSend {
	description := fmt.Sprintf("Sorry, but the '%v' command requires a feature which is not currently running.", r.command)
	fields := map[string]string{
		"Required Feature(s)": r.disabledFeature,
	}
	embed := discordgo.MessageEmbed{
		Title:       "Required feature is not activated",
		Type:        discordgo.EmbedTypeRich,
		Description: description,
		Timestamp:   r.timestamp.Format(time.RFC3339),
		Color:       errorMessageColour,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Log ID: %d", r.timestamp.UnixNano()),
		},
		Fields: stringMapToFields(fields),
	}
	return embedMessage(&embed)
}

//WriteToLog dumps data on a discord command response to the log
func (r ResponseFeatureDisabled) WriteToLog() {
	logrus.Infof("%v Rejected command `%v` as required feature %v is not loaded", logLineLabel(r.timestamp), r.commandMsg, r.disabledFeature)
}

/////////////////////
//Utility Functions//
/////////////////////

func logLineLabel(t time.Time) string {
	return fmt.Sprintf("#%v# | ", t.UnixNano())
}

func embedMessage(embed *discordgo.MessageEmbed) *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
		TTS:    false,
	}
}

func stringMapToFields(fields map[string]string) []*discordgo.MessageEmbedField {
	var res []*discordgo.MessageEmbedField
	for fieldName, content := range fields {
		field := discordgo.MessageEmbedField{
			Name:   fieldName,
			Value:  content,
			Inline: false,
		}
		res = append(res, &field)
	}
	return res
}
