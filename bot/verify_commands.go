package bot

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/averyreid/vera/verify"
	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

const discordDevUIDEnvVar string = "VERA_DISCORD_DEV_UID"

const auditTrailFeatureName string = "verification audit trail"

const defaultLogEntries int = 10
const maxLogEntries int = 25

const handleVerifyUserSyntax string = "`!verify_user @<member>` or `!verify_user <user id>`"
const handleVerificationLogSyntax string = "`!verification_log [count]`"

//HandleSetupVerificationMessage handles a message containing a setup verification command
//command format: !setup_verification
func (b *VeraBot) HandleSetupVerificationMessage(msg *discordgo.MessageCreate) {
	var result VeraResponse
	//Check sender is allowed to administer the server
	allowed, err := b.hasCapability(msg, discordgo.PermissionAdministrator)
	if err != nil {
		logrus.Warnf("Failed to check if message came from admin due to error %v", err)
		result = ResponseInternalError{
			command:     "!setup_verification",
			commandMsg:  msg.Content,
			description: err.Error(),
			timestamp:   time.Now(),
		}
	} else if !allowed {
		result = ResponseNotAllowed{
			command:     "!setup_verification",
			commandMsg:  msg.Content,
			description: "This command requires the Administrator permission",
			timestamp:   time.Now(),
		}
	} else {
		//Post the prompt to the channel the command came from
		msgID, err := b.Reconciler.SetupPrompt(msg.ChannelID)
		if err != nil {
			result = ResponseInternalError{
				command:     "!setup_verification",
				commandMsg:  msg.Content,
				description: err.Error(),
				timestamp:   time.Now(),
			}
		} else {
			result = ResponsePromptCreated{
				command:    "!setup_verification",
				commandMsg: msg.Content,
				messageID:  msgID,
				timestamp:  time.Now(),
			}
		}
	}
	b.respondTo(msg, result)
}

//HandleVerifyUserMessage handles a message containing a manual verification command
//command format: !verify_user <member>
func (b *VeraBot) HandleVerifyUserMessage(msg *discordgo.MessageCreate) {
	var result VeraResponse
	//Check sender is allowed to manage roles
	allowed, err := b.hasCapability(msg, discordgo.PermissionManageRoles)
	if err != nil {
		logrus.Warnf("Failed to check if message came from a role manager due to error %v", err)
		result = ResponseInternalError{
			command:     "!verify_user",
			commandMsg:  msg.Content,
			description: err.Error(),
			timestamp:   time.Now(),
		}
	} else if !allowed {
		result = ResponseNotAllowed{
			command:     "!verify_user",
			commandMsg:  msg.Content,
			description: "This command requires the Manage Roles permission",
			timestamp:   time.Now(),
		}
	} else {
		//Interpret and run the command
		argString := strings.TrimPrefix(msg.Content, "!verify_user")
		argString = strings.TrimLeft(argString, " ")
		userID := interpretMemberString(argString)
		if userID == "" {
			result = ResponseSyntaxError{
				command:     "!verify_user",
				commandMsg:  msg.Content,
				description: "I couldn't understand which member you meant",
				syntax:      handleVerifyUserSyntax,
				timestamp:   time.Now(),
			}
		} else {
			result = b.verifyUser(msg, userID)
		}
	}
	b.respondTo(msg, result)
}

func (b *VeraBot) verifyUser(msg *discordgo.MessageCreate, userID string) VeraResponse {
	memberRef := fmt.Sprintf("<@%v>", userID)
	outcome, err := b.Reconciler.ManuallyVerify(msg.GuildID, userID, msg.Author.String())
	switch {
	case errors.Is(err, verify.ErrUnknownMember):
		return ResponseMemberNotFound{
			command:    "!verify_user",
			commandMsg: msg.Content,
			memberRef:  memberRef,
			timestamp:  time.Now(),
		}
	case err != nil:
		return ResponseInternalError{
			command:     "!verify_user",
			commandMsg:  msg.Content,
			description: err.Error(),
			timestamp:   time.Now(),
		}
	case outcome == verify.OutcomeAlreadyVerified:
		return ResponseAlreadyVerified{
			command:    "!verify_user",
			commandMsg: msg.Content,
			memberRef:  memberRef,
			timestamp:  time.Now(),
		}
	default:
		return ResponseUserVerified{
			command:    "!verify_user",
			commandMsg: msg.Content,
			memberRef:  memberRef,
			timestamp:  time.Now(),
		}
	}
}

//HandleVerificationLogMessage handles a message containing a verification log query command
//command format: !verification_log [count]
func (b *VeraBot) HandleVerificationLogMessage(msg *discordgo.MessageCreate) {
	var result VeraResponse
	//Check sender is allowed to administer the server
	allowed, err := b.hasCapability(msg, discordgo.PermissionAdministrator)
	if err != nil {
		logrus.Warnf("Failed to check if message came from admin due to error %v", err)
		result = ResponseInternalError{
			command:     "!verification_log",
			commandMsg:  msg.Content,
			description: err.Error(),
			timestamp:   time.Now(),
		}
	} else if !allowed {
		result = ResponseNotAllowed{
			command:     "!verification_log",
			commandMsg:  msg.Content,
			description: "This command requires the Administrator permission",
			timestamp:   time.Now(),
		}
	} else if b.AuditStore == nil {
		result = ResponseFeatureDisabled{
			command:         "!verification_log",
			commandMsg:      msg.Content,
			disabledFeature: auditTrailFeatureName,
			timestamp:       time.Now(),
		}
	} else {
		result = b.verificationLog(msg)
	}
	b.respondTo(msg, result)
}

func (b *VeraBot) verificationLog(msg *discordgo.MessageCreate) VeraResponse {
	argString := strings.TrimPrefix(msg.Content, "!verification_log")
	argString = strings.TrimSpace(argString)
	count := defaultLogEntries
	if argString != "" {
		n, err := strconv.Atoi(argString)
		if err != nil || n < 1 {
			return ResponseSyntaxError{
				command:     "!verification_log",
				commandMsg:  msg.Content,
				description: "The entry count must be a positive number",
				syntax:      handleVerificationLogSyntax,
				timestamp:   time.Now(),
			}
		}
		count = n
		if count > maxLogEntries {
			count = maxLogEntries
		}
	}
	entries, err := b.AuditStore.RecentVerifications(msg.GuildID, count)
	if err != nil {
		return ResponseInternalError{
			command:     "!verification_log",
			commandMsg:  msg.Content,
			description: err.Error(),
			timestamp:   time.Now(),
		}
	}
	return ResponseAuditLog{
		command:    "!verification_log",
		commandMsg: msg.Content,
		entries:    entries,
		timestamp:  time.Now(),
	}
}

func (b *VeraBot) respondTo(msg *discordgo.MessageCreate, result VeraResponse) {
	result.WriteToLog()
	resp := result.DiscordResponse()
	resp.Reference = &discordgo.MessageReference{
		MessageID: msg.ID,
		ChannelID: msg.ChannelID,
		GuildID:   msg.GuildID,
	}
	_, err := b.DiscordSession().ChannelMessageSendComplex(msg.ChannelID, resp)
	if err != nil {
		logrus.Errorf("Failed to send response to command due to error %v", err)
	}
}

/**************************
/     Utility Functions
/**************************/

func (b *VeraBot) hasCapability(msg *discordgo.MessageCreate, permission int64) (bool, error) {
	//Works if from dev
	if isDev(msg.Author.ID) {
		return true, nil
	}
	//Works if from server owner
	guild, err := b.DiscordSession().Guild(msg.GuildID)
	if err != nil {
		logrus.Warnf("Failed to fetch guild object from Discord API when checking permissions for user %v in server %v", msg.Author.ID, msg.GuildID)
		return false, err
	} else if guild.OwnerID == msg.Author.ID {
		return true, nil
	}
	//Works if the sender's resolved channel permissions include the capability
	perms, err := b.DiscordSession().UserChannelPermissions(msg.Author.ID, msg.ChannelID)
	if err != nil {
		logrus.Warnf("Failed to resolve channel permissions for user %v in server %v", msg.Author.ID, msg.GuildID)
		return false, err
	}
	return perms&(permission|discordgo.PermissionAdministrator) != 0, nil
}

func isDev(userID string) bool {
	devUID, exists := os.LookupEnv(discordDevUIDEnvVar)
	if !exists {
		return false
	}
	return userID == devUID
}
