package verify

import "errors"

//ErrPermission is wrapped by directory implementations whenever a call fails
//because the bot lacks the required capability, so that callers can report
//permission problems distinctly from other API failures.
var ErrPermission = errors.New("insufficient permissions")

//ErrUnknownMember is returned by command-path operations when the target
//user is not a member of the guild.
var ErrUnknownMember = errors.New("user is not a member of this guild")

//Directory is the platform API surface used to read and mutate guild roles
//and membership. Lookups report absence as a nil result with a nil error;
//an error always means the call itself failed.
type Directory interface {
	//GuildMember resolves a user to their membership record in a guild,
	//returning nil if they are not currently a member.
	GuildMember(guildID, userID string) (*Member, error)
	//FindRoleByName returns the guild role with the given name, or nil if
	//no such role exists.
	FindRoleByName(guildID, name string) (*Role, error)
	//CreateRole creates a new guild role with the given name and colour.
	CreateRole(guildID, name string, colour int, reason string) (*Role, error)
	//GrantRole adds a role to a member.
	GrantRole(guildID, userID, roleID, reason string) error
	//RevokeRole removes a role from a member.
	RevokeRole(guildID, userID, roleID, reason string) error
	//SendDirectMessage delivers a private message to a user.
	SendDirectMessage(userID, content string) error
	//PostMessageWithReaction posts an instruction message to a channel and
	//pre-attaches the given emoji as a reaction, returning the new
	//message's ID.
	PostMessageWithReaction(channelID, title, body, emoji string) (string, error)
}

//AuditRecorder stores a record of each role change applied by the bot. The
//reconciler never reads these records back; they exist purely for operator
//reference.
type AuditRecorder interface {
	RecordVerification(guildID, userID, action, actor string) error
}
