package verify

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

const verifiedRoleColour int = 0x2ecc71

const roleCreateReason string = "Verification role created by bot"
const reactionGrantReason string = "User verified via reaction"
const reactionRevokeReason string = "User removed verification reaction"

const promptTitle string = "Server Verification"
const promptBodyFormat string = "React with %v below to get verified"

//Reconciler ensures a member's possession of the verified role matches their
//current reaction state, creating the role lazily when it is first needed.
//All state lives in the directory; the reconciler itself holds none.
type Reconciler struct {
	dir   Directory
	cfg   Config
	audit AuditRecorder
}

//New builds a reconciler over the given directory. audit may be nil, in
//which case no audit trail is written.
func New(dir Directory, cfg Config, audit AuditRecorder) *Reconciler {
	return &Reconciler{
		dir:   dir,
		cfg:   cfg,
		audit: audit,
	}
}

//Config returns the configuration the reconciler was built with.
func (r *Reconciler) Config() Config {
	return r.cfg
}

//OnReactionAdd grants the verified role to the reacting member. Errors from
//the directory are reported to the log and never propagated; reaction
//handling must not destabilise the gateway dispatch loop.
func (r *Reconciler) OnReactionAdd(ev ReactionEvent) Outcome {
	if !r.eventQualifies(ev) {
		return OutcomeIgnored
	}
	member, err := r.dir.GuildMember(ev.GuildID, ev.UserID)
	if err != nil {
		logrus.Warnf("Failed to resolve member %v in guild %v due to error %v", ev.UserID, ev.GuildID, err)
		return OutcomeFailed
	}
	if member == nil || member.Bot {
		return OutcomeIgnored
	}
	role, err := r.ensureRole(ev.GuildID)
	if err != nil {
		r.reportRoleError("create", ev.GuildID, ev.UserID, err)
		return OutcomeFailed
	}
	if member.HasRole(role.ID) {
		logrus.Infof("%v already has the %v role in guild %v", member.DisplayName, role.Name, ev.GuildID)
		return OutcomeAlreadyVerified
	}
	err = r.dir.GrantRole(ev.GuildID, ev.UserID, role.ID, reactionGrantReason)
	if err != nil {
		r.reportRoleError("grant", ev.GuildID, ev.UserID, err)
		return OutcomeFailed
	}
	logrus.Infof("Verified %v in guild %v", member.DisplayName, ev.GuildID)
	r.record(ev.GuildID, ev.UserID, "grant", "reaction")
	//Best-effort welcome message; the user may have DMs disabled
	welcome := fmt.Sprintf("Welcome! You have been verified and given the %v role.", role.Name)
	if err := r.dir.SendDirectMessage(ev.UserID, welcome); err != nil {
		logrus.Debugf("Could not deliver welcome message to %v: %v", ev.UserID, err)
	}
	return OutcomeVerified
}

//OnReactionRemove revokes the verified role from the member whose reaction
//was withdrawn. A missing role or an unheld role is an ordinary no-op. No
//farewell message is sent; removal is deliberately quiet.
func (r *Reconciler) OnReactionRemove(ev ReactionEvent) Outcome {
	if !r.eventQualifies(ev) {
		return OutcomeIgnored
	}
	member, err := r.dir.GuildMember(ev.GuildID, ev.UserID)
	if err != nil {
		logrus.Warnf("Failed to resolve member %v in guild %v due to error %v", ev.UserID, ev.GuildID, err)
		return OutcomeFailed
	}
	if member == nil || member.Bot {
		return OutcomeIgnored
	}
	role, err := r.dir.FindRoleByName(ev.GuildID, r.cfg.RoleName)
	if err != nil {
		logrus.Warnf("Failed to look up role %v in guild %v due to error %v", r.cfg.RoleName, ev.GuildID, err)
		return OutcomeFailed
	}
	if role == nil {
		//Nothing to remove
		return OutcomeIgnored
	}
	if !member.HasRole(role.ID) {
		return OutcomeNotVerified
	}
	err = r.dir.RevokeRole(ev.GuildID, ev.UserID, role.ID, reactionRevokeReason)
	if err != nil {
		r.reportRoleError("revoke", ev.GuildID, ev.UserID, err)
		return OutcomeFailed
	}
	logrus.Infof("Removed verification from %v in guild %v", member.DisplayName, ev.GuildID)
	r.record(ev.GuildID, ev.UserID, "revoke", "reaction")
	return OutcomeRevoked
}

//SetupPrompt posts a reusable verification prompt to the given channel with
//the verification emoji pre-attached, returning the new message's ID so an
//operator can pin it or configure a message filter. Directory errors are
//returned to the caller; command invocations have their own error surface.
func (r *Reconciler) SetupPrompt(channelID string) (string, error) {
	body := fmt.Sprintf(promptBodyFormat, r.cfg.Emoji)
	msgID, err := r.dir.PostMessageWithReaction(channelID, promptTitle, body, r.cfg.Emoji)
	if err != nil {
		logrus.Warnf("Failed to post verification prompt to channel %v due to error %v", channelID, err)
		return "", err
	}
	logrus.Infof("Posted verification prompt %v to channel %v", msgID, channelID)
	return msgID, nil
}

//ManuallyVerify grants the verified role to a member on behalf of an
//administrator, whose identity is included in the audit reason. Already
//holding the role is an idempotent no-op. Directory errors are returned to
//the caller.
func (r *Reconciler) ManuallyVerify(guildID, userID, actorTag string) (Outcome, error) {
	member, err := r.dir.GuildMember(guildID, userID)
	if err != nil {
		return OutcomeFailed, err
	}
	if member == nil {
		return OutcomeFailed, fmt.Errorf("%w: %v in guild %v", ErrUnknownMember, userID, guildID)
	}
	role, err := r.ensureRole(guildID)
	if err != nil {
		return OutcomeFailed, err
	}
	if member.HasRole(role.ID) {
		logrus.Infof("%v is already verified in guild %v", member.DisplayName, guildID)
		return OutcomeAlreadyVerified, nil
	}
	reason := fmt.Sprintf("Manually verified by %v", actorTag)
	err = r.dir.GrantRole(guildID, userID, role.ID, reason)
	if err != nil {
		return OutcomeFailed, err
	}
	logrus.Infof("%v manually verified %v in guild %v", actorTag, member.DisplayName, guildID)
	r.record(guildID, userID, "grant", actorTag)
	return OutcomeVerified, nil
}

//eventQualifies applies the preconditions shared by the add and remove
//paths: not a bot, the configured emoji exactly, a resolvable guild and,
//when configured, the channel and message narrowing filters.
func (r *Reconciler) eventQualifies(ev ReactionEvent) bool {
	if ev.UserIsBot {
		return false
	}
	if ev.Emoji != r.cfg.Emoji {
		return false
	}
	if ev.GuildID == "" {
		return false
	}
	if r.cfg.ChannelID != "" && ev.ChannelID != r.cfg.ChannelID {
		return false
	}
	if r.cfg.MessageID != "" && ev.MessageID != r.cfg.MessageID {
		return false
	}
	return true
}

//ensureRole resolves the configured role by name, creating it with the
//affirmative colour if it does not exist yet.
func (r *Reconciler) ensureRole(guildID string) (*Role, error) {
	role, err := r.dir.FindRoleByName(guildID, r.cfg.RoleName)
	if err != nil {
		return nil, err
	}
	if role != nil {
		return role, nil
	}
	role, err = r.dir.CreateRole(guildID, r.cfg.RoleName, verifiedRoleColour, roleCreateReason)
	if err != nil {
		return nil, err
	}
	logrus.Infof("Created role %v in guild %v", r.cfg.RoleName, guildID)
	return role, nil
}

func (r *Reconciler) reportRoleError(op, guildID, userID string, err error) {
	if errors.Is(err, ErrPermission) {
		logrus.Warnf("Bot doesn't have permission to %v role for user %v in guild %v: %v", op, userID, guildID, err)
	} else {
		logrus.Warnf("Encountered error trying to %v role for user %v in guild %v: %v", op, userID, guildID, err)
	}
}

func (r *Reconciler) record(guildID, userID, action, actor string) {
	if r.audit == nil {
		return
	}
	if err := r.audit.RecordVerification(guildID, userID, action, actor); err != nil {
		logrus.Warnf("Failed to write %v audit record for user %v in guild %v due to error %v", action, userID, guildID, err)
	}
}
