package discord

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/averyreid/vera/verify"
	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

const promptColour int = 0x2ecc71

//Directory implements verify.Directory over a discordgo session.
type Directory struct {
	session *discordgo.Session
}

//NewDirectory wraps a discordgo session as a verify.Directory
func NewDirectory(session *discordgo.Session) *Directory {
	return &Directory{session: session}
}

//GuildMember resolves a user's membership record, preferring the state cache
//over the REST API. A user who is not a member yields nil rather than an
//error.
func (d *Directory) GuildMember(guildID, userID string) (*verify.Member, error) {
	member, err := d.session.State.Member(guildID, userID)
	if err != nil || member == nil || member.User == nil {
		member, err = d.session.GuildMember(guildID, userID)
		if err != nil {
			if isStatus(err, http.StatusNotFound) {
				return nil, nil
			}
			logrus.Warnf("Failed to fetch member %v in guild %v from discord api: %v", userID, guildID, err)
			return nil, wrapPermission(err)
		}
	}
	return memberFromSDK(guildID, member), nil
}

//FindRoleByName scans the guild's roles for one with the given name,
//returning nil if there is no match.
func (d *Directory) FindRoleByName(guildID, name string) (*verify.Role, error) {
	guildRoles, err := d.session.GuildRoles(guildID)
	if err != nil {
		logrus.Warnf("Failed to fetch guild roles for guild id %v", guildID)
		return nil, wrapPermission(err)
	}
	for _, guildRole := range guildRoles {
		if guildRole.Name == name {
			return roleFromSDK(guildRole), nil
		}
	}
	return nil, nil
}

//CreateRole creates a new guild role with the given name and colour,
//recording the reason in the guild's audit log.
func (d *Directory) CreateRole(guildID, name string, colour int, reason string) (*verify.Role, error) {
	params := &discordgo.RoleParams{
		Name:  name,
		Color: &colour,
	}
	role, err := d.session.GuildRoleCreate(guildID, params, discordgo.WithAuditLogReason(reason))
	if err != nil {
		return nil, wrapPermission(err)
	}
	return roleFromSDK(role), nil
}

//GrantRole adds a role to a guild member, recording the reason in the
//guild's audit log.
func (d *Directory) GrantRole(guildID, userID, roleID, reason string) error {
	err := d.session.GuildMemberRoleAdd(guildID, userID, roleID, discordgo.WithAuditLogReason(reason))
	return wrapPermission(err)
}

//RevokeRole removes a role from a guild member, recording the reason in the
//guild's audit log.
func (d *Directory) RevokeRole(guildID, userID, roleID, reason string) error {
	err := d.session.GuildMemberRoleRemove(guildID, userID, roleID, discordgo.WithAuditLogReason(reason))
	return wrapPermission(err)
}

//SendDirectMessage delivers a private message to a user over their DM
//channel.
func (d *Directory) SendDirectMessage(userID, content string) error {
	channel, err := d.session.UserChannelCreate(userID)
	if err != nil {
		return wrapPermission(err)
	}
	_, err = d.session.ChannelMessageSend(channel.ID, content)
	return wrapPermission(err)
}

//PostMessageWithReaction posts an instruction embed to a channel and
//pre-attaches the given emoji. Failure to attach the reaction is logged but
//does not fail the post; users can still react manually.
func (d *Directory) PostMessageWithReaction(channelID, title, body, emoji string) (string, error) {
	embed := &discordgo.MessageEmbed{
		Title: title,
		Type:  discordgo.EmbedTypeRich,
		Color: promptColour,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Instructions",
				Value:  body,
				Inline: false,
			},
		},
	}
	msg, err := d.session.ChannelMessageSendEmbed(channelID, embed)
	if err != nil {
		return "", wrapPermission(err)
	}
	err = d.session.MessageReactionAdd(channelID, msg.ID, emoji)
	if err != nil {
		logrus.Warnf("Failed to add initial emote %v to message %v due to error %v", emoji, msg.ID, err)
	}
	return msg.ID, nil
}

func memberFromSDK(guildID string, member *discordgo.Member) *verify.Member {
	displayName := member.Nick
	if displayName == "" && member.User != nil {
		displayName = member.User.Username
	}
	res := verify.Member{
		GuildID:     guildID,
		DisplayName: displayName,
		RoleIDs:     member.Roles,
	}
	if member.User != nil {
		res.UserID = member.User.ID
		res.Bot = member.User.Bot
	}
	return &res
}

func roleFromSDK(role *discordgo.Role) *verify.Role {
	return &verify.Role{
		ID:     role.ID,
		Name:   role.Name,
		Colour: role.Color,
	}
}

//wrapPermission tags HTTP 403 REST errors with verify.ErrPermission so the
//reconciler can report capability problems distinctly.
func wrapPermission(err error) error {
	if isStatus(err, http.StatusForbidden) {
		return fmt.Errorf("%w: %v", verify.ErrPermission, err)
	}
	return err
}

func isStatus(err error, status int) bool {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Response != nil {
		return restErr.Response.StatusCode == status
	}
	return false
}
