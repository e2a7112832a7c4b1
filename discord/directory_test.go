package discord

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/averyreid/vera/verify"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func restError(status int) error {
	return &discordgo.RESTError{
		Response: &http.Response{StatusCode: status},
	}
}

func TestWrapPermissionTagsForbidden(t *testing.T) {
	err := wrapPermission(restError(http.StatusForbidden))

	assert.ErrorIs(t, err, verify.ErrPermission)
}

func TestWrapPermissionLeavesOtherStatusesAlone(t *testing.T) {
	orig := restError(http.StatusInternalServerError)
	err := wrapPermission(orig)

	assert.NotErrorIs(t, err, verify.ErrPermission)
	assert.Equal(t, orig, err)
}

func TestWrapPermissionLeavesPlainErrorsAlone(t *testing.T) {
	orig := fmt.Errorf("connection reset")
	err := wrapPermission(orig)

	assert.NotErrorIs(t, err, verify.ErrPermission)
	assert.Equal(t, orig, err)
}

func TestWrapPermissionPassesNil(t *testing.T) {
	assert.NoError(t, wrapPermission(nil))
}

func TestMemberFromSDKPrefersNickname(t *testing.T) {
	member := &discordgo.Member{
		Nick:  "nickname",
		Roles: []string{"role-1", "role-2"},
		User:  &discordgo.User{ID: "user-1", Username: "username", Bot: true},
	}

	res := memberFromSDK("guild-1", member)

	assert.Equal(t, "guild-1", res.GuildID)
	assert.Equal(t, "user-1", res.UserID)
	assert.Equal(t, "nickname", res.DisplayName)
	assert.True(t, res.Bot)
	assert.Equal(t, []string{"role-1", "role-2"}, res.RoleIDs)
}

func TestMemberFromSDKFallsBackToUsername(t *testing.T) {
	member := &discordgo.Member{
		User: &discordgo.User{ID: "user-1", Username: "username"},
	}

	res := memberFromSDK("guild-1", member)

	assert.Equal(t, "username", res.DisplayName)
	assert.False(t, res.Bot)
}

func TestRoleFromSDK(t *testing.T) {
	role := roleFromSDK(&discordgo.Role{ID: "role-1", Name: "Verified", Color: 0x2ecc71})

	assert.Equal(t, &verify.Role{ID: "role-1", Name: "Verified", Colour: 0x2ecc71}, role)
}
