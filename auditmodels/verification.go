package auditmodels

import "time"

//VerificationRecord documents a single verified-role change applied by the
//bot, kept purely for operator reference. Role membership on the platform
//itself remains the source of truth for who is verified.
type VerificationRecord struct {
	GuildID   string    `gorethink:"guild_id"`
	UserID    string    `gorethink:"user_id"`
	Action    string    `gorethink:"action"`
	Actor     string    `gorethink:"actor"`
	Timestamp time.Time `gorethink:"timestamp"`
}
