package verify

//Member represents a user's presence within a single guild, including the
//roles they currently hold there.
type Member struct {
	GuildID     string
	UserID      string
	DisplayName string
	Bot         bool
	RoleIDs     []string
}

//HasRole returns true iff the member currently holds the given role.
func (m *Member) HasRole(roleID string) bool {
	for _, rid := range m.RoleIDs {
		if rid == roleID {
			return true
		}
	}
	return false
}

//Role is a named, coloured tag grantable to guild members.
type Role struct {
	ID     string
	Name   string
	Colour int
}

//ReactionEvent is a single reaction add or remove notification as delivered
//by the platform gateway. UserIsBot is set when the gateway payload already
//identifies the reacting user as an automated account; when it cannot be
//determined from the payload alone the member lookup acts as a backstop.
type ReactionEvent struct {
	GuildID   string
	ChannelID string
	MessageID string
	UserID    string
	Emoji     string
	UserIsBot bool
}

//Outcome describes the net effect of a reconciliation operation.
type Outcome int

const (
	//OutcomeIgnored means the event failed a precondition and had no effect
	OutcomeIgnored Outcome = iota
	//OutcomeVerified means the role was granted
	OutcomeVerified
	//OutcomeAlreadyVerified means the member already held the role
	OutcomeAlreadyVerified
	//OutcomeRevoked means the role was removed
	OutcomeRevoked
	//OutcomeNotVerified means there was no role to remove
	OutcomeNotVerified
	//OutcomeFailed means a directory call failed; details are in the log
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeVerified:
		return "verified"
	case OutcomeAlreadyVerified:
		return "already verified"
	case OutcomeRevoked:
		return "revoked"
	case OutcomeNotVerified:
		return "not verified"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}
