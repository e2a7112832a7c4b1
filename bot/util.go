package bot

import (
	"regexp"
)

//Allows @mentions or raw user IDs
var memberRegex = regexp.MustCompile(`^\s*(?:<@!?(\d+)>|(\d{17,20}))\s*$`)

func interpretMemberString(memberStr string) string {
	matches := memberRegex.FindStringSubmatch(memberStr)
	switch {
	case matches == nil:
		return ""
	case matches[1] != "":
		//We have a member mention
		return matches[1]
	default:
		//We have a user ID directly
		return matches[2]
	}
}
