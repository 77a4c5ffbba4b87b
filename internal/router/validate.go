package router

import (
	"regexp"
	"strconv"
)

var namePattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// validArgs checks token count and shape per command before anything else
// runs; commands this table does not know fall through to the unknown
// command response instead.
func validArgs(tokens []string) bool {
	switch tokens[0] {
	case cmdHelp, cmdQuit, cmdLogout, cmdStatus, cmdGroups, cmdNotifications, cmdPaymentHistory:
		return len(tokens) == 1
	case cmdRegister:
		return len(tokens) == 5 &&
			namePattern.MatchString(tokens[1]) &&
			namePattern.MatchString(tokens[2]) &&
			namePattern.MatchString(tokens[3])
	case cmdLogin:
		return len(tokens) == 3
	case cmdAddFriend:
		return len(tokens) == 2
	case cmdCreateGroup:
		return len(tokens) >= 3 && namePattern.MatchString(tokens[1])
	case cmdSplitFriend, cmdSplitGroup, cmdPaid:
		return len(tokens) == 3 && validAmount(tokens[1])
	default:
		return true
	}
}

// validAmount accepts only parseable, strictly positive amounts.
func validAmount(s string) bool {
	v, err := strconv.ParseFloat(s, 64)
	return err == nil && v > 0
}
