package router

// The full catalog of user-facing responses. Every domain status maps to
// exactly one fixed message; storage failures collapse to a per-command
// generic failure line.
const (
	msgUnknownCommand   = "unknown command, use help"
	msgInvalidArguments = "invalid arguments, use help"
	msgQuit             = "bye, see you soon :)"
	msgUserNotFound     = "user with this username doesn't exist"

	msgRegisterSuccess       = "registered successfully"
	msgRegisterFailed        = "registration failed"
	msgUsernameTaken         = "username is taken"
	msgRegisterWhileLoggedIn = "can't register new account when you are logged in"

	msgLoginSuccess       = "logged in successfully"
	msgLoginWhileLoggedIn = "can't login into another account when you are logged in"
	msgWrongPassword      = "wrong password"

	msgLogoutSuccess     = "logged out successfully"
	msgLogoutNotLoggedIn = "can't logout when not logged in"

	msgAddFriendSuccess     = "friend added successfully"
	msgAddFriendFailed      = "adding friend failed"
	msgAddFriendNotLoggedIn = "can't add friend when not logged in"
	msgAlreadyFriends       = "you are already friends"
	msgAddSelfAsFriend      = "can't add yourself as a friend"

	msgCreateGroupSuccess     = "group created successfully"
	msgCreateGroupFailed      = "creating group failed"
	msgCreateGroupNotLoggedIn = "can't create group when not logged in"
	msgGroupNameTaken         = "group name is taken"
	msgCreatorInMembers       = "don't put your name in members"

	msgSplitSuccess     = "amount split successfully"
	msgSplitFailed      = "splitting amount failed"
	msgSplitNotLoggedIn = "can't split amount when not logged in"
	msgNotFriends       = "you are not friends"
	msgSplitWithSelf    = "can't split amount with yourself"
	msgGroupNotFound    = "group with this name doesn't exist"
	msgNotInGroup       = "you are not in this group"

	msgPaidSuccess     = "amount got paid successfully"
	msgPaidFailed      = "getting paid amount failed"
	msgPaidNotLoggedIn = "can't get paid amount when not logged in"
	msgNoDebtToYou     = "this user doesn't owe you money"
	msgPaidBySelf      = "can't get paid by yourself"

	msgNoMoneyRelations  = "you don't have any money relations"
	msgStatusNotLoggedIn = "can't see status when not logged in"

	msgNoGroups           = "you are not member of any groups"
	msgGroupsNotLoggedIn  = "can't see groups when not logged in"
	msgNoNotifications    = "no notifications to show"
	msgNotifsNotLoggedIn  = "can't see notifications when not logged in"
	msgNotifsFailed       = "checking notifications failed"
	msgNoHistory          = "no history to show"
	msgHistoryNotLoggedIn = "can't see payments history when not logged in"
)

const helpMessage = `when not logged in:
    help
    register <first name> <last name> <username> <password>
    login <username> <password>
    quit
when logged in:
    help
    logout
    add-friend <username>
    create-group <group name> <username> ... <username>
    split-friend <amount> <username>
    split-group <amount> <group name>
    paid <amount> <username>
    payment-history
    status
    groups
    notifications
    quit`
