// Package router parses one request line into a command and dispatches it
// against the ledger and the collaborator stores. It is stateless: all
// per-connection state lives in the session the dispatcher hands in.
package router

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dvelkova/splitwise/internal/dispatch"
	"github.com/dvelkova/splitwise/internal/domain"
	"github.com/dvelkova/splitwise/internal/ledger"
	friendrepo "github.com/dvelkova/splitwise/internal/repo/friend-repo"
	grouprepo "github.com/dvelkova/splitwise/internal/repo/group-repo"
	userrepo "github.com/dvelkova/splitwise/internal/repo/user-repo"
	"github.com/dvelkova/splitwise/pkg/auth"
	"github.com/dvelkova/splitwise/pkg/money"
	"go.uber.org/zap"
)

const (
	cmdHelp           = "help"
	cmdQuit           = "quit"
	cmdRegister       = "register"
	cmdLogin          = "login"
	cmdLogout         = "logout"
	cmdAddFriend      = "add-friend"
	cmdCreateGroup    = "create-group"
	cmdSplitFriend    = "split-friend"
	cmdSplitGroup     = "split-group"
	cmdPaid           = "paid"
	cmdStatus         = "status"
	cmdGroups         = "groups"
	cmdNotifications  = "notifications"
	cmdPaymentHistory = "payment-history"
)

type UserDirectory interface {
	Register(user domain.User) (userrepo.RegistrationStatus, error)
	Find(username string) (domain.User, bool)
	Exists(username string) bool
}

type Friends interface {
	Add(who, whom string) (friendrepo.AddStatus, error)
	Exists(a, b string) bool
}

type Groups interface {
	Create(name, creator string, members ...string) (grouprepo.CreateStatus, error)
	Members(name string) ([]string, bool)
	GroupsOf(username string) []string
}

type Notifications interface {
	Drain(username string) ([]string, error)
}

type Ledger interface {
	Split(debtor, creditor string, amount float64) (ledger.SplitStatus, error)
	SplitAmongGroup(groupName, payee string, total float64) (ledger.GroupSplitStatus, error)
	Pay(payer, payee string, amountPaid float64) (ledger.PayStatus, error)
	OutstandingFor(username string) (owedToUser, owedByUser map[string]float64)
	PaymentHistoryFor(username string) map[string][]float64
}

type Router struct {
	users         UserDirectory
	friends       Friends
	groups        Groups
	notifications Notifications
	ledger        Ledger
	hasher        auth.Hasher
}

func New(users UserDirectory, friends Friends, groups Groups, notifications Notifications, led Ledger, hasher auth.Hasher) *Router {
	return &Router{
		users:         users,
		friends:       friends,
		groups:        groups,
		notifications: notifications,
		ledger:        led,
		hasher:        hasher,
	}
}

// Handle answers one request line with one response. Validation and domain
// outcomes become fixed messages; only storage failures are logged.
func (r *Router) Handle(sess *dispatch.Session, line string) string {
	tokens := strings.Split(strings.TrimSpace(line), " ")
	if !validArgs(tokens) {
		return msgInvalidArguments
	}

	switch tokens[0] {
	case cmdHelp:
		return helpMessage
	case cmdQuit:
		return msgQuit
	case cmdRegister:
		return r.register(sess, tokens)
	case cmdLogin:
		return r.login(sess, tokens)
	case cmdLogout:
		return r.logout(sess)
	case cmdAddFriend:
		return r.addFriend(sess, tokens)
	case cmdCreateGroup:
		return r.createGroup(sess, tokens)
	case cmdSplitFriend:
		return r.splitFriend(sess, tokens)
	case cmdSplitGroup:
		return r.splitGroup(sess, tokens)
	case cmdPaid:
		return r.paid(sess, tokens)
	case cmdStatus:
		return r.status(sess)
	case cmdGroups:
		return r.listGroups(sess)
	case cmdNotifications:
		return r.listNotifications(sess)
	case cmdPaymentHistory:
		return r.paymentHistory(sess)
	default:
		return msgUnknownCommand
	}
}

func (r *Router) register(sess *dispatch.Session, tokens []string) string {
	if _, loggedIn := sess.Username(); loggedIn {
		return msgRegisterWhileLoggedIn
	}
	hash, err := r.hasher.Hash(tokens[4])
	if err != nil {
		zap.L().Error("password hashing failed", zap.Error(err))
		return msgRegisterFailed
	}
	status, err := r.users.Register(domain.User{
		FirstName:    tokens[1],
		LastName:     tokens[2],
		Username:     tokens[3],
		PasswordHash: hash,
	})
	if err != nil {
		zap.L().Error("registration failed", zap.Error(err))
		return msgRegisterFailed
	}
	switch status {
	case userrepo.RegistrationUsernameTaken:
		return msgUsernameTaken
	default:
		return msgRegisterSuccess
	}
}

func (r *Router) login(sess *dispatch.Session, tokens []string) string {
	if _, loggedIn := sess.Username(); loggedIn {
		return msgLoginWhileLoggedIn
	}
	username, password := tokens[1], tokens[2]
	user, ok := r.users.Find(username)
	if !ok {
		return msgUserNotFound
	}
	if !r.hasher.Verify(user.PasswordHash, password) {
		return msgWrongPassword
	}
	sess.Login(username)

	var b strings.Builder
	b.WriteString(msgLoginSuccess)
	b.WriteString("\n")
	b.WriteString(r.notificationsBlock(username))
	return b.String()
}

func (r *Router) logout(sess *dispatch.Session) string {
	if _, loggedIn := sess.Username(); !loggedIn {
		return msgLogoutNotLoggedIn
	}
	sess.Logout()
	return msgLogoutSuccess
}

func (r *Router) addFriend(sess *dispatch.Session, tokens []string) string {
	me, loggedIn := sess.Username()
	if !loggedIn {
		return msgAddFriendNotLoggedIn
	}
	status, err := r.friends.Add(me, tokens[1])
	if err != nil {
		zap.L().Error("adding friend failed", zap.Error(err))
		return msgAddFriendFailed
	}
	switch status {
	case friendrepo.AddSameUser:
		return msgAddSelfAsFriend
	case friendrepo.AddUserNotFound:
		return msgUserNotFound
	case friendrepo.AddAlreadyFriends:
		return msgAlreadyFriends
	default:
		return msgAddFriendSuccess
	}
}

func (r *Router) createGroup(sess *dispatch.Session, tokens []string) string {
	me, loggedIn := sess.Username()
	if !loggedIn {
		return msgCreateGroupNotLoggedIn
	}
	status, err := r.groups.Create(tokens[1], me, tokens[2:]...)
	if err != nil {
		zap.L().Error("creating group failed", zap.Error(err))
		return msgCreateGroupFailed
	}
	switch status {
	case grouprepo.CreateNameTaken:
		return msgGroupNameTaken
	case grouprepo.CreateCreatorListed:
		return msgCreatorInMembers
	case grouprepo.CreateMemberNotFound:
		return msgUserNotFound
	default:
		return msgCreateGroupSuccess
	}
}

// splitFriend halves the amount before it ever reaches the ledger: an even
// split between two people means the friend owes half, the caller covered
// the rest.
func (r *Router) splitFriend(sess *dispatch.Session, tokens []string) string {
	me, loggedIn := sess.Username()
	if !loggedIn {
		return msgSplitNotLoggedIn
	}
	amount, _ := strconv.ParseFloat(tokens[1], 64)
	friend := tokens[2]

	if !r.users.Exists(friend) {
		return msgUserNotFound
	}
	if !r.friends.Exists(me, friend) {
		return msgNotFriends
	}
	status, err := r.ledger.Split(friend, me, money.Round(amount/2))
	if err != nil {
		zap.L().Error("splitting amount failed", zap.Error(err))
		return msgSplitFailed
	}
	switch status {
	case ledger.SplitSameUser:
		return msgSplitWithSelf
	case ledger.SplitUserNotFound, ledger.SplitCounterpartyNotFound:
		return msgUserNotFound
	default:
		return msgSplitSuccess
	}
}

func (r *Router) splitGroup(sess *dispatch.Session, tokens []string) string {
	me, loggedIn := sess.Username()
	if !loggedIn {
		return msgSplitNotLoggedIn
	}
	amount, _ := strconv.ParseFloat(tokens[1], 64)

	status, err := r.ledger.SplitAmongGroup(tokens[2], me, amount)
	if err != nil {
		zap.L().Error("splitting amount failed", zap.Error(err))
		return msgSplitFailed
	}
	switch status {
	case ledger.GroupSplitGroupNotFound:
		return msgGroupNotFound
	case ledger.GroupSplitPayeeNotMember:
		return msgNotInGroup
	default:
		return msgSplitSuccess
	}
}

// paid records that the counterparty settled part of what they owe the
// logged-in user: the argument user is the payer, the session user the
// payee.
func (r *Router) paid(sess *dispatch.Session, tokens []string) string {
	me, loggedIn := sess.Username()
	if !loggedIn {
		return msgPaidNotLoggedIn
	}
	amount, _ := strconv.ParseFloat(tokens[1], 64)

	status, err := r.ledger.Pay(tokens[2], me, amount)
	if err != nil {
		zap.L().Error("getting paid amount failed", zap.Error(err))
		return msgPaidFailed
	}
	switch status {
	case ledger.PaySameUser:
		return msgPaidBySelf
	case ledger.PayUserNotFound:
		return msgUserNotFound
	case ledger.PayNoOutstandingDebt:
		return msgNoDebtToYou
	default:
		return msgPaidSuccess
	}
}

func (r *Router) status(sess *dispatch.Session) string {
	me, loggedIn := sess.Username()
	if !loggedIn {
		return msgStatusNotLoggedIn
	}
	owedToMe, owedByMe := r.ledger.OutstandingFor(me)
	if len(owedToMe) == 0 && len(owedByMe) == 0 {
		return msgNoMoneyRelations
	}

	var b strings.Builder
	for _, debtor := range sortedKeys(owedToMe) {
		fmt.Fprintf(&b, "* %s: owes you %s lv\n", r.displayName(debtor), money.Format(owedToMe[debtor]))
	}
	for _, creditor := range sortedKeys(owedByMe) {
		fmt.Fprintf(&b, "* %s: you owe %s lv\n", r.displayName(creditor), money.Format(owedByMe[creditor]))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (r *Router) listGroups(sess *dispatch.Session) string {
	me, loggedIn := sess.Username()
	if !loggedIn {
		return msgGroupsNotLoggedIn
	}
	names := r.groups.GroupsOf(me)
	if len(names) == 0 {
		return msgNoGroups
	}

	var b strings.Builder
	b.WriteString("Groups:\n")
	for _, name := range names {
		members, _ := r.groups.Members(name)
		fmt.Fprintf(&b, "* %s: %s\n", name, strings.Join(members, ","))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (r *Router) listNotifications(sess *dispatch.Session) string {
	me, loggedIn := sess.Username()
	if !loggedIn {
		return msgNotifsNotLoggedIn
	}
	return r.notificationsBlock(me)
}

func (r *Router) paymentHistory(sess *dispatch.Session) string {
	me, loggedIn := sess.Username()
	if !loggedIn {
		return msgHistoryNotLoggedIn
	}
	history := r.ledger.PaymentHistoryFor(me)
	if len(history) == 0 {
		return msgNoHistory
	}

	var b strings.Builder
	payees := make([]string, 0, len(history))
	for payee := range history {
		payees = append(payees, payee)
	}
	sort.Strings(payees)
	for _, payee := range payees {
		for _, amount := range history[payee] {
			fmt.Fprintf(&b, "* you paid %s %s lv\n", r.displayName(payee), money.Format(amount))
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// notificationsBlock drains the queue and renders it; consumption happens
// exactly once, so the drained lines go into this response or nowhere.
func (r *Router) notificationsBlock(username string) string {
	notifications, err := r.notifications.Drain(username)
	if err != nil {
		zap.L().Error("draining notifications failed", zap.Error(err))
		return msgNotifsFailed
	}
	if len(notifications) == 0 {
		return msgNoNotifications
	}
	var b strings.Builder
	b.WriteString("Notifications:\n")
	for _, n := range notifications {
		fmt.Fprintf(&b, "* %s\n", n)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (r *Router) displayName(username string) string {
	if user, ok := r.users.Find(username); ok {
		return fmt.Sprintf("%s %s (%s)", user.FirstName, user.LastName, username)
	}
	return username
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
