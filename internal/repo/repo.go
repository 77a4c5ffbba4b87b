package repo

import (
	"path/filepath"

	debtrepo "github.com/dvelkova/splitwise/internal/repo/debt-repo"
	friendrepo "github.com/dvelkova/splitwise/internal/repo/friend-repo"
	grouprepo "github.com/dvelkova/splitwise/internal/repo/group-repo"
	notificationrepo "github.com/dvelkova/splitwise/internal/repo/notification-repo"
	userrepo "github.com/dvelkova/splitwise/internal/repo/user-repo"
)

const (
	usersFileName   = "users.txt"
	friendsFileName = "friends.txt"
	groupsFileName  = "groups.txt"
)

type Repositories struct {
	Users         *userrepo.Repo
	Friends       *friendrepo.Repo
	Groups        *grouprepo.Repo
	Notifications *notificationrepo.Repo
	DebtLog       *debtrepo.Log
}

func New(dataDir string) *Repositories {
	users := userrepo.New(filepath.Join(dataDir, usersFileName))
	notifications := notificationrepo.New(dataDir)
	friends := friendrepo.New(filepath.Join(dataDir, friendsFileName), users, notifications)
	groups := grouprepo.New(filepath.Join(dataDir, groupsFileName), users, notifications)
	debtLog := debtrepo.New(dataDir)

	return &Repositories{
		Users:         users,
		Friends:       friends,
		Groups:        groups,
		Notifications: notifications,
		DebtLog:       debtLog,
	}
}

// Load replays the keyed stores that have a startup load phase. The ledger
// replays its own debt and payment logs separately.
func (r *Repositories) Load() error {
	if err := r.Users.Load(); err != nil {
		return err
	}
	if err := r.Friends.Load(); err != nil {
		return err
	}
	return r.Groups.Load()
}
