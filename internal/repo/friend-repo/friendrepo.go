// Package friendrepo keeps the symmetric friendship relation. Each
// friendship is one row in a global append-only file; both directions live
// in the in-memory map.
package friendrepo

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
)

const fileHeader = "friend1,friend2"

type AddStatus int

const (
	AddOK AddStatus = iota
	AddSameUser
	AddUserNotFound
	AddAlreadyFriends
)

type UserDirectory interface {
	Exists(username string) bool
}

type Notifier interface {
	FriendAdded(recipient, addedBy string) error
}

type Repo struct {
	mu       sync.Mutex
	path     string
	friends  map[string]map[string]struct{}
	users    UserDirectory
	notifier Notifier
}

func New(path string, users UserDirectory, notifier Notifier) *Repo {
	return &Repo{
		path:     path,
		friends:  make(map[string]map[string]struct{}),
		users:    users,
		notifier: notifier,
	}
}

func (r *Repo) Load() error {
	f, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("can't open friends file: %w", err)
	}
	defer f.Close()

	r.mu.Lock()
	defer r.mu.Unlock()

	sc := bufio.NewScanner(f)
	first := true
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if first {
			first = false
			continue
		}
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != 2 {
			return fmt.Errorf("malformed friends record: %q", line)
		}
		r.link(strings.TrimSpace(fields[0]), strings.TrimSpace(fields[1]))
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("can't read friends file: %w", err)
	}
	return nil
}

// Add records the friendship between who and whom and notifies whom.
func (r *Repo) Add(who, whom string) (AddStatus, error) {
	if who == whom {
		return AddSameUser, nil
	}
	if !r.users.Exists(whom) {
		return AddUserNotFound, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.linked(who, whom) {
		return AddAlreadyFriends, nil
	}

	if err := appendLine(r.path, fileHeader, who+","+whom); err != nil {
		zap.L().Error("failed to append friends file", zap.Error(err))
		return 0, fmt.Errorf("can't update friends file: %w", err)
	}
	r.link(who, whom)
	if err := r.notifier.FriendAdded(whom, who); err != nil {
		return 0, err
	}
	return AddOK, nil
}

func (r *Repo) Exists(a, b string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.linked(a, b)
}

func (r *Repo) linked(a, b string) bool {
	_, ok := r.friends[a][b]
	return ok
}

func (r *Repo) link(a, b string) {
	if r.friends[a] == nil {
		r.friends[a] = make(map[string]struct{})
	}
	if r.friends[b] == nil {
		r.friends[b] = make(map[string]struct{})
	}
	r.friends[a][b] = struct{}{}
	r.friends[b][a] = struct{}{}
}

func appendLine(path, header, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if info.Size() == 0 {
		fmt.Fprintln(w, header)
	}
	fmt.Fprintln(w, line)
	return w.Flush()
}
