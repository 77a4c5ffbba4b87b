// Package grouprepo keeps the group registry. A group is one row in a
// global append-only file: the group name, then the members joined by
// semicolons (creator first).
package grouprepo

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
)

const fileHeader = "groupName,members"

type CreateStatus int

const (
	CreateOK CreateStatus = iota
	CreateNameTaken
	CreateCreatorListed
	CreateMemberNotFound
)

type UserDirectory interface {
	Exists(username string) bool
}

type Notifier interface {
	AddedToGroup(recipient, addedBy, groupName string) error
}

type Repo struct {
	mu             sync.Mutex
	path           string
	membersByGroup map[string]map[string]struct{}
	groupsByUser   map[string]map[string]struct{}
	users          UserDirectory
	notifier       Notifier
}

func New(path string, users UserDirectory, notifier Notifier) *Repo {
	return &Repo{
		path:           path,
		membersByGroup: make(map[string]map[string]struct{}),
		groupsByUser:   make(map[string]map[string]struct{}),
		users:          users,
		notifier:       notifier,
	}
}

func (r *Repo) Load() error {
	f, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("can't open groups file: %w", err)
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
			return fmt.Errorf("malformed groups record: %q", line)
		}
		name := strings.TrimSpace(fields[0])
		members := strings.Split(fields[1], ";")
		for i := range members {
			members[i] = strings.TrimSpace(members[i])
		}
		r.put(name, members)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("can't read groups file: %w", err)
	}
	return nil
}

// Create registers a new group with the creator as implicit first member
// and notifies every listed member.
func (r *Repo) Create(name, creator string, members ...string) (CreateStatus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.membersByGroup[name]; ok {
		return CreateNameTaken, nil
	}
	for _, member := range members {
		if member == creator {
			return CreateCreatorListed, nil
		}
		if !r.users.Exists(member) {
			return CreateMemberNotFound, nil
		}
	}

	all := append([]string{creator}, members...)
	if err := appendLine(r.path, fileHeader, name+","+strings.Join(all, ";")); err != nil {
		zap.L().Error("failed to append groups file", zap.Error(err))
		return 0, fmt.Errorf("can't update groups file: %w", err)
	}
	r.put(name, all)
	for _, member := range members {
		if err := r.notifier.AddedToGroup(member, creator, name); err != nil {
			return 0, err
		}
	}
	return CreateOK, nil
}

// Members returns the member set of a group in sorted order.
func (r *Repo) Members(name string) ([]string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.membersByGroup[name]
	if !ok {
		return nil, false
	}
	members := make([]string, 0, len(set))
	for member := range set {
		members = append(members, member)
	}
	sort.Strings(members)
	return members, true
}

// GroupsOf returns the names of the groups the user belongs to, sorted.
func (r *Repo) GroupsOf(username string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	set := r.groupsByUser[username]
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Repo) put(name string, members []string) {
	set := make(map[string]struct{}, len(members))
	for _, member := range members {
		set[member] = struct{}{}
		if r.groupsByUser[member] == nil {
			r.groupsByUser[member] = make(map[string]struct{})
		}
		r.groupsByUser[member][name] = struct{}{}
	}
	r.membersByGroup[name] = set
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
