package userrepo

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/dvelkova/splitwise/internal/domain"
	"go.uber.org/zap"
)

const fileHeader = "firstName,lastName,username,passwordHash"

type RegistrationStatus int

const (
	RegistrationOK RegistrationStatus = iota
	RegistrationUsernameTaken
)

// Repo is the user directory: an in-memory map backed by a global
// append-only delimited file. The file is opened per call so that every
// registration is durable as soon as the call returns.
type Repo struct {
	mu    sync.Mutex
	path  string
	users map[string]domain.User
}

func New(path string) *Repo {
	return &Repo{
		path:  path,
		users: make(map[string]domain.User),
	}
}

// Load reads the whole directory into memory. A missing file means a fresh
// data directory, not an error.
func (r *Repo) Load() error {
	f, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("can't open users file: %w", err)
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
		if len(fields) != 4 {
			return fmt.Errorf("malformed users record: %q", line)
		}
		u := domain.User{
			FirstName:    strings.TrimSpace(fields[0]),
			LastName:     strings.TrimSpace(fields[1]),
			Username:     strings.TrimSpace(fields[2]),
			PasswordHash: strings.TrimSpace(fields[3]),
		}
		r.users[u.Username] = u
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("can't read users file: %w", err)
	}
	return nil
}

func (r *Repo) Register(user domain.User) (RegistrationStatus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Username]; ok {
		return RegistrationUsernameTaken, nil
	}

	line := strings.Join([]string{user.FirstName, user.LastName, user.Username, user.PasswordHash}, ",")
	if err := appendLine(r.path, fileHeader, line); err != nil {
		zap.L().Error("failed to append users file", zap.Error(err))
		return 0, fmt.Errorf("can't update users file: %w", err)
	}
	r.users[user.Username] = user
	return RegistrationOK, nil
}

func (r *Repo) Find(username string) (domain.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[username]
	return u, ok
}

func (r *Repo) Exists(username string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.users[username]
	return ok
}

func (r *Repo) Usernames() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.users))
	for name := range r.users {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Repo) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

// appendLine appends one record, writing the header first when the file is
// new or empty.
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
