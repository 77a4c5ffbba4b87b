// Package notificationrepo queues one text line per event for each
// recipient. The per-user file is the queue itself: appending enqueues,
// draining reads every line and deletes the file, so a notification is
// delivered at most once.
package notificationrepo

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/dvelkova/splitwise/pkg/money"
	"go.uber.org/zap"
)

const fileSuffix = "_notifications.txt"

type Repo struct {
	mu  sync.Mutex
	dir string
}

func New(dir string) *Repo {
	return &Repo{dir: dir}
}

func (r *Repo) filePath(username string) string {
	return filepath.Join(r.dir, username+fileSuffix)
}

func (r *Repo) add(username, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.OpenFile(r.filePath(username), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		zap.L().Error("failed to open notifications file", zap.String("user", username), zap.Error(err))
		return fmt.Errorf("can't update notifications file: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, text); err != nil {
		return fmt.Errorf("can't update notifications file: %w", err)
	}
	return nil
}

// Drain returns every pending notification for the user and clears the
// queue. A missing file simply means nothing is pending.
func (r *Repo) Drain(username string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	path := r.filePath(username)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("can't read notifications file: %w", err)
	}

	var notifications []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := sc.Text(); line != "" {
			notifications = append(notifications, line)
		}
	}
	scanErr := sc.Err()
	f.Close()
	if scanErr != nil {
		return nil, fmt.Errorf("can't read notifications file: %w", scanErr)
	}

	if err := os.Remove(path); err != nil {
		return nil, fmt.Errorf("can't clear notifications file: %w", err)
	}
	return notifications, nil
}

func (r *Repo) PaymentApproved(payer, payee string, amount float64) error {
	return r.add(payer, fmt.Sprintf("%s approved your payment of %s lv", payee, money.Format(amount)))
}

func (r *Repo) AmountSplit(payer, payee string, amount float64) error {
	return r.add(payer, fmt.Sprintf("%s added %s lv to your debt to him", payee, money.Format(amount)))
}

func (r *Repo) FriendAdded(recipient, addedBy string) error {
	return r.add(recipient, fmt.Sprintf("%s added you as a friend", addedBy))
}

func (r *Repo) AddedToGroup(recipient, addedBy, groupName string) error {
	return r.add(recipient, fmt.Sprintf("%s added you to %q group", addedBy, groupName))
}
