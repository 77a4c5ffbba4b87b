package notificationrepo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrainIsExactlyOnce(t *testing.T) {
	repo := New(t.TempDir())

	require.NoError(t, repo.FriendAdded("bob", "ann"))
	require.NoError(t, repo.AmountSplit("bob", "ann", 5))

	notifications, err := repo.Drain("bob")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"ann added you as a friend",
		"ann added 5 lv to your debt to him",
	}, notifications)

	// The queue is consumed: a second drain finds nothing.
	notifications, err = repo.Drain("bob")
	require.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestDrainMissingQueue(t *testing.T) {
	repo := New(t.TempDir())

	notifications, err := repo.Drain("nobody")
	require.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestNotificationTexts(t *testing.T) {
	repo := New(t.TempDir())

	require.NoError(t, repo.PaymentApproved("ann", "bob", 12.5))
	require.NoError(t, repo.AddedToGroup("ann", "bob", "trip"))

	notifications, err := repo.Drain("ann")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"bob approved your payment of 12.5 lv",
		`bob added you to "trip" group`,
	}, notifications)
}

func TestQueueFileRemovedAfterDrain(t *testing.T) {
	dir := t.TempDir()
	repo := New(dir)

	require.NoError(t, repo.FriendAdded("bob", "ann"))
	_, err := repo.Drain("bob")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "bob_notifications.txt"))
	assert.True(t, os.IsNotExist(err))
}
