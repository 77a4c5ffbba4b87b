package userrepo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dvelkova/splitwise/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*Repo, string) {
	path := filepath.Join(t.TempDir(), "users.txt")
	return New(path), path
}

func TestRegisterAndFind(t *testing.T) {
	repo, _ := newTestRepo(t)

	status, err := repo.Register(domain.User{
		FirstName: "Ann", LastName: "Lee", Username: "ann", PasswordHash: "hash1",
	})
	require.NoError(t, err)
	assert.Equal(t, RegistrationOK, status)

	user, ok := repo.Find("ann")
	require.True(t, ok)
	assert.Equal(t, "Ann", user.FirstName)
	assert.Equal(t, "hash1", user.PasswordHash)
	assert.True(t, repo.Exists("ann"))
	assert.False(t, repo.Exists("bob"))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.Register(domain.User{FirstName: "Ann", LastName: "Lee", Username: "ann", PasswordHash: "h"})
	require.NoError(t, err)

	status, err := repo.Register(domain.User{FirstName: "Other", LastName: "Ann", Username: "ann", PasswordHash: "h2"})
	require.NoError(t, err)
	assert.Equal(t, RegistrationUsernameTaken, status)
}

func TestLoadRoundTrip(t *testing.T) {
	repo, path := newTestRepo(t)

	users := []domain.User{
		{FirstName: "Ann", LastName: "Lee", Username: "ann", PasswordHash: "h1"},
		{FirstName: "Bob", LastName: "Ray", Username: "bob", PasswordHash: "h2"},
	}
	for _, u := range users {
		_, err := repo.Register(u)
		require.NoError(t, err)
	}

	reloaded := New(path)
	require.NoError(t, reloaded.Load())

	assert.Equal(t, 2, reloaded.Count())
	assert.Equal(t, []string{"ann", "bob"}, reloaded.Usernames())
	u, ok := reloaded.Find("bob")
	require.True(t, ok)
	assert.Equal(t, users[1], u)
}

func TestLoadMissingFile(t *testing.T) {
	repo := New(filepath.Join(t.TempDir(), "absent.txt"))
	require.NoError(t, repo.Load())
	assert.Equal(t, 0, repo.Count())
}

func TestLoadMalformedRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.txt")
	require.NoError(t, os.WriteFile(path, []byte("firstName,lastName,username,passwordHash\nbroken line\n"), 0o644))

	repo := New(path)
	assert.Error(t, repo.Load())
}
