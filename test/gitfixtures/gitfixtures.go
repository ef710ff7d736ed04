//go:build integration || unit || test

// Package gitfixtures creates real on-disk Git repositories for tests.
package gitfixtures

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

// InitRepository creates a non-bare repository at dir with one commit per
// author time, oldest first. No description file is left behind.
func InitRepository(t *testing.T, dir string, authorTimes ...int64) {
	t.Helper()

	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	removeIfExists(t, filepath.Join(dir, ".git", "description"))

	worktree, err := repo.Worktree()
	require.NoError(t, err)

	for i, seconds := range authorTimes {
		name := fmt.Sprintf("file-%d.txt", i)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name+"\n"), 0o600))

		_, err = worktree.Add(name)
		require.NoError(t, err)

		//nolint:exhaustruct // only the author matters
		_, err = worktree.Commit(fmt.Sprintf("commit %d", i), &gogit.CommitOptions{
			Author: &object.Signature{
				Name:  "Test Author",
				Email: "author@example.com",
				When:  time.Unix(seconds, 0).UTC(),
			},
		})
		require.NoError(t, err)
	}
}

// WriteFile writes content to dir/name, creating parent directories.
func WriteFile(t *testing.T, dir, name, content string) {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func removeIfExists(t *testing.T, path string) {
	t.Helper()

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		require.NoError(t, err)
	}
}
