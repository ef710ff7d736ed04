package git

import (
	"errors"
	"fmt"
	"io"

	gogit "github.com/go-git/go-git/v5"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/repoindex/internal/domain/repositories"
)

// GitHistoryRepository implements repositories.HistoryRepository with go-git.
// Repositories are opened exactly at the given path, parent directories are
// never searched.
type GitHistoryRepository struct{}

// NewGitHistoryRepository creates a new go-git backed history repository.
func NewGitHistoryRepository() repositories.HistoryRepository {
	return &GitHistoryRepository{}
}

// LastAuthorTime returns the author time of the first commit visited when
// walking the history from HEAD.
func (r *GitHistoryRepository) LastAuthorTime(path string) (int64, bool, error) {
	repo, release, err := openRepository(path)
	if err != nil {
		return 0, false, err
	}
	defer release()

	head, err := repo.Head()
	if err != nil {
		logger.Debugf("%s: HEAD does not resolve: %v", path, err)
		return 0, false, nil
	}

	iter, err := repo.Log(&gogit.LogOptions{From: head.Hash()})
	if err != nil {
		logger.Debugf("%s: cannot walk history: %v", path, err)
		return 0, false, nil
	}
	defer iter.Close()

	commit, err := iter.Next()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			logger.Debugf("%s: cannot read first commit: %v", path, err)
		}
		return 0, false, nil
	}

	return commit.Author.When.Unix(), true, nil
}

// Verify opens and releases the repository at path.
func (r *GitHistoryRepository) Verify(path string) error {
	_, release, err := openRepository(path)
	if err != nil {
		return err
	}
	release()
	return nil
}

// openRepository opens the repository read-only and returns a function
// releasing the storage handles it holds.
func openRepository(path string) (*gogit.Repository, func(), error) {
	//nolint:exhaustruct // only DetectDotGit matters here
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{DetectDotGit: false})
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open repository %q: %w", path, err)
	}

	release := func() {
		if closer, ok := repo.Storer.(io.Closer); ok {
			if closeErr := closer.Close(); closeErr != nil {
				logger.Debugf("%s: failed to release repository: %v", path, closeErr)
			}
		}
	}
	return repo, release, nil
}
