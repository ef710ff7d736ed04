package commands

import (
	"errors"
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/repoindex/internal/domain/entities"
	"github.com/rios0rios0/repoindex/internal/domain/repositories"
)

// ErrPathResolution is returned when a repository path cannot be made
// absolute and symlink-free. It aborts the whole run.
var ErrPathResolution = errors.New("cannot resolve repository path")

// Collect is the interface for the metadata collection step.
type Collect interface {
	Execute(paths []string) ([]entities.RepoEntry, error)
}

// PathResolver turns a caller-supplied path into its canonical form.
type PathResolver func(path string) (string, error)

// CollectCommand gathers name, description and last activity for each
// repository path. Degraded metadata never fails the collection; only a
// path that cannot be canonicalized does.
type CollectCommand struct {
	history      repositories.HistoryRepository
	descriptions repositories.DescriptionRepository
	resolve      PathResolver
}

// NewCollectCommand creates a new CollectCommand resolving paths on the
// local filesystem.
func NewCollectCommand(
	history repositories.HistoryRepository,
	descriptions repositories.DescriptionRepository,
) *CollectCommand {
	return NewCollectCommandWithResolver(history, descriptions, CanonicalPath)
}

// NewCollectCommandWithResolver creates a CollectCommand with a custom path resolver.
func NewCollectCommandWithResolver(
	history repositories.HistoryRepository,
	descriptions repositories.DescriptionRepository,
	resolve PathResolver,
) *CollectCommand {
	return &CollectCommand{
		history:      history,
		descriptions: descriptions,
		resolve:      resolve,
	}
}

// Execute collects one entry per path, in input order. The first path that
// cannot be canonicalized stops the collection and nothing is returned.
func (it *CollectCommand) Execute(paths []string) ([]entities.RepoEntry, error) {
	entries := make([]entities.RepoEntry, 0, len(paths))
	for _, path := range paths {
		entry, err := it.CollectOne(path)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// CollectOne builds the entry of a single repository path.
func (it *CollectCommand) CollectOne(path string) (entities.RepoEntry, error) {
	canonical, err := it.resolve(path)
	if err != nil {
		return entities.RepoEntry{}, fmt.Errorf("%w %q: %w", ErrPathResolution, path, err)
	}

	name := entities.NameFromPath(canonical)
	description := it.descriptions.ReadDescription(path, entities.MaxDescriptionLength)

	seconds, found, historyErr := it.history.LastAuthorTime(path)
	if historyErr != nil {
		logger.Debugf("%s: no history available: %v", path, historyErr)
		seconds, found = 0, false
	}

	entry := entities.NewRepoEntry(path, name, description, seconds, found)
	logger.Debugf("Collected %q (last activity %d)", entry.Name, entry.LastActivityTime)
	return entry, nil
}

// CanonicalPath returns the absolute, symlink-resolved form of path.
func CanonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
