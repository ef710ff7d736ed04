//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"io"

	"github.com/rios0rios0/repoindex/internal/domain/commands"
	"github.com/rios0rios0/repoindex/internal/domain/entities"
)

// StubIndexCommand is a stub implementation of commands.Index.
type StubIndexCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.IndexOptions
	Output           string // written to out on every call
}

var _ commands.Index = (*StubIndexCommand)(nil)

func (s *StubIndexCommand) Execute(
	_ context.Context,
	out io.Writer,
	settings *entities.Settings,
	opts commands.IndexOptions,
) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	if s.Output != "" {
		if _, err := io.WriteString(out, s.Output); err != nil {
			return err
		}
	}
	return s.ExecuteErr
}

// StubCollectCommand is a stub implementation of commands.Collect.
type StubCollectCommand struct {
	Entries    []entities.RepoEntry
	CollectErr error
	LastPaths  []string
}

var _ commands.Collect = (*StubCollectCommand)(nil)

func (s *StubCollectCommand) Execute(paths []string) ([]entities.RepoEntry, error) {
	s.LastPaths = paths
	if s.CollectErr != nil {
		return nil, s.CollectErr
	}
	out := make([]entities.RepoEntry, len(s.Entries))
	copy(out, s.Entries)
	return out, nil
}
