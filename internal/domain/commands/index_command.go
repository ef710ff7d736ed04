package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/repoindex/internal/domain/entities"
	"github.com/rios0rios0/repoindex/internal/domain/repositories"
	"github.com/rios0rios0/repoindex/internal/infrastructure/renderers/html"
)

var (
	// ErrRepositoriesSkipped is returned after a complete page was written
	// when at least one repository could not be opened for rendering.
	ErrRepositoriesSkipped = errors.New("some repositories could not be opened")

	// ErrOutputWrite is returned when the page cannot be written or flushed.
	ErrOutputWrite = errors.New("write error")
)

// Index is the interface for the index page generation command.
type Index interface {
	Execute(ctx context.Context, out io.Writer, settings *entities.Settings, opts IndexOptions) error
}

// IndexOptions holds runtime options for a single page generation.
type IndexOptions struct {
	Paths []string
}

// IndexCommand runs the whole pipeline: collect -> sort -> render.
type IndexCommand struct {
	collect Collect
	history repositories.HistoryRepository
}

// NewIndexCommand creates a new IndexCommand.
func NewIndexCommand(collect Collect, history repositories.HistoryRepository) *IndexCommand {
	return &IndexCommand{
		collect: collect,
		history: history,
	}
}

// Execute writes the index page of opts.Paths to out.
//
// Path resolution and output failures abort the run. A repository that
// cannot be opened again for rendering only loses its row; the run goes
// on and ErrRepositoriesSkipped is returned at the end.
func (it *IndexCommand) Execute(
	ctx context.Context,
	out io.Writer,
	settings *entities.Settings,
	opts IndexOptions,
) error {
	entries, err := it.collect.Execute(opts.Paths)
	if err != nil {
		return err
	}

	entities.SortEntries(entries)

	rendered := make([]entities.RepoEntry, 0, len(entries))
	skipped := 0
	for _, entry := range entries {
		if verifyErr := it.history.Verify(entry.SourcePath); verifyErr != nil {
			logger.Errorf("%s: cannot open repository", entry.SourcePath)
			logger.Debugf("%s: %v", entry.SourcePath, verifyErr)
			skipped++
			continue
		}
		rendered = append(rendered, entry)
	}

	writer := bufio.NewWriter(out)
	if renderErr := html.NewPageRenderer(settings).Page(rendered).Render(ctx, writer); renderErr != nil {
		return fmt.Errorf("%w: <stdout>: %w", ErrOutputWrite, renderErr)
	}
	if flushErr := writer.Flush(); flushErr != nil {
		return fmt.Errorf("%w: <stdout>: %w", ErrOutputWrite, flushErr)
	}

	logger.Debugf("Index complete: %d repositories rendered, %d skipped", len(rendered), skipped)
	if skipped > 0 {
		return fmt.Errorf("%w: %d of %d", ErrRepositoriesSkipped, skipped, len(entries))
	}
	return nil
}
