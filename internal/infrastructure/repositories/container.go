package repositories

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/repoindex/internal/infrastructure/repositories/filesystem"
	"github.com/rios0rios0/repoindex/internal/infrastructure/repositories/git"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(git.NewGitHistoryRepository); err != nil {
		return err
	}
	if err := container.Provide(filesystem.NewDescriptionRepository); err != nil {
		return err
	}

	return nil
}
