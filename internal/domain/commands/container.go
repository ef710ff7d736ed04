package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(NewCollectCommand); err != nil {
		return err
	}
	if err := container.Provide(NewIndexCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *CollectCommand) Collect {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *IndexCommand) Index {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
