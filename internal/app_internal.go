package internal

import (
	"github.com/rios0rios0/repoindex/internal/domain/entities"
	"github.com/rios0rios0/repoindex/internal/infrastructure/controllers"
)

// AppInternal holds the controllers exposed on the command line.
type AppInternal struct {
	controllers     []entities.Controller
	indexController *controllers.IndexController
}

// NewAppInternal creates the application context from the registered controllers.
func NewAppInternal(
	registered *[]entities.Controller,
	indexController *controllers.IndexController,
) *AppInternal {
	return &AppInternal{
		controllers:     *registered,
		indexController: indexController,
	}
}

// GetControllers returns every registered controller.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}

// GetIndexController returns the controller bound to the root command.
func (it *AppInternal) GetIndexController() *controllers.IndexController {
	return it.indexController
}
