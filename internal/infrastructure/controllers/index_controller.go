package controllers

import (
	"context"
	"io"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/repoindex/internal/domain/commands"
	"github.com/rios0rios0/repoindex/internal/domain/entities"
)

// IndexController handles the root command: one or more repository paths
// rendered as an index page on standard output.
type IndexController struct {
	command commands.Index
	out     io.Writer
}

// NewIndexController creates a new IndexController writing to standard output.
func NewIndexController(command commands.Index) *IndexController {
	return NewIndexControllerWithOutput(command, os.Stdout)
}

// NewIndexControllerWithOutput creates an IndexController writing to out.
func NewIndexControllerWithOutput(command commands.Index, out io.Writer) *IndexController {
	return &IndexController{command: command, out: out}
}

// GetBind returns the Cobra command metadata for the index controller.
func (it *IndexController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "repoindex repodir [repodir...]",
		Short: "Static HTML index of local Git repositories",
		Long: `Collect the name, description and last commit date of each given
repository and write an HTML index page, most recently active first,
to standard output.

The description is read from <repodir>/description, falling back to
<repodir>/.git/description. Repositories that cannot be opened are
reported on standard error and left out of the page.`,
	}
}

// Execute renders the index page for the given repository paths.
func (it *IndexController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	settings, err := entities.LoadSettings(configPath)
	if err != nil {
		return err
	}

	return it.command.Execute(ctx, it.out, settings, commands.IndexOptions{Paths: args})
}

// AddFlags adds the index-specific flags to the given Cobra command.
func (it *IndexController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.Flags().BoolP("verbose", "v", false,
		"Enable verbose output")
}
