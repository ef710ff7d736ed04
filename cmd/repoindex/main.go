package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/repoindex/internal"
)

func buildRootCommand(appContext *internal.AppInternal) *cobra.Command {
	indexController := appContext.GetIndexController()
	bind := indexController.GetBind()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:           bind.Use,
		Short:         bind.Short,
		Long:          bind.Long,
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		RunE: func(command *cobra.Command, args []string) error {
			// past argument validation, failures are not usage errors
			command.SilenceUsage = true
			return indexController.Execute(command, args)
		},
	}

	indexController.AddFlags(cmd)
	return cmd
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	appContext := injectAppContext()
	cobraRoot := buildRootCommand(appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'repoindex': %s", err)
	}
}
