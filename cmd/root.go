package cmd

import (
	"fmt"
	"os"

	"solid-example/config"
	apperrors "solid-example/pkg/errors"
	"solid-example/pkg/logger"

	"github.com/spf13/cobra"
)

// NewRootCommand returns the solid CLI wired to the configured store and logger
func NewRootCommand() *cobra.Command {
	return newRootCommand(NewBuilder)
}

func newRootCommand(newBuilder func(*config.Config) *AppBuilder) *cobra.Command {
	var (
		configPath string
		app        *App
	)

	root := &cobra.Command{
		Use:           "solid",
		Short:         "Runnable illustrations of SOLID design principles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return apperrors.Config(err)
			}
			app, err = newBuilder(cfg).Build()
			if err != nil {
				return apperrors.Config(err)
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			defer logger.Sync()
			if app == nil {
				return nil
			}
			return app.Close()
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a config file (default ./config.yaml)")

	getApp := func() *App { return app }
	root.AddCommand(
		newAreaCommand(),
		newSingletonCommand(),
		newSaveCommand(getApp),
		newPayCommand(getApp),
		newFinancesCommand(getApp),
		newRobotCommand(),
	)
	return root
}

// Execute runs the CLI and exits with the code mapped from the domain error
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		appErr := apperrors.MapDomainError(err)
		fmt.Fprintln(os.Stderr, "Error:", appErr.Error())
		os.Exit(appErr.ExitCode())
	}
}
