package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose bool
	noColor bool
}

func newRootCmd(app *AppContext) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "govcheck",
		Short: "Govcheck evaluates campaign governance state and send readiness",
		Long: `Govcheck derives governance states, primary actions, readiness verdicts,
and record trust classifications from campaign snapshots. Every evaluation
is read-only: campaign transitions happen in the external execution
platform and are only observed here.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Show per-check and per-metric details")
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(newEvaluateCmd(flags, app))
	cmd.AddCommand(newStateCmd())
	cmd.AddCommand(newClassifyCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
