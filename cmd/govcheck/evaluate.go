package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nsd23387/campaign-governance/internal/inspect"
	"github.com/nsd23387/campaign-governance/internal/snapshot"
	goverrors "github.com/nsd23387/campaign-governance/pkg/errors"
)

type evaluateOptions struct {
	SnapshotPath     string
	Verbose          bool
	JSON             bool
	GlobalKillSwitch bool
}

var (
	evaluateCmdRunner = runEvaluate
	exitFunc          = os.Exit
)

func newEvaluateCmd(root *rootFlags, app *AppContext) *cobra.Command {
	opts := evaluateOptions{}

	cmd := &cobra.Command{
		Use:   "evaluate <snapshot-file>",
		Short: "Evaluate governance state and send readiness for a campaign snapshot",
		Long: `Evaluate derives every campaign's governance state, primary action,
readiness verdict, and metric classifications from a snapshot file without
side effects. Returns exit code 0 when every campaign is ready, exit code 1
when any campaign needs attention, and exit code 2 when the snapshot cannot
be read.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.SnapshotPath = args[0]
			opts.Verbose = root.verbose

			return evaluateCmdRunner(cmd, app, root, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output results in JSON format")
	cmd.Flags().BoolVar(&opts.GlobalKillSwitch, "global-kill-switch", false, "Treat the platform-wide kill switch as active")

	return cmd
}

func runEvaluate(cmd *cobra.Command, app *AppContext, root *rootFlags, opts evaluateOptions) error {
	snap, err := snapshot.Load(opts.SnapshotPath)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error loading snapshot: %v\n", err)
		exitFunc(inputExitCode(err))
		return err
	}

	app.Log.WithFields(map[string]any{
		"snapshot":  opts.SnapshotPath,
		"campaigns": len(snap.Campaigns),
	}).Info("starting evaluation")

	service := inspect.NewService(app.Log, inspect.Options{
		GlobalKillSwitch: app.Settings.GlobalKillSwitch || opts.GlobalKillSwitch,
		TrustedSources:   app.Settings.TrustedSources,
	})
	report := service.Evaluate(snap)

	out := cmd.OutOrStdout()
	switch {
	case opts.JSON:
		if err := inspect.RenderJSON(out, report); err != nil {
			return err
		}
	case opts.Verbose:
		inspect.RenderVerbose(out, report, useColors(app, root, out))
	default:
		inspect.RenderTable(out, report, useColors(app, root, out))
	}

	exitFunc(report.ExitCode())
	return nil
}

// inputExitCode maps a load failure onto the exit contract: 2 for parse and
// validation errors, 1 for anything unexpected.
func inputExitCode(err error) int {
	if goverrors.IsInputError(err) {
		return 2
	}
	return 1
}

// useColors enables colored output only on a real terminal and only when
// neither the flag nor the environment disables it.
func useColors(app *AppContext, root *rootFlags, writer any) bool {
	if app.Settings.NoColor || root.noColor {
		return false
	}
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
