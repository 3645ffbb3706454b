package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nsd23387/campaign-governance/pkg/governance"
)

type stateOptions struct {
	Status    string
	Runnable  bool
	CanSubmit bool
	JSON      bool
}

func newStateCmd() *cobra.Command {
	opts := stateOptions{}

	cmd := &cobra.Command{
		Use:   "state <legacy-status>",
		Short: "Map a raw lifecycle status to its governance state and primary action",
		Long: `State resolves a single raw lifecycle status the same way evaluate does
for whole snapshots: unrecognized statuses map to BLOCKED, and only a draft
with the submit capability yields an enabled action.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Status = args[0]
			return runState(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Runnable, "runnable", false, "Treat the campaign as runnable")
	cmd.Flags().BoolVar(&opts.CanSubmit, "can-submit", false, "Grant the submit capability")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output results in JSON format")

	return cmd
}

func runState(cmd *cobra.Command, opts stateOptions) error {
	state := governance.MapState(governance.LegacyStatus(opts.Status), opts.Runnable)
	action := governance.PrimaryAction(state, governance.Capabilities{CanSubmit: opts.CanSubmit})
	style := state.Style()

	if opts.JSON {
		payload := struct {
			Input      string            `json:"input_status"`
			IsRunnable bool              `json:"is_runnable"`
			State      governance.State  `json:"state"`
			Label      string            `json:"label"`
			Style      map[string]string `json:"style"`
			Action     governance.Action `json:"action"`
		}{
			Input:      opts.Status,
			IsRunnable: opts.Runnable,
			State:      state,
			Label:      state.Label(),
			Style: map[string]string{
				"background": string(style.Background),
				"foreground": string(style.Foreground),
				"border":     string(style.Border),
			},
			Action: action,
		}
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	}

	suffix := ""
	if action.Disabled {
		suffix = " (disabled)"
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "State:  %s %s (%s)\n", state.Icon(), state, state.Label())
	fmt.Fprintf(out, "Badge:  bg %s  fg %s  border %s\n", style.Background, style.Foreground, style.Border)
	fmt.Fprintf(out, "Action: %s%s\n", action.Label, suffix)
	fmt.Fprintf(out, "        %s\n", action.Explanation)
	return nil
}
