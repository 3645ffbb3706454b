package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nsd23387/campaign-governance/internal/inspect"
	"github.com/nsd23387/campaign-governance/internal/snapshot"
)

type classifyOptions struct {
	RecordsPath string
	JSON        bool
}

var classifyCmdRunner = runClassify

func newClassifyCmd(app *AppContext) *cobra.Command {
	opts := classifyOptions{}

	cmd := &cobra.Command{
		Use:   "classify <records-file>",
		Short: "Classify the provenance and confidence of metric records",
		Long: `Classify runs standalone metric records through the provenance and
confidence rule lists and reports which rule decided each outcome. Returns
exit code 2 when the records file cannot be read.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.RecordsPath = args[0]
			return classifyCmdRunner(cmd, app, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output results in JSON format")

	return cmd
}

func runClassify(cmd *cobra.Command, app *AppContext, opts classifyOptions) error {
	records, err := snapshot.LoadRecords(opts.RecordsPath)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error loading records: %v\n", err)
		exitFunc(inputExitCode(err))
		return err
	}

	app.Log.WithFields(map[string]any{
		"records": len(records),
		"path":    opts.RecordsPath,
	}).Debug("classifying records")

	service := inspect.NewService(app.Log, inspect.Options{
		TrustedSources: app.Settings.TrustedSources,
	})
	reports := service.ClassifyMetrics(records)

	if opts.JSON {
		return inspect.RenderRecordsJSON(cmd.OutOrStdout(), reports)
	}
	inspect.RenderRecords(cmd.OutOrStdout(), reports)
	return nil
}
