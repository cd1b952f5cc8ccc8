package main

import (
	"fmt"

	"clinic-support-router/internal/evaluation"
	"clinic-support-router/internal/router"

	"github.com/spf13/cobra"
)

func newEvaluateCmd() *cobra.Command {
	var (
		casesFile  string
		reportPath string
		providers  []string
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Benchmark LLM backends on labelled queries",
		Long: `Run every labelled case against each configured backend, print per-case
results and a comparison table, recommend a backend by weighted score, and
write a plain-text report.

Examples:
  supportbot evaluate
  supportbot evaluate --providers openai,anthropic --report results.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap()
			if err != nil {
				return err
			}
			if casesFile != "" {
				a.cfg.Evaluation.CasesFile = casesFile
			}
			if reportPath != "" {
				a.cfg.Evaluation.ReportPath = reportPath
			}
			if len(providers) > 0 {
				a.cfg.Evaluation.Providers = providers
			}

			ctx := cmd.Context()
			cases, err := evaluation.LoadCases(a.cfg.Evaluation.CasesFile)
			if err != nil {
				return err
			}
			targets, err := a.targets(ctx)
			if err != nil {
				return err
			}

			e := evaluation.New(a.l, evaluation.Config{
				Out:       cmd.OutOrStdout(),
				Pause:     a.cfg.Evaluation.Pause,
				MatchMode: router.MatchMode(a.cfg.Router.MatchMode),
			})
			cmp, runErr := e.Run(ctx, targets, cases)

			if len(cmp.Reports) > 0 {
				if err := evaluation.WriteReport(a.cfg.Evaluation.ReportPath, cmp.Reports); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\nReport written to %s\n", a.cfg.Evaluation.ReportPath)
			}
			return runErr
		},
	}

	cmd.Flags().StringVar(&casesFile, "cases", "", "YAML file of {query, expected} cases (default: built-in cases)")
	cmd.Flags().StringVar(&reportPath, "report", "", "report file path (default: evaluation.report_path)")
	cmd.Flags().StringSliceVar(&providers, "providers", nil, "provider names or labels to evaluate (default: all enabled)")
	return cmd
}
