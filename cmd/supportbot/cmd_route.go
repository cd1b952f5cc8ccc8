package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// demoQueries are routed when no query is given.
var demoQueries = []string{
	"What are your opening hours?",
	"Where is my order ORD123?",
	"Do you offer dental cleaning?",
	"Is my lab work for ORD456 ready?",
	"How much does a check-up cost?",
	"Has ORD999 shipped?",
}

func newRouteCmd() *cobra.Command {
	var (
		provider string
		mode     string
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "route [query...]",
		Short: "Route customer queries and print the answers",
		Long: `Route one query (the joined arguments) or, with no arguments, a built-in
list of demo queries.

Examples:
  supportbot route "Where is my order ORD123?"
  supportbot route --provider anthropic --verbose "Are you open on Sunday?"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap()
			if err != nil {
				return err
			}
			if provider != "" {
				a.cfg.Router.Provider = provider
			}
			if mode != "" {
				a.cfg.Router.MatchMode = mode
			}

			r, backend, err := a.router(cmd.Context())
			if err != nil {
				return err
			}

			queries := demoQueries
			if len(args) > 0 {
				queries = []string{strings.Join(args, " ")}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "======= Routing with %s (%s) =======\n", backend.Name(), backend.Model())
			for _, q := range queries {
				res := r.Resolve(cmd.Context(), q)
				fmt.Fprintf(out, "Customer: %s\n", q)
				if verbose {
					fmt.Fprintf(out, "Intent:   %s (%s, %dms)\n", res.Intent, res.Source, res.Classification.Latency.Milliseconds())
				}
				fmt.Fprintf(out, "Bot: %s\n\n", res.Answer)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&provider, "provider", "", "provider name to classify with (default: router.provider, then the provider chain)")
	cmd.Flags().StringVar(&mode, "match-mode", "", "label matching: contains or exact")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print intent and source for each query")
	return cmd
}
