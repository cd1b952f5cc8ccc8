package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "supportbot",
		Short: "Veterinary clinic support router",
		Long: `supportbot routes customer queries to FAQ or order-status answers using an
LLM classifier with a keyword fallback, serves the router over HTTP, and
benchmarks LLM backends on labelled queries.

Configuration is read from config.yaml (./config, ., /etc/app/).`,
		SilenceUsage: true,
	}

	root.AddCommand(newRouteCmd(), newEvaluateCmd(), newServeCmd())
	return root
}
