package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// @title       Clinic Support Router API
// @description Routes veterinary clinic customer queries to FAQ or order-status answers.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
