// Package main is the entry point for the rpgassist CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/louisbranch/rpgassist/internal/cmd/rpgassist"
	"github.com/louisbranch/rpgassist/internal/platform/config"
)

func main() {
	cfg, err := rpgassist.LoadConfig()
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rpgassist.Run(ctx, cfg, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		stop()
		config.Exitf("Error: %v", err)
	}
}
