// Package main is the tracker command-line client.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/louisbranch/bloom/internal/cmd/bloomctl"
	"github.com/louisbranch/bloom/internal/platform/config"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), bloomctl.Usage)
		flag.PrintDefaults()
	}
	cfg, err := bloomctl.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		usageExit(err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := bloomctl.Run(ctx, cfg, os.Stdout); err != nil {
		usageExit(err)
	}
}

func usageExit(err error) {
	if errors.Is(err, bloomctl.ErrUsage) {
		config.ExitWithCodef(config.ExitCodeUsage, "%v\n%s", err, bloomctl.Usage)
	}
	config.Exitf("bloomctl: %v", err)
}
