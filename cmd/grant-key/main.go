// Package main prints a fresh signing key for tracker session grants.
package main

import (
	"flag"
	"os"

	"github.com/louisbranch/bloom/internal/platform/config"
	"github.com/louisbranch/bloom/internal/tools/grantkey"
)

func main() {
	cfg, err := grantkey.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	if err := grantkey.Run(cfg, os.Stdout, nil); err != nil {
		config.Exitf("generate key: %v", err)
	}
}
