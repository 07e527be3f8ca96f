// Package main is the dep-sentry entry point.
package main

import (
	"os"

	"github.com/nathantilsley/dep-sentry/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
