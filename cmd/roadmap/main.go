package main

import (
	"errors"
	"fmt"
	"os"

	app "github.com/ZacharyEggert/project-roadmap-tracking-sub001/internal"
	"github.com/ZacharyEggert/project-roadmap-tracking-sub001/internal/cli"
)

// Set by goreleaser ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit, date)
	basePath := app.ResolveBasePath()

	application, err := app.NewApp(basePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing roadmap: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = application.Close() }()

	if err := cli.Execute(); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(cli.ExitGeneric)
	}
}
