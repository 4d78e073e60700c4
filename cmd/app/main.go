package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	var cli CLI
	kongCtx := kong.Parse(&cli,
		kong.Name("users-service"),
		kong.Description("Read-only access to the users table over HTTP and CLI"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": fmt.Sprintf("%s (%s)", version, commit),
		},
	)

	if err := kongCtx.Run(&cli); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
