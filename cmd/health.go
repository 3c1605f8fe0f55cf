package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// healthCmd implements the "health" command.
type healthCmd struct{}

func (*healthCmd) Name() string     { return "health" }
func (*healthCmd) Synopsis() string { return "check the backend connection" }
func (*healthCmd) Usage() string {
	return `fa health

  Probes the backend once. Exits 0 only when it answers healthy.
`
}
func (*healthCmd) SetFlags(_ *flag.FlagSet) {}

func (c *healthCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client := NewClient()
	if !client.CheckHealth(ctx) {
		fmt.Fprintf(os.Stderr, "Cannot connect to the backend at %s.\nCheck that the API server is running, then retry.\n", client.BaseURL())
		return subcommands.ExitFailure
	}
	fmt.Println("healthy")
	return subcommands.ExitSuccess
}
