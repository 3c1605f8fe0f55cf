package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nicolai5965/finassist/renderer"
)

// statsCmd implements the "stats" command.
type statsCmd struct{}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "show aggregate journal statistics" }
func (*statsCmd) Usage() string {
	return `fa stats

  Shows win rate, profit factor, total PnL and the other aggregates the
  backend computes over the whole journal.
`
}
func (*statsCmd) SetFlags(_ *flag.FlagSet) {}

func (c *statsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	res := NewClient().FetchStatistics(ctx)
	if res.Err() {
		fmt.Fprintf(os.Stderr, "Error: %s\n", res.Message())
		return subcommands.ExitFailure
	}
	fmt.Print(render(renderer.StatisticsMarkdown(res.Data())))
	return subcommands.ExitSuccess
}
