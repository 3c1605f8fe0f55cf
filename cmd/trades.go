package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nicolai5965/finassist/renderer"
)

// tradesCmd implements the "trades" command (journal listing).
type tradesCmd struct {
	page  int
	limit int
}

func (*tradesCmd) Name() string     { return "trades" }
func (*tradesCmd) Synopsis() string { return "list the trade journal page by page" }
func (*tradesCmd) Usage() string {
	return `fa trades [-page <n>] [-limit <n>]

  Lists one page of the journal, newest first.
`
}

func (c *tradesCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.page, "page", 1, "Page to show")
	f.IntVar(&c.limit, "limit", 20, "Trades per page")
}

func (c *tradesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	res := NewClient().FetchTrades(ctx, c.page, c.limit)
	if res.Err() {
		fmt.Fprintf(os.Stderr, "Error: %s\n", res.Message())
		return subcommands.ExitFailure
	}
	fmt.Print(render(renderer.TradesMarkdown(res.Data())))
	if res.Data().HasNext() {
		fmt.Fprintf(os.Stderr, "More trades: fa trades -page %d\n", res.Data().Page+1)
	}
	return subcommands.ExitSuccess
}
