package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nicolai5965/finassist/docs"
)

// topicCmd implements the "topic" command.
type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "read a help topic in the terminal" }
func (*topicCmd) Usage() string {
	return `fa topic [<name>]

  Renders a help topic. Without a name, lists the available topics.
`
}
func (*topicCmd) SetFlags(_ *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		index, err := docs.Index()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Print(render(index))
		return subcommands.ExitSuccess
	}

	for _, topic := range f.Args() {
		content, err := docs.GetTopic(topic)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Print(render(content))
	}
	return subcommands.ExitSuccess
}
