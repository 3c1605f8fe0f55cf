package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/nicolai5965/finassist"
	"github.com/nicolai5965/finassist/agent"
	"github.com/nicolai5965/finassist/renderer"
	"google.golang.org/genai"
)

// assistCmd implements the "assist" command.
type assistCmd struct {
	ticker string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "chat with the AI assistant about your trading" }
func (*assistCmd) Usage() string {
	return `fa assist [-t <ticker>] [question...]

  Starts an interactive chat primed with your journal statistics and, with
  -t, the current dashboard for that ticker. Requires a Gemini API key in
  the environment.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ticker whose dashboard to load as context")
}

// contextMarkdown gathers whatever backend data is reachable. The assistant
// still works offline, it just knows less.
func (c *assistCmd) contextMarkdown(ctx context.Context) string {
	client := NewClient()
	var sections []string

	if res := client.FetchStatistics(ctx); !res.Err() {
		sections = append(sections, renderer.StatisticsMarkdown(res.Data()))
	}
	if c.ticker != "" {
		store, err := OpenSettings()
		if err == nil {
			cs := store.ChartSettings()
			prefs := store.KpiPreferences()
			res := client.FetchDashboardData(ctx, finassist.DashboardRequest{
				Ticker:       c.ticker,
				Days:         cs.Days,
				Interval:     cs.Interval,
				Indicators:   cs.Indicators,
				ChartType:    cs.ChartType,
				KpiGroups:    prefs.VisibleGroups,
				KpiTimeframe: cs.KpiTimeframe,
				UseCache:     cs.UseCache,
			})
			if !res.Err() {
				sections = append(sections, renderer.DashboardMarkdown(c.ticker, res.Data(), prefs))
			}
		}
	}
	return strings.Join(sections, "\n\n")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing the Gemini client:", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin, c.contextMarkdown(ctx))
	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Assistant failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
