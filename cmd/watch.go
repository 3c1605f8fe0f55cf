package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/google/subcommands"
	"github.com/nicolai5965/finassist"
	"github.com/nicolai5965/finassist/refresh"
	"github.com/nicolai5965/finassist/renderer"
)

// watchCmd implements the "watch" command: the auto-refreshing dashboard.
type watchCmd struct {
	ticker string
	every  time.Duration
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "auto-refresh the dashboard on an interval" }
func (*watchCmd) Usage() string {
	return `fa watch -t <ticker> [-every <duration>]

  Re-renders the dashboard on a fixed interval. Press Enter for an
  immediate refresh (this resets the schedule), Ctrl-C to stop.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ticker symbol to watch (required)")
	f.DurationVar(&c.every, "every", time.Minute, "Refresh interval")
}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		fmt.Fprintln(os.Stderr, "Error: -t <ticker> is required")
		return subcommands.ExitUsageError
	}

	store, err := OpenSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not open settings: %v\n", err)
		return subcommands.ExitFailure
	}
	cs := store.ChartSettings()
	prefs := store.KpiPreferences()
	client := NewClient()

	req := finassist.DashboardRequest{
		Ticker:       c.ticker,
		Days:         cs.Days,
		Interval:     cs.Interval,
		Indicators:   cs.Indicators,
		ChartType:    cs.ChartType,
		KpiGroups:    prefs.VisibleGroups,
		KpiTimeframe: cs.KpiTimeframe,
		UseCache:     cs.UseCache,
	}

	// A manual refresh can overtake a scheduled one that is still retrying;
	// generations make sure the screen never goes back in time.
	var gens finassist.Generations

	redraw := func(ctx context.Context) error {
		gen := gens.Next()
		res := client.FetchDashboardData(ctx, req)
		if !gens.Accept(gen) {
			return nil // a newer refresh already drew
		}
		if res.Err() {
			return fmt.Errorf("refresh failed: %s", res.Message())
		}
		fmt.Print("\033[H\033[2J") // clear screen
		fmt.Print(render(renderer.DashboardMarkdown(c.ticker, res.Data(), prefs)))
		fmt.Printf("refreshed %s · every %s · Enter to refresh, Ctrl-C to quit\n",
			time.Now().Format("15:04:05"), c.every)
		return nil
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	sched := refresh.New(c.every, redraw)
	sched.Trigger() // first draw immediately
	sched.Start(ctx)
	defer sched.Stop()

	// Enter requests an out-of-band refresh.
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			sched.Trigger()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			fmt.Println()
			return subcommands.ExitSuccess
		case err := <-sched.Errors():
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}
}
