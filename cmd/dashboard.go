package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nicolai5965/finassist"
	"github.com/nicolai5965/finassist/renderer"
)

// dashboardCmd implements the "dashboard" command.
type dashboardCmd struct {
	ticker     string
	days       int
	interval   string
	chartType  string
	timeframe  string
	indicators indicatorsFlag
	noCache    bool
	save       bool
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "fetch and render the stock dashboard for a ticker" }
func (*dashboardCmd) Usage() string {
	return `fa dashboard -t <ticker> [-days <n>] [-interval <i>] [-chart <type>] [-indicator <name>]... [-save]

  Fetches the composite dashboard (chart, KPI groups, market hours, company
  info) in one call and renders it. Chart options default to your saved
  chart settings; -save persists the options used for next time.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ticker symbol to show (required)")
	f.IntVar(&c.days, "days", 0, "Chart window in days (defaults to saved settings)")
	f.StringVar(&c.interval, "interval", "", "Chart interval, e.g. 1d, 1h (defaults to saved settings)")
	f.StringVar(&c.chartType, "chart", "", "Chart type, e.g. candlestick, line (defaults to saved settings)")
	f.StringVar(&c.timeframe, "timeframe", "", "KPI timeframe, e.g. 1d (defaults to saved settings)")
	f.Var(&c.indicators, "indicator", "Indicator to overlay, repeatable. Bare name or JSON object form.")
	f.BoolVar(&c.noCache, "no-cache", false, "Bypass the backend's data cache")
	f.BoolVar(&c.save, "save", false, "Persist the chart options used as the new defaults")
}

// request merges the saved chart settings with the per-call overrides.
func (c *dashboardCmd) request(cs finassist.ChartSettings, prefs finassist.KpiPreferences) (finassist.DashboardRequest, finassist.ChartSettings) {
	if c.days > 0 {
		cs.Days = c.days
	}
	if c.interval != "" {
		cs.Interval = c.interval
	}
	if c.chartType != "" {
		cs.ChartType = c.chartType
	}
	if c.timeframe != "" {
		cs.KpiTimeframe = c.timeframe
	}
	if len(c.indicators) > 0 {
		cs.Indicators = c.indicators
	}
	if c.noCache {
		cs.UseCache = false
	}
	return finassist.DashboardRequest{
		Ticker:       c.ticker,
		Days:         cs.Days,
		Interval:     cs.Interval,
		Indicators:   cs.Indicators,
		ChartType:    cs.ChartType,
		KpiGroups:    prefs.VisibleGroups,
		KpiTimeframe: cs.KpiTimeframe,
		UseCache:     cs.UseCache,
	}, cs
}

func (c *dashboardCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		fmt.Fprintln(os.Stderr, "Error: -t <ticker> is required")
		return subcommands.ExitUsageError
	}

	store, err := OpenSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not open settings: %v\n", err)
		return subcommands.ExitFailure
	}
	prefs := store.KpiPreferences()
	req, used := c.request(store.ChartSettings(), prefs)

	res := NewClient().FetchDashboardData(ctx, req)
	if res.Err() {
		fmt.Fprintf(os.Stderr, "Error: %s\n", res.Message())
		return subcommands.ExitFailure
	}

	fmt.Print(render(renderer.DashboardMarkdown(c.ticker, res.Data(), prefs)))

	if c.save {
		store.QueueChartSettings(used)
		if err := store.Flush(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not save chart settings: %v\n", err)
		}
	}
	return subcommands.ExitSuccess
}
