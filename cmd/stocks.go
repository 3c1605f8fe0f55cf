package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nicolai5965/finassist"
)

// analyzeCmd implements the "analyze" command (chart analysis alone).
type analyzeCmd struct {
	ticker     string
	days       int
	interval   string
	chartType  string
	indicators indicatorsFlag
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "fetch the chart analysis for a ticker" }
func (*analyzeCmd) Usage() string {
	return `fa analyze -t <ticker> [-days <n>] [-interval <i>] [-chart <type>] [-indicator <name>]...

  Fetches the chart analysis alone and prints the raw payload.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ticker symbol (required)")
	f.IntVar(&c.days, "days", 10, "Chart window in days")
	f.StringVar(&c.interval, "interval", "1d", "Chart interval")
	f.StringVar(&c.chartType, "chart", "candlestick", "Chart type")
	f.Var(&c.indicators, "indicator", "Indicator to overlay, repeatable")
}

func (c *analyzeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		fmt.Fprintln(os.Stderr, "Error: -t <ticker> is required")
		return subcommands.ExitUsageError
	}
	res := NewClient().AnalyzeTicker(ctx, finassist.AnalyzeRequest{
		Ticker:     c.ticker,
		Days:       c.days,
		Interval:   c.interval,
		Indicators: c.indicators,
		ChartType:  c.chartType,
	})
	if res.Err() {
		fmt.Fprintf(os.Stderr, "Error: %s\n", res.Message())
		return subcommands.ExitFailure
	}
	printJSON(res.Data())
	return subcommands.ExitSuccess
}

// companyCmd implements the "company" command.
type companyCmd struct {
	ticker string
}

func (*companyCmd) Name() string     { return "company" }
func (*companyCmd) Synopsis() string { return "show the company profile behind a ticker" }
func (*companyCmd) Usage() string {
	return `fa company -t <ticker>
`
}

func (c *companyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ticker symbol (required)")
}

func (c *companyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		fmt.Fprintln(os.Stderr, "Error: -t <ticker> is required")
		return subcommands.ExitUsageError
	}
	res := NewClient().FetchCompanyInfo(ctx, c.ticker)
	if res.Err() {
		fmt.Fprintf(os.Stderr, "Error: %s\n", res.Message())
		return subcommands.ExitFailure
	}
	printJSON(res.Data())
	return subcommands.ExitSuccess
}

// hoursCmd implements the "hours" command.
type hoursCmd struct {
	ticker string
}

func (*hoursCmd) Name() string     { return "hours" }
func (*hoursCmd) Synopsis() string { return "show the market session state for a ticker" }
func (*hoursCmd) Usage() string {
	return `fa hours -t <ticker>
`
}

func (c *hoursCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ticker symbol (required)")
}

func (c *hoursCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		fmt.Fprintln(os.Stderr, "Error: -t <ticker> is required")
		return subcommands.ExitUsageError
	}
	res := NewClient().FetchMarketHours(ctx, c.ticker)
	if res.Err() {
		fmt.Fprintf(os.Stderr, "Error: %s\n", res.Message())
		return subcommands.ExitFailure
	}
	printJSON(res.Data())
	return subcommands.ExitSuccess
}
