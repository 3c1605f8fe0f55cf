package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nicolai5965/finassist"
	"github.com/shopspring/decimal"
)

// tradeAddCmd implements the "trade" command (journal submission).
type tradeAddCmd struct {
	ticker    string
	side      string
	qty       string
	entry     string
	exit      string
	entryDate string
	exitDate  string
	fees      string
	currency  string
	notes     string
}

func (*tradeAddCmd) Name() string     { return "trade" }
func (*tradeAddCmd) Synopsis() string { return "record a trade in the journal" }
func (*tradeAddCmd) Usage() string {
	return `fa trade -t <ticker> -side <long|short> -qty <n> -entry <price> -entry-date <YYYY-MM-DD> [-exit <price> -exit-date <YYYY-MM-DD>] [-fees <n>] [-notes <text>]

  Submits one journal entry. Omit -exit and -exit-date for an open position.
`
}

func (c *tradeAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ticker symbol (required)")
	f.StringVar(&c.side, "side", "long", "Trade side: long or short")
	f.StringVar(&c.qty, "qty", "", "Quantity (required)")
	f.StringVar(&c.entry, "entry", "", "Entry price (required)")
	f.StringVar(&c.exit, "exit", "", "Exit price, for closed trades")
	f.StringVar(&c.entryDate, "entry-date", finassist.Today().String(), "Entry date")
	f.StringVar(&c.exitDate, "exit-date", "", "Exit date, for closed trades")
	f.StringVar(&c.fees, "fees", "0", "Total fees")
	f.StringVar(&c.currency, "currency", "", "Trade currency (backend default when empty)")
	f.StringVar(&c.notes, "notes", "", "Free-form notes")
}

// trade assembles and validates the entry from the flags.
func (c *tradeAddCmd) trade() (finassist.TradeEntry, error) {
	var t finassist.TradeEntry
	var err error

	t.Ticker = c.ticker
	if t.Side, err = finassist.ParseSide(c.side); err != nil {
		return t, err
	}
	if t.Quantity, err = decimal.NewFromString(c.qty); err != nil {
		return t, fmt.Errorf("invalid quantity %q: %w", c.qty, err)
	}
	if t.EntryPrice, err = decimal.NewFromString(c.entry); err != nil {
		return t, fmt.Errorf("invalid entry price %q: %w", c.entry, err)
	}
	if c.exit != "" {
		if t.ExitPrice, err = decimal.NewFromString(c.exit); err != nil {
			return t, fmt.Errorf("invalid exit price %q: %w", c.exit, err)
		}
	}
	if t.EntryDate, err = finassist.ParseDate(c.entryDate); err != nil {
		return t, err
	}
	if c.exitDate != "" {
		if t.ExitDate, err = finassist.ParseDate(c.exitDate); err != nil {
			return t, err
		}
	}
	if t.Fees, err = decimal.NewFromString(c.fees); err != nil {
		return t, fmt.Errorf("invalid fees %q: %w", c.fees, err)
	}
	t.Currency = c.currency
	t.Notes = c.notes
	return t, t.Validate()
}

func (c *tradeAddCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	trade, err := c.trade()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	res := NewClient().SubmitTrade(ctx, trade)
	if res.Err() {
		fmt.Fprintf(os.Stderr, "Error: could not record the trade: %s\n", res.Message())
		return subcommands.ExitFailure
	}

	saved := res.Data()
	if saved.Closed() {
		fmt.Printf("✅ Recorded %s %s %s, PnL %s\n", saved.Side, saved.Quantity, saved.Ticker, saved.PnL())
	} else {
		fmt.Printf("✅ Recorded open %s position: %s %s\n", saved.Side, saved.Quantity, saved.Ticker)
	}
	return subcommands.ExitSuccess
}
