package renderer

import (
	"bytes"
	"fmt"

	"github.com/nicolai5965/finassist"
	md "github.com/nao1215/markdown"
)

// TradesMarkdown renders one page of the journal as a table.
func TradesMarkdown(page finassist.TradePage) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Trade Journal — page %d of %d", page.Page, page.TotalPages))

	if len(page.Trades) == 0 {
		doc.PlainText("No trades recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Entry", "Ticker", "Side", "Qty", "Entry Price", "Exit Price", "PnL", "Notes"},
	}
	for _, t := range page.Trades {
		exit := "-"
		pnl := "open"
		if t.Closed() {
			exit = formatDecimal(t.ExitPrice)
			pnl = t.PnL().String()
		}
		table.Rows = append(table.Rows, []string{
			t.EntryDate.String(),
			t.Ticker,
			string(t.Side),
			formatDecimal(t.Quantity),
			formatDecimal(t.EntryPrice),
			exit,
			pnl,
			t.Notes,
		})
	}
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("%d of %d trades", len(page.Trades), page.Total))
	return doc.String()
}
