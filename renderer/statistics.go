package renderer

import (
	"bytes"
	"fmt"

	"github.com/nicolai5965/finassist"
	md "github.com/nao1215/markdown"
)

// StatisticsMarkdown renders the aggregate journal statistics panel.
func StatisticsMarkdown(s finassist.TradeStatistics) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Journal Statistics")
	doc.PlainText(fmt.Sprintf("Total PnL: %s", s.TotalPnlMoney()))

	table := md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total trades", fmt.Sprintf("%d", s.TotalTrades)},
			{"Open trades", fmt.Sprintf("%d", s.OpenTrades)},
			{"Winning trades", fmt.Sprintf("%d", s.WinningTrades)},
			{"Losing trades", fmt.Sprintf("%d", s.LosingTrades)},
			{"Win rate", fmt.Sprintf("%.1f%%", s.WinRate*100)},
			{"Profit factor", fmt.Sprintf("%.2f", s.ProfitFactor)},
			{"Average win", formatDecimal(s.AverageWin)},
			{"Average loss", formatDecimal(s.AverageLoss)},
			{"Best trade", formatDecimal(s.BestTrade)},
			{"Worst trade", formatDecimal(s.WorstTrade)},
		},
	}
	doc.Table(table)

	return doc.String()
}
