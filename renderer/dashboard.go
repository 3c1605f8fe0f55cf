package renderer

import (
	"bytes"
	"fmt"

	"github.com/nicolai5965/finassist"
	md "github.com/nao1215/markdown"
)

// DashboardMarkdown renders the composite dashboard payload: header,
// session state, then one KPI section per visible group, in the user's
// order. Collapsed groups show a one-line summary instead of their table.
func DashboardMarkdown(ticker string, data finassist.DashboardData, prefs finassist.KpiPreferences) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := fmt.Sprintf("%s Dashboard", ticker)
	if name := data.CompanyName(); name != "" {
		title = fmt.Sprintf("%s — %s", ticker, name)
	}
	doc.H1(title)

	session := "Market closed"
	if data.MarketOpen() {
		session = "Market open"
	}
	if close, err := data.LatestClose(); err == nil {
		session = fmt.Sprintf("%s · last close %.2f", session, close)
	}
	doc.PlainText(session)

	for _, group := range prefs.GroupOrder {
		metrics, err := data.KpiGroup(group)
		if err != nil {
			doc.H2(group)
			doc.PlainText(fmt.Sprintf("no data: %v", err))
			continue
		}
		doc.H2(group)
		if !prefs.Expanded(group) {
			doc.PlainText(fmt.Sprintf("%d metrics (collapsed)", len(metrics)))
			continue
		}
		table := md.TableSet{Header: []string{"Metric", "Value"}}
		for _, name := range sortedKeys(metrics) {
			table.Rows = append(table.Rows, []string{name, formatValue(metrics[name])})
		}
		doc.Table(table)
	}

	return doc.String()
}
