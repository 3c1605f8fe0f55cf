package renderer

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/nicolai5965/finassist"
	"github.com/shopspring/decimal"
)

func sampleDashboard(t *testing.T) finassist.DashboardData {
	t.Helper()
	return finassist.DashboardData{
		ChartData:   json.RawMessage(`{"points":[{"date":"2025-06-02","close":201.5}]}`),
		KpiData:     json.RawMessage(`{"price":{"current_price":201.5,"day_change":-1.25},"volume":{"avg_volume":58000000}}`),
		MarketHours: json.RawMessage(`{"is_open":true}`),
		CompanyInfo: json.RawMessage(`{"name":"Apple Inc."}`),
	}
}

func TestDashboardMarkdown(t *testing.T) {
	prefs := finassist.KpiPreferences{
		VisibleGroups:  []string{"price", "volume"},
		ExpandedGroups: []string{"price"},
		ActiveView:     "custom",
		GroupOrder:     []string{"volume", "price"},
	}

	got := DashboardMarkdown("AAPL", sampleDashboard(t), prefs)

	for _, want := range []string{
		"# AAPL — Apple Inc.",
		"Market open",
		"last close 201.50",
		"## price",
		"## volume",
		"current_price",
		"201.50",
		"day_change",
		"-1.25",
		"1 metrics (collapsed)", // volume is visible but not expanded
	} {
		if !strings.Contains(got, want) {
			t.Errorf("dashboard markdown missing %q\n%s", want, got)
		}
	}

	// GroupOrder drives section order.
	if strings.Index(got, "## volume") > strings.Index(got, "## price") {
		t.Errorf("sections not in GroupOrder order\n%s", got)
	}
	// volume is collapsed: its metric names stay out of the output.
	if strings.Contains(got, "avg_volume") {
		t.Errorf("collapsed group leaked its metrics\n%s", got)
	}
}

func TestDashboardMarkdown_MissingGroup(t *testing.T) {
	prefs := finassist.DefaultKpiPreferences()
	prefs.GroupOrder = []string{"sentiment"}
	got := DashboardMarkdown("AAPL", sampleDashboard(t), prefs)
	if !strings.Contains(got, "## sentiment") || !strings.Contains(got, "no data") {
		t.Errorf("missing group should render a no data note\n%s", got)
	}
}

func TestTradesMarkdown(t *testing.T) {
	page := finassist.TradePage{
		Trades: []finassist.TradeEntry{
			{
				Ticker:     "AAPL",
				Side:       finassist.Long,
				Quantity:   decimal.NewFromInt(10),
				EntryPrice: decimal.RequireFromString("190.50"),
				ExitPrice:  decimal.RequireFromString("200.50"),
				EntryDate:  finassist.NewDate(2025, 6, 2),
				ExitDate:   finassist.NewDate(2025, 6, 5),
				Notes:      "breakout",
			},
			{
				Ticker:     "MSFT",
				Side:       finassist.Short,
				Quantity:   decimal.NewFromInt(5),
				EntryPrice: decimal.RequireFromString("410"),
				EntryDate:  finassist.NewDate(2025, 6, 3),
			},
		},
		Page: 1, Limit: 20, Total: 2, TotalPages: 1,
	}

	got := TradesMarkdown(page)
	for _, want := range []string{
		"# Trade Journal — page 1 of 1",
		"2025-06-02", "AAPL", "long", "breakout",
		"$100.00", // (200.50-190.50)*10
		"2025-06-03", "MSFT", "short",
		"open", // no exit yet
		"2 of 2 trades",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("trades markdown missing %q\n%s", want, got)
		}
	}
}

func TestTradesMarkdown_EmptyJournal(t *testing.T) {
	got := TradesMarkdown(finassist.TradePage{Page: 1, TotalPages: 0})
	if !strings.Contains(got, "No trades recorded.") {
		t.Errorf("empty journal note missing\n%s", got)
	}
}

func TestStatisticsMarkdown(t *testing.T) {
	stats := finassist.TradeStatistics{
		TotalTrades:   12,
		OpenTrades:    2,
		WinningTrades: 7,
		LosingTrades:  3,
		WinRate:       0.7,
		ProfitFactor:  2.4,
		TotalPnl:      decimal.RequireFromString("1234.50"),
	}

	got := StatisticsMarkdown(stats)
	for _, want := range []string{
		"# Journal Statistics",
		"Total PnL: $1,234.50",
		"70.0%",
		"2.40",
		"12",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("statistics markdown missing %q\n%s", want, got)
		}
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{201.5, "201.50"},
		{nil, "-"},
		{"strong buy", "strong buy"},
		{true, "true"},
	}
	for _, tt := range tests {
		if got := formatValue(tt.in); got != tt.want {
			t.Errorf("formatValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
