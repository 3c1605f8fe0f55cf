package finassist

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestTradeEntry_PnL(t *testing.T) {
	testCases := []struct {
		name  string
		trade TradeEntry
		want  string // decimal amount
	}{
		{
			name: "long winner",
			trade: TradeEntry{
				Ticker: "AAPL", Side: Long,
				Quantity: d("10"), EntryPrice: d("150"), ExitPrice: d("160"),
			},
			want: "100",
		},
		{
			name: "long loser with fees",
			trade: TradeEntry{
				Ticker: "AAPL", Side: Long,
				Quantity: d("10"), EntryPrice: d("150"), ExitPrice: d("148"), Fees: d("2.5"),
			},
			want: "-22.5",
		},
		{
			name: "short winner",
			trade: TradeEntry{
				Ticker: "TSLA", Side: Short,
				Quantity: d("4"), EntryPrice: d("200"), ExitPrice: d("180"),
			},
			want: "80",
		},
		{
			name: "open trade has no PnL",
			trade: TradeEntry{
				Ticker: "MSFT", Side: Long,
				Quantity: d("3"), EntryPrice: d("400"),
			},
			want: "0",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.trade.PnL()
			if !got.Amount().Equal(d(tc.want)) {
				t.Errorf("PnL = %s, want %s", got.Amount(), tc.want)
			}
			if got.Currency() != "USD" {
				t.Errorf("default currency = %q, want USD", got.Currency())
			}
		})
	}
}

func TestTradeEntry_Validate(t *testing.T) {
	valid := TradeEntry{
		Ticker: "AAPL", Side: Long,
		Quantity: d("10"), EntryPrice: d("150"),
		EntryDate: NewDate(2026, 1, 5),
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid trade rejected: %v", err)
	}

	testCases := []struct {
		name   string
		mutate func(*TradeEntry)
	}{
		{"no ticker", func(e *TradeEntry) { e.Ticker = "" }},
		{"bad side", func(e *TradeEntry) { e.Side = "sideways" }},
		{"zero quantity", func(e *TradeEntry) { e.Quantity = decimal.Zero }},
		{"negative entry price", func(e *TradeEntry) { e.EntryPrice = d("-1") }},
		{"no entry date", func(e *TradeEntry) { e.EntryDate = Date{} }},
		{"exit before entry", func(e *TradeEntry) {
			e.ExitPrice = d("160")
			e.ExitDate = NewDate(2025, 12, 31)
		}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			trade := valid
			tc.mutate(&trade)
			if err := trade.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestTradeEntry_OpenPositionWireShape(t *testing.T) {
	open := TradeEntry{
		Ticker: "MSFT", Side: Long,
		Quantity: d("3"), EntryPrice: d("400"),
		EntryDate: NewDate(2026, 1, 5),
	}

	b, err := json.Marshal(open)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, field := range []string{"exit_price", "exit_date", "fees"} {
		if strings.Contains(string(b), field) {
			t.Errorf("open position serialized %q: %s", field, b)
		}
	}

	// The wire form must survive the module's own decoder.
	var back TradeEntry
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if back.Closed() || !back.ExitDate.IsZero() {
		t.Errorf("open position came back closed: %+v", back)
	}
}

func TestTradeEntry_ClosedPositionWireShape(t *testing.T) {
	closed := TradeEntry{
		Ticker: "AAPL", Side: Long,
		Quantity: d("10"), EntryPrice: d("150"), ExitPrice: d("160"),
		EntryDate: NewDate(2026, 1, 5), ExitDate: NewDate(2026, 1, 9),
		Fees: d("1.5"),
	}

	b, err := json.Marshal(closed)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, want := range []string{`"exit_price":"160"`, `"exit_date":"2026-01-09"`, `"fees":"1.5"`} {
		if !strings.Contains(string(b), want) {
			t.Errorf("closed position missing %s: %s", want, b)
		}
	}

	var back TradeEntry
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if !back.Closed() || back.ExitDate != closed.ExitDate {
		t.Errorf("closed position came back as %+v", back)
	}
}

func TestMoney_String(t *testing.T) {
	m := M(d("1234.5"), "USD")
	if got, want := m.String(), "$1,234.50"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTradePage_HasNext(t *testing.T) {
	if (TradePage{Page: 2, TotalPages: 2}).HasNext() {
		t.Error("last page claims a next page")
	}
	if !(TradePage{Page: 1, TotalPages: 2}).HasNext() {
		t.Error("first of two pages claims no next page")
	}
}
