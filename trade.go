package finassist

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Side is the direction of a trade.
type Side string

const (
	Long  Side = "long"
	Short Side = "short"
)

// ParseSide validates a user-supplied side string.
func ParseSide(s string) (Side, error) {
	switch Side(strings.ToLower(s)) {
	case Long:
		return Long, nil
	case Short:
		return Short, nil
	}
	return "", fmt.Errorf("invalid side %q: must be %q or %q", s, Long, Short)
}

// TradeEntry is one journal record: a position opened and (possibly) closed.
// Prices and quantity are exact decimals; Currency defaults to USD when the
// backend omits it.
type TradeEntry struct {
	ID         int64           `json:"id,omitempty"`
	Ticker     string          `json:"ticker"`
	Side       Side            `json:"side"`
	Quantity   decimal.Decimal `json:"quantity"`
	EntryPrice decimal.Decimal `json:"entry_price"`
	ExitPrice  decimal.Decimal `json:"exit_price,omitempty"`
	EntryDate  Date            `json:"entry_date"`
	ExitDate   Date            `json:"exit_date,omitempty"`
	Fees       decimal.Decimal `json:"fees,omitempty"`
	Currency   string          `json:"currency,omitempty"`
	Notes      string          `json:"notes,omitempty"`
}

// Validate checks the fields a submission must carry.
func (t TradeEntry) Validate() error {
	if t.Ticker == "" {
		return fmt.Errorf("trade has no ticker")
	}
	if _, err := ParseSide(string(t.Side)); err != nil {
		return err
	}
	if !t.Quantity.IsPositive() {
		return fmt.Errorf("trade quantity must be positive, got %s", t.Quantity)
	}
	if !t.EntryPrice.IsPositive() {
		return fmt.Errorf("trade entry price must be positive, got %s", t.EntryPrice)
	}
	if t.EntryDate.IsZero() {
		return fmt.Errorf("trade has no entry date")
	}
	if !t.ExitDate.IsZero() && t.ExitDate.Before(t.EntryDate) {
		return fmt.Errorf("trade exits (%s) before it enters (%s)", t.ExitDate, t.EntryDate)
	}
	return nil
}

// Closed reports whether the position has an exit.
func (t TradeEntry) Closed() bool { return !t.ExitPrice.IsZero() }

// PnL is the realized profit or loss of a closed trade, net of fees.
// Open trades have zero PnL.
func (t TradeEntry) PnL() Money {
	if !t.Closed() {
		return M(decimal.Zero, t.currency())
	}
	gross := t.ExitPrice.Sub(t.EntryPrice).Mul(t.Quantity)
	if t.Side == Short {
		gross = gross.Neg()
	}
	return M(gross.Sub(t.Fees), t.currency())
}

func (t TradeEntry) currency() string {
	if t.Currency == "" {
		return "USD"
	}
	return t.Currency
}

// MarshalJSON leaves the exit fields and fees off the wire while they are
// zero. omitempty cannot do it: Date is a struct and a zero decimal still
// renders as "0", which would make every open position look closed at 0.
func (t TradeEntry) MarshalJSON() ([]byte, error) {
	type wire TradeEntry
	w := struct {
		wire
		ExitPrice *decimal.Decimal `json:"exit_price,omitempty"`
		ExitDate  *Date            `json:"exit_date,omitempty"`
		Fees      *decimal.Decimal `json:"fees,omitempty"`
	}{wire: wire(t)}
	if !t.ExitPrice.IsZero() {
		w.ExitPrice = &t.ExitPrice
	}
	if !t.ExitDate.IsZero() {
		w.ExitDate = &t.ExitDate
	}
	if !t.Fees.IsZero() {
		w.Fees = &t.Fees
	}
	return json.Marshal(w)
}

// TradePage is one page of the journal listing.
type TradePage struct {
	Trades     []TradeEntry `json:"trades"`
	Page       int          `json:"page"`
	Limit      int          `json:"limit"`
	Total      int          `json:"total"`
	TotalPages int          `json:"total_pages"`
}

// HasNext reports whether another page follows.
func (p TradePage) HasNext() bool { return p.Page < p.TotalPages }

// TradeStatistics is the backend's aggregate view of the journal.
type TradeStatistics struct {
	TotalTrades   int             `json:"total_trades"`
	OpenTrades    int             `json:"open_trades"`
	WinningTrades int             `json:"winning_trades"`
	LosingTrades  int             `json:"losing_trades"`
	WinRate       float64         `json:"win_rate"`
	ProfitFactor  float64         `json:"profit_factor"`
	TotalPnl      decimal.Decimal `json:"total_pnl"`
	AverageWin    decimal.Decimal `json:"average_win"`
	AverageLoss   decimal.Decimal `json:"average_loss"`
	BestTrade     decimal.Decimal `json:"best_trade"`
	WorstTrade    decimal.Decimal `json:"worst_trade"`
	Currency      string          `json:"currency,omitempty"`
}

// TotalPnlMoney returns the aggregate profit in the statistics currency.
func (s TradeStatistics) TotalPnlMoney() Money {
	c := s.Currency
	if c == "" {
		c = "USD"
	}
	return M(s.TotalPnl, c)
}
