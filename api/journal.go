package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nicolai5965/finassist"
)

// SubmitTrade records a new journal entry. Like every other service call it
// returns an envelope; callers that want an exception can Unwrap.
func (c *Client) SubmitTrade(ctx context.Context, trade finassist.TradeEntry) finassist.Result[finassist.TradeEntry] {
	if err := trade.Validate(); err != nil {
		return finassist.Fail[finassist.TradeEntry](trade.Ticker, err.Error())
	}
	return call[finassist.TradeEntry](c, ctx, http.MethodPost, "/api/journal/trades", trade, trade.Ticker)
}

// FetchTrades lists one page of the journal, newest first.
func (c *Client) FetchTrades(ctx context.Context, page, limit int) finassist.Result[finassist.TradePage] {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	path := fmt.Sprintf("/api/journal/trades?page=%d&limit=%d", page, limit)
	return call[finassist.TradePage](c, ctx, http.MethodGet, path, nil, "")
}

// FetchStatistics asks for the aggregate journal statistics.
func (c *Client) FetchStatistics(ctx context.Context) finassist.Result[finassist.TradeStatistics] {
	return call[finassist.TradeStatistics](c, ctx, http.MethodGet, "/api/journal/statistics", nil, "")
}
